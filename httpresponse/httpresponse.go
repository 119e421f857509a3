package httpresponse

import (
	"errors"
	"fmt"
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"runtime/debug"
)

type ErrorResponse struct {
	Error       string  `json:"error"`
	Traceback   *string `json:"traceback,omitempty"`
	TitleNumber any     `json:"title_number,omitempty"`
}

func ApplySuccessToResponse(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusOK).JSON(body)
}

// ApplyRawJSONToResponse writes an already encoded JSON body as is
func ApplyRawJSONToResponse(c *fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

// ApplyErrorWithTraceback renders a 500 carrying the error and the current stack
func ApplyErrorWithTraceback(c *fiber.Ctx, err error) error {
	log.Error(fmt.Sprintf("Request Process: %v", err))
	return c.Status(fiber.StatusInternalServerError).JSON(&ErrorResponse{
		Error:     err.Error(),
		Traceback: gut.Ptr(string(debug.Stack())),
	})
}

// ApplyTitleErrorToResponse renders a failure tied to a title number
func ApplyTitleErrorToResponse(c *fiber.Ctx, status int, titleNumber any, err error) error {
	log.Error(fmt.Sprintf("Request Process: title %v: %v", titleNumber, err))
	return c.Status(status).JSON(&ErrorResponse{
		Error:       err.Error(),
		TitleNumber: titleNumber,
	})
}

// ErrorHandler is the fiber fallback for errors returned or recovered from handlers
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(&ErrorResponse{
			Error: fiberError.Message,
		})
	}

	log.Error(fmt.Sprintf("Request Process: unhandled error: %v", err))
	return c.Status(fiber.StatusInternalServerError).JSON(&ErrorResponse{
		Error: err.Error(),
	})
}
