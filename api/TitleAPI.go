package api

import (
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/httpresponse"
	"github.com/ambrlytics/ecfr-analyzer/service"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type TitleAPI struct {
	Router          fiber.Router
	TitleService    *service.TitleService
	AnalysisService *service.AnalysisService
}

func (api *TitleAPI) Register() {
	// Upstream titles list, passed through untouched
	api.Router.Get(
		"/titles", func(c *fiber.Ctx) error {
			ctx := c.UserContext()

			titles, err := api.TitleService.ListTitles(ctx)
			if err != nil {
				return httpresponse.ApplyErrorWithTraceback(c, err)
			}

			return httpresponse.ApplyRawJSONToResponse(c, titles)
		},
	)

	api.Router.Get(
		"/titles/:titleNumber/analysis", func(c *fiber.Ctx) (err error) {
			ctx := c.UserContext()

			param := c.Params("titleNumber")
			titleNumber, parseErr := strconv.Atoi(param)
			if parseErr != nil {
				return httpresponse.ApplyTitleErrorToResponse(
					c,
					fiber.StatusBadRequest,
					param,
					fmt.Errorf("invalid title number %q", param),
				)
			}

			defer func() {
				if r := recover(); r != nil {
					err = httpresponse.ApplyTitleErrorToResponse(
						c,
						fiber.StatusInternalServerError,
						titleNumber,
						fmt.Errorf("%v", r),
					)
				}
			}()

			analysis := api.AnalysisService.Analyze(ctx, titleNumber)

			if err := c.Status(fiber.StatusOK).JSON(analysis); err != nil {
				return httpresponse.ApplyTitleErrorToResponse(c, fiber.StatusInternalServerError, titleNumber, err)
			}
			return nil
		},
	)
}
