package api

import (
	"github.com/ambrlytics/ecfr-analyzer/httpresponse"
	"github.com/gofiber/fiber/v2"
)

type HealthAPI struct {
	Router fiber.Router
}

func (api *HealthAPI) Register() {
	api.Router.Get(
		"/health", func(c *fiber.Ctx) error {
			return httpresponse.ApplySuccessToResponse(c, fiber.Map{"status": "ok"})
		},
	)
}
