package app

import (
	"context"
	"github.com/ambrlytics/ecfr-analyzer/api"
	"github.com/ambrlytics/ecfr-analyzer/config"
	"github.com/ambrlytics/ecfr-analyzer/httpresponse"
	"github.com/ambrlytics/ecfr-analyzer/service"
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

func NewFiber(lc fx.Lifecycle, cfg *config.WebConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          httpresponse.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CorsOrigins}))

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := app.Listen(cfg.Listen)
				if err != nil {
					gut.Fatal("unable to listen", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			_ = app.Shutdown()
			return nil
		},
	})

	return app
}

// RegisterRoutes mounts every API at the root and again under the configured prefix
func RegisterRoutes(
	app *fiber.App,
	cfg *config.WebConfig,
	titleService *service.TitleService,
	analysisService *service.AnalysisService,
) {
	routers := []fiber.Router{app}
	if cfg.Prefix != "" && cfg.Prefix != "/" {
		routers = append(routers, app.Group(cfg.Prefix))
	}

	for _, router := range routers {
		titleAPI := &api.TitleAPI{
			Router:          router,
			TitleService:    titleService,
			AnalysisService: analysisService,
		}
		titleAPI.Register()

		healthAPI := &api.HealthAPI{Router: router}
		healthAPI.Register()
	}
}
