package app

import (
	"context"
	"github.com/ambrlytics/ecfr-analyzer/config"
	"github.com/ambrlytics/ecfr-analyzer/httpclient"
	"github.com/ambrlytics/ecfr-analyzer/service"
	"github.com/ambrlytics/ecfr-analyzer/telemetry"
	"go.uber.org/fx"
	"net/http"
)

// Services provides the configuration, the upstream client and every
// analysis service
func Services(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg, cfg.Web, cfg.Upstream, cfg.Analysis, cfg.Telemetry),
		fx.Provide(
			NewTelemetry,
			NewHttpClient,
			NewUpstreamClient,
			NewTitleService,
			NewStructureService,
			NewAnalysisService,
		),
	)
}

// Server is Services plus the HTTP listener and its routes
func Server(cfg *config.Config) fx.Option {
	return fx.Options(
		Services(cfg),
		fx.Provide(NewFiber),
		fx.Invoke(RegisterRoutes),
	)
}

func NewTelemetry(lc fx.Lifecycle, cfg *config.TelemetryConfig) (*telemetry.Telemetry, error) {
	t, err := telemetry.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return t.Shutdown(ctx)
		},
	})
	return t, nil
}

// NewHttpClient returns the single client shared by every upstream call
func NewHttpClient(cfg *config.UpstreamConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

func NewUpstreamClient(httpClient *http.Client, cfg *config.UpstreamConfig) service.UpstreamClient {
	return httpclient.NewECFRClient(httpClient, cfg.BaseUrl, cfg.UserAgent)
}

func NewTitleService(client service.UpstreamClient) *service.TitleService {
	return &service.TitleService{Client: client}
}

func NewStructureService(client service.UpstreamClient) *service.StructureService {
	return &service.StructureService{Client: client}
}

func NewAnalysisService(
	client service.UpstreamClient,
	titleService *service.TitleService,
	structureService *service.StructureService,
	cfg *config.AnalysisConfig,
	t *telemetry.Telemetry,
) *service.AnalysisService {
	return &service.AnalysisService{
		Client:                   client,
		TitleService:             titleService,
		StructureService:         structureService,
		ContentService:           &service.ContentService{Client: client, Source: cfg.ContentSource},
		AgencyAttributionService: &service.AgencyAttributionService{Client: client},
		CorrectionService:        &service.CorrectionService{Client: client},
		HistoricalService: &service.HistoricalService{
			StructureService: structureService,
			LookbackMonths:   cfg.LookbackMonths,
		},
		ChangeTrackingService: &service.ChangeTrackingService{},
		Tracer:                t.Tracer,
	}
}
