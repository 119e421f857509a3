package telemetry

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/config"
	"github.com/gofiber/fiber/v2/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "github.com/ambrlytics/ecfr-analyzer"

// Telemetry holds the tracer used by the analysis pipeline. Shutdown flushes
// pending spans and is a no-op when no exporter is configured.
type Telemetry struct {
	Tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// New installs an OTLP/HTTP exporter when an endpoint is configured,
// otherwise the global provider is left alone.
func New(ctx context.Context, config *config.TelemetryConfig) (*Telemetry, error) {
	if config.Endpoint == "" {
		return &Telemetry{Tracer: otel.Tracer(TracerName)}, nil
	}

	options := []otlptracehttp.Option{otlptracehttp.WithEndpoint(config.Endpoint)}
	if config.Insecure {
		options = append(options, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", config.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	log.Info(fmt.Sprintf("Telemetry Process: exporting traces to %s", config.Endpoint))

	return &Telemetry{
		Tracer:   provider.Tracer(TracerName),
		provider: provider,
	}, nil
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("unable to shutdown tracer provider: %w", err)
	}
	return nil
}
