package main

import (
	"context"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/app"
	"github.com/ambrlytics/ecfr-analyzer/config"
	"go.uber.org/fx"
)

// populate builds the service graph for a one-shot command and fills targets.
// The returned stop runs the lifecycle shutdown hooks.
func populate(ctx context.Context, targets ...any) (func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	fxApp := fx.New(
		app.Services(cfg),
		fx.Populate(targets...),
		fx.NopLogger,
	)
	if err := fxApp.Start(ctx); err != nil {
		return nil, fmt.Errorf("unable to start: %w", err)
	}

	return func() {
		_ = fxApp.Stop(context.Background())
	}, nil
}
