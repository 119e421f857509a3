package main

import (
	"github.com/ambrlytics/ecfr-analyzer/app"
	"github.com/ambrlytics/ecfr-analyzer/config"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis HTTP API",
	Long: `Starts the HTTP API on web.listen. Routes are mounted at the root and
again under web.prefix. The server stops on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	fx.New(app.Server(cfg)).Run()
	return nil
}
