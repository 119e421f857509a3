package main

import (
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/config"
	"github.com/spf13/cobra"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ecfr-analyzer",
	Short: "Analyze titles of the Electronic Code of Federal Regulations",
	Long:  "ecfr-analyzer fetches titles from the public eCFR API and reports\nstructure, word counts, agency attribution, corrections and history.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(titlesCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
