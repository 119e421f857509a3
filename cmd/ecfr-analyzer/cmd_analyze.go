package main

import (
	"encoding/json"
	"fmt"
	"github.com/ambrlytics/ecfr-analyzer/service"
	"github.com/spf13/cobra"
	"strconv"
)

var analyzeCompact bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <title-number>",
	Short: "Analyze one title and print the report as JSON",
	Long: `Runs the full analysis of a title. Failures do not change the exit code,
they are reported in the "error" field of a zero-valued report.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeCompact, "compact", false, "print the report on a single line")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	titleNumber, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid title number %q", args[0])
	}

	var analysisService *service.AnalysisService
	stop, err := populate(cmd.Context(), &analysisService)
	if err != nil {
		return err
	}
	defer stop()

	analysis := analysisService.Analyze(cmd.Context(), titleNumber)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	if !analyzeCompact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(analysis)
}
