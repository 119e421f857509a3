package main

import (
	"github.com/ambrlytics/ecfr-analyzer/service"
	"github.com/spf13/cobra"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Print the upstream titles list",
	RunE:  runTitles,
}

func runTitles(cmd *cobra.Command, _ []string) error {
	var titleService *service.TitleService
	stop, err := populate(cmd.Context(), &titleService)
	if err != nil {
		return err
	}
	defer stop()

	titles, err := titleService.ListTitles(cmd.Context())
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(append(titles, '\n'))
	return err
}
