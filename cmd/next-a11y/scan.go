package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MaciejWiatr/next-a11y-sub000/app"
	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/config"
	"github.com/MaciejWiatr/next-a11y-sub000/service"
)

var (
	scanFormat   string
	scanConfig   string
	scanMinScore int
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Audit components for accessibility violations",
		Long: `Scan JSX/TSX files for accessibility violations and report them with
an overall score. No files are modified.

Examples:
  # Scan the current project
  next-a11y scan

  # Scan specific directories as JSON
  next-a11y scan --format json src/components src/app

  # Fail CI when the score drops below 80
  next-a11y scan --min-score 80`,
		RunE:          runScan,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&scanFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&scanConfig, "config", "c", "",
		"Path to configuration file")
	cmd.Flags().IntVar(&scanMinScore, "min-score", 0,
		"Exit with code 1 when the score is below this value")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	log := newLogger()
	paths := targetPaths(args)

	progress := service.NewProgressManager(scanFormat == "" || scanFormat == "text")
	defer progress.Close()

	uc := app.NewScanUseCase(service.NewOutputFormatter(), progress, log)
	result, err := uc.Execute(cmd.Context(), domain.ScanRequest{
		Paths:        paths,
		OutputFormat: domain.OutputFormat(scanFormat),
		OutputWriter: os.Stdout,
		ConfigPath:   scanConfig,
	})
	if err != nil {
		return err
	}

	return checkMinScore(result, scanMinScore, scanConfig, paths)
}

// checkMinScore applies the score gate: the flag wins over the config
// file, zero disables.
func checkMinScore(result *domain.ScanResult, flagMin int, configPath string, paths []string) error {
	threshold := flagMin
	if threshold == 0 {
		if cfg, err := config.Load(configPath, paths[0]); err == nil {
			threshold = cfg.MinScore
		}
	}
	if threshold > 0 && result.Score < threshold {
		return &ExitError{
			Code:    1,
			Message: fmt.Sprintf("accessibility score %d is below the minimum %d", result.Score, threshold),
		}
	}
	return nil
}
