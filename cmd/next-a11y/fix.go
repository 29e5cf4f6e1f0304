package main

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/MaciejWiatr/next-a11y-sub000/app"
	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/fixer"
	"github.com/MaciejWiatr/next-a11y-sub000/service"
)

var (
	fixFormat      string
	fixConfig      string
	fixDryRun      bool
	fixYes         bool
	fixInteractive bool
	fixMinScore    int
)

func fixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Scan and rewrite components to fix violations",
		Long: `Scan JSX/TSX files and apply the resulting fixes in place. Text for
alt attributes, labels, and titles is generated when an AI provider is
configured, with cached results reused across runs.

Examples:
  # Fix everything fixable
  next-a11y fix

  # Show what would change without writing
  next-a11y fix --dry-run

  # Confirm each fix individually
  next-a11y fix --interactive`,
		RunE:          runFix,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&fixFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().StringVarP(&fixConfig, "config", "c", "",
		"Path to configuration file")
	cmd.Flags().BoolVar(&fixDryRun, "dry-run", false,
		"Compute fixes without writing files")
	cmd.Flags().BoolVarP(&fixYes, "yes", "y", false,
		"Apply all fixes without confirmation")
	cmd.Flags().BoolVarP(&fixInteractive, "interactive", "i", false,
		"Confirm each fix before applying it")
	cmd.Flags().IntVar(&fixMinScore, "min-score", 0,
		"Exit with code 1 when the post-fix score is below this value")

	return cmd
}

func runFix(cmd *cobra.Command, args []string) error {
	log := newLogger()
	paths := targetPaths(args)

	progress := service.NewProgressManager(fixFormat == "" || fixFormat == "text")
	defer progress.Close()

	var confirm fixer.ConfirmFunc
	if fixInteractive && !fixYes {
		if !service.IsInteractiveEnvironment() {
			return fmt.Errorf("--interactive requires a terminal")
		}
		confirm = promptConfirm
	}

	uc := app.NewFixUseCase(service.NewOutputFormatter(), progress, log)
	result, err := uc.Execute(cmd.Context(), domain.ScanRequest{
		Paths:        paths,
		OutputFormat: domain.OutputFormat(fixFormat),
		OutputWriter: os.Stdout,
		ApplyFixes:   true,
		DryRun:       fixDryRun,
		Interactive:  fixInteractive,
		ConfigPath:   fixConfig,
	}, confirm)
	if err != nil {
		return err
	}

	// gate on the post-fix score, same as scan
	return checkMinScore(result, fixMinScore, fixConfig, paths)
}

// promptConfirm asks before each individual fix
func promptConfirm(v *domain.Violation) bool {
	label := fmt.Sprintf("Fix %s at %s", v.Rule, v.Location())
	if v.Element != "" {
		label = fmt.Sprintf("%s\n  %s\nApply", label, v.Element)
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   "y",
	}
	_, err := prompt.Run()
	return err == nil
}
