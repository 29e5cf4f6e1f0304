package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MaciejWiatr/next-a11y-sub000/internal/version"
)

// ExitError carries an explicit process exit code through cobra
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "next-a11y",
		Short: "next-a11y - accessibility linter and codemod for React/Next.js",
		Long: `next-a11y audits JSX/TSX components for accessibility violations and
can rewrite the source to fix them, generating alt text and labels where
natural language is needed.`,
		Version: version.Version,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(fixCmd())
	rootCmd.AddCommand(cacheCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the run logger. Logs go to stderr so reports on
// stdout stay machine-readable.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			full, _ := cmd.Flags().GetBool("full")
			if full {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("next-a11y version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().Bool("full", false, "Show detailed version information")
	return cmd
}

// targetPaths defaults to the current directory when no args are given
func targetPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}
