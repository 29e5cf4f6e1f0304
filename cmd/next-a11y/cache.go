package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MaciejWiatr/next-a11y-sub000/app"
)

var cacheConfig string

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the generation cache",
	}

	cmd.PersistentFlags().StringVarP(&cacheConfig, "config", "c", "",
		"Path to configuration file")

	cmd.AddCommand(&cobra.Command{
		Use:   "stats [path]",
		Short: "Show cache entry count and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := app.NewCacheUseCase(newLogger())
			return uc.Stats(cacheConfig, targetPaths(args)[0], os.Stdout)
		},
		SilenceUsage: true,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear [path]",
		Short: "Drop all cached generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := app.NewCacheUseCase(newLogger())
			return uc.Clear(cacheConfig, targetPaths(args)[0], os.Stdout)
		},
		SilenceUsage: true,
	})

	return cmd
}
