package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/MaciejWiatr/next-a11y-sub000/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a next-a11y configuration file",
		Long: `Generate a next-a11y.yaml configuration file with sensible defaults.
Use --interactive for a guided setup wizard.

Examples:
  # Create next-a11y.yaml in the current directory
  next-a11y init

  # Interactive setup wizard
  next-a11y init --interactive

  # Overwrite an existing file
  next-a11y init --force`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", "next-a11y.yaml",
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")

	cfg := config.Preset(config.StrictnessStandard)

	if interactive {
		var err error
		cfg, configPath, err = runInteractiveSetup(configPath)
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'next-a11y scan .' to audit your project.")

	return nil
}

func runInteractiveSetup(defaultConfigPath string) (*config.Config, string, error) {
	fmt.Println()
	fmt.Println("next-a11y Configuration Setup")
	fmt.Println("=============================")
	fmt.Println()

	strictnessLevels := []struct {
		Label       string
		Description string
		Value       config.Strictness
	}{
		{"Standard (recommended)", "Fix mechanical issues, warn on generated text", config.StrictnessStandard},
		{"Relaxed", "Report only, never modify files", config.StrictnessRelaxed},
		{"Strict", "Fix everything fixable, enforce a minimum score", config.StrictnessStrict},
	}

	strictnessTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	strictnessPrompt := promptui.Select{
		Label:     "How strict should the audit be?",
		Items:     strictnessLevels,
		Templates: strictnessTemplates,
	}

	strictnessIdx, _, err := strictnessPrompt.Run()
	if err != nil {
		return nil, "", fmt.Errorf("strictness selection cancelled: %w", err)
	}
	cfg := config.Preset(strictnessLevels[strictnessIdx].Value)

	fmt.Println()

	providers := []struct {
		Label       string
		Description string
		Value       string
	}{
		{"None", "Heuristic text only, no API calls", config.ProviderNone},
		{"Gemini", "Google Gemini (needs GEMINI_API_KEY)", config.ProviderGemini},
		{"OpenAI", "OpenAI (needs OPENAI_API_KEY)", config.ProviderOpenAI},
	}

	providerTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	providerPrompt := promptui.Select{
		Label:     "Which AI provider should generate alt text and labels?",
		Items:     providers,
		Templates: providerTemplates,
	}

	providerIdx, _, err := providerPrompt.Run()
	if err != nil {
		return nil, "", fmt.Errorf("provider selection cancelled: %w", err)
	}
	cfg.AI.Provider = providers[providerIdx].Value

	fmt.Println()

	localePrompt := promptui.Prompt{
		Label:   "Locale for generated text",
		Default: "en",
	}
	locale, err := localePrompt.Run()
	if err != nil {
		return nil, "", fmt.Errorf("locale input cancelled: %w", err)
	}
	if locale != "" {
		cfg.Locale = locale
	}

	fmt.Println()

	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}
	outputPath, err := outputPrompt.Run()
	if err != nil {
		return nil, "", fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	return cfg, outputPath, nil
}
