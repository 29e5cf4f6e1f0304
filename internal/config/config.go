// Package config loads and validates tool configuration: provider and
// locale settings, scanner patterns, and per-rule levels. Files are
// discovered upward from the scan target so running inside a monorepo
// subdirectory picks up the project's config.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/rules"
)

// Provider identifiers for the generation backend
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// Default models per provider
const (
	DefaultGeminiModel = "gemini-1.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// DefaultCacheDirName is the cache location under the project root
const DefaultCacheDirName = ".next-a11y/cache"

// Config is the resolved tool configuration
type Config struct {
	// AI holds generation provider settings
	AI AIConfig `json:"ai" mapstructure:"ai" yaml:"ai"`

	// Locale is the BCP 47 tag generated text and curated labels use
	Locale string `json:"locale" mapstructure:"locale" yaml:"locale"`

	// CacheDir overrides the default cache location
	CacheDir string `json:"cache_dir" mapstructure:"cache_dir" yaml:"cache_dir"`

	// MinScore fails the scan (exit 1) when the score lands below it.
	// 0 disables the gate.
	MinScore int `json:"min_score" mapstructure:"min_score" yaml:"min_score"`

	// Scanner holds file discovery settings
	Scanner ScannerConfig `json:"scanner" mapstructure:"scanner" yaml:"scanner"`

	// Output holds report formatting settings
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Rules maps rule id to its level and options
	Rules map[string]domain.RuleSetting `json:"rules" mapstructure:"rules" yaml:"rules"`
}

// AIConfig holds generation provider settings. API keys never live in
// the config file; they come from the environment or a .env file.
type AIConfig struct {
	// Provider is gemini, openai, or none
	Provider string `json:"provider" mapstructure:"provider" yaml:"provider"`

	// Model overrides the provider's default model
	Model string `json:"model" mapstructure:"model" yaml:"model"`
}

// ScannerConfig holds file discovery settings
type ScannerConfig struct {
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// RespectGitignore skips files matched by the project's .gitignore
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// OutputConfig holds report formatting settings
type OutputConfig struct {
	// Format is text, json, or yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is found.
// Every known rule id gets an explicit setting.
func DefaultConfig() *Config {
	ruleSettings := make(map[string]domain.RuleSetting, len(rules.IDs()))
	for _, id := range rules.IDs() {
		ruleSettings[id] = domain.RuleSetting{Level: domain.RuleLevelFix}
	}
	// detect-only rules have nothing to apply
	ruleSettings[rules.IDHeadingOrder] = domain.RuleSetting{Level: domain.RuleLevelWarn}
	ruleSettings[rules.IDInteractiveRole] = domain.RuleSetting{Level: domain.RuleLevelWarn}
	ruleSettings[rules.IDNextImageSizes] = domain.RuleSetting{Level: domain.RuleLevelWarn}

	return &Config{
		AI: AIConfig{
			Provider: ProviderNone,
		},
		Locale: "en",
		Scanner: ScannerConfig{
			IncludePatterns: []string{"**/*.jsx", "**/*.tsx"},
			ExcludePatterns: []string{
				"node_modules",
				".next",
				".vercel",
				"dist",
				"build",
				"out",
				"coverage",
				".git",
				"**/*.test.jsx",
				"**/*.test.tsx",
				"**/*.spec.jsx",
				"**/*.spec.tsx",
				"**/*.stories.jsx",
				"**/*.stories.tsx",
			},
			RespectGitignore: true,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Rules: ruleSettings,
	}
}

// Load resolves configuration for a scan target: explicit path if
// given, otherwise upward discovery from the target, otherwise
// defaults. A .env next to the config file or target is loaded for
// provider API keys.
func Load(configPath, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findConfigFile(targetPath)
	}
	loadDotenv(configPath, targetPath)

	if configPath == "" {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}
	return cfg, nil
}

// configCandidates are the recognized config file names, checked in order
var configCandidates = []string{
	"next-a11y.yaml",
	"next-a11y.yml",
	".next-a11y.yaml",
	".next-a11y.yml",
	"next-a11y.json",
}

// findConfigFile searches for a config file from the target directory
// up to the filesystem root, then the current directory.
func findConfigFile(targetPath string) string {
	if targetPath != "" {
		if abs, err := filepath.Abs(targetPath); err == nil {
			if info, err := os.Stat(abs); err == nil && !info.IsDir() {
				abs = filepath.Dir(abs)
			}
			for dir := abs; ; dir = filepath.Dir(dir) {
				if found := searchDir(dir); found != "" {
					return found
				}
				if parent := filepath.Dir(dir); parent == dir {
					break
				}
			}
		}
	}
	return searchDir(".")
}

func searchDir(dir string) string {
	for _, candidate := range configCandidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadDotenv loads a .env file next to the config file or the target
// so GEMINI_API_KEY / OPENAI_API_KEY can live outside the shell profile.
// Existing environment variables win.
func loadDotenv(configPath, targetPath string) {
	var dirs []string
	if configPath != "" {
		dirs = append(dirs, filepath.Dir(configPath))
	}
	if targetPath != "" {
		if abs, err := filepath.Abs(targetPath); err == nil {
			if info, err := os.Stat(abs); err == nil && !info.IsDir() {
				abs = filepath.Dir(abs)
			}
			dirs = append(dirs, abs)
		}
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

// APIKey returns the provider's API key from the environment
func (c *Config) APIKey() string {
	switch c.AI.Provider {
	case ProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	}
	return ""
}

// Model returns the configured model, defaulted per provider
func (c *Config) Model() string {
	if c.AI.Model != "" {
		return c.AI.Model
	}
	switch c.AI.Provider {
	case ProviderGemini:
		return DefaultGeminiModel
	case ProviderOpenAI:
		return DefaultOpenAIModel
	}
	return ""
}

// CachePath returns the cache directory for a project root
func (c *Config) CachePath(root string) string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return filepath.Join(root, DefaultCacheDirName)
}

// RuleSetting returns the resolved setting for a rule id. Unknown ids
// in config files are validation errors; unknown ids here fall back to
// fix level so new built-in rules work without config changes.
func (c *Config) RuleSetting(id string) domain.RuleSetting {
	if s, ok := c.Rules[id]; ok {
		return s
	}
	return domain.RuleSetting{Level: domain.RuleLevelFix}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderNone, "":
	default:
		return fmt.Errorf("invalid ai.provider %q, must be one of: gemini, openai, none", c.AI.Provider)
	}

	switch c.Output.Format {
	case "text", "json", "yaml", "":
	default:
		return fmt.Errorf("invalid output.format %q, must be one of: text, json, yaml", c.Output.Format)
	}

	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score must be between 0 and 100, got %d", c.MinScore)
	}

	if len(c.Scanner.IncludePatterns) == 0 {
		return fmt.Errorf("scanner.include_patterns cannot be empty")
	}

	known := make(map[string]bool, len(rules.IDs()))
	for _, id := range rules.IDs() {
		known[id] = true
	}
	for id, setting := range c.Rules {
		if !known[id] {
			return fmt.Errorf("unknown rule %q in rules section", id)
		}
		switch setting.Level {
		case domain.RuleLevelFix, domain.RuleLevelWarn, domain.RuleLevelOff:
		default:
			return fmt.Errorf("invalid level %q for rule %q, must be one of: fix, warn, off", setting.Level, id)
		}
	}
	return nil
}

// Save writes the configuration to a YAML file, used by the init wizard
func Save(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("ai", cfg.AI)
	v.Set("locale", cfg.Locale)
	v.Set("min_score", cfg.MinScore)
	v.Set("scanner", cfg.Scanner)
	v.Set("output", cfg.Output)
	v.Set("rules", cfg.Rules)

	return v.WriteConfig()
}
