package config

import (
	"github.com/MaciejWiatr/next-a11y-sub000/domain"
	"github.com/MaciejWiatr/next-a11y-sub000/internal/rules"
)

// Strictness selects how aggressively the preset fixes violations
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// Strictnesses lists the preset levels in ascending order
func Strictnesses() []Strictness {
	return []Strictness{StrictnessRelaxed, StrictnessStandard, StrictnessStrict}
}

// Preset returns a config preconfigured for a strictness level.
// Relaxed only warns, standard fixes mechanical rules but warns on
// AI-generated text, strict fixes everything fixable and gates on score.
func Preset(level Strictness) *Config {
	cfg := DefaultConfig()
	switch level {
	case StrictnessRelaxed:
		for id, setting := range cfg.Rules {
			setting.Level = domain.RuleLevelWarn
			cfg.Rules[id] = setting
		}
	case StrictnessStandard:
		for _, r := range rules.All(cfg.Locale) {
			if r.Type() == domain.RuleTypeAI {
				setting := cfg.Rules[r.ID()]
				setting.Level = domain.RuleLevelWarn
				cfg.Rules[r.ID()] = setting
			}
		}
	case StrictnessStrict:
		cfg.MinScore = 80
		buttonType := cfg.Rules[rules.IDButtonType]
		buttonType.Options.ScanCustomComponents = true
		cfg.Rules[rules.IDButtonType] = buttonType
	}
	return cfg
}
