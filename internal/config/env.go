package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment override, e.g.
// ESTIMASI_TAX_PERCENT.
const EnvPrefix = "estimasi"

// EnvOverrides are settings read from ESTIMASI_* environment variables.
// Nil and empty fields are left unset.
type EnvOverrides struct {
	Config            string   `split_words:"true"`
	Theme             string   `split_words:"true"`
	LogLevel          string   `split_words:"true"`
	Mode              string   `split_words:"true"`
	TaxPercent        *float64 `split_words:"true"`
	RiskBufferPercent *float64 `split_words:"true"`
	IncludeTax        *bool    `split_words:"true"`
}

// LoadEnv reads the ESTIMASI_* environment.
func LoadEnv() (EnvOverrides, error) {
	var env EnvOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvOverrides{}, fmt.Errorf("reading environment: %w", err)
	}
	return env, nil
}

// Apply overlays the set environment values onto cfg.
func (e EnvOverrides) Apply(cfg *Config) {
	if e.Theme != "" {
		cfg.Appearance.Theme = e.Theme
	}
	if e.LogLevel != "" {
		cfg.General.LogLevel = e.LogLevel
	}
	if e.Mode != "" {
		cfg.Project.Mode = e.Mode
	}
	if e.TaxPercent != nil {
		cfg.Project.TaxPercent = *e.TaxPercent
	}
	if e.RiskBufferPercent != nil {
		cfg.Project.RiskBufferPercent = *e.RiskBufferPercent
	}
	if e.IncludeTax != nil {
		cfg.Project.IncludeTax = *e.IncludeTax
	}
}

// LoadWithEnv loads the config file (or ESTIMASI_CONFIG if set) and applies
// environment overrides on top.
func LoadWithEnv() (Config, error) {
	env, err := LoadEnv()
	if err != nil {
		return DefaultConfig(), err
	}
	if env.Config != "" && pathOverride == "" {
		SetPath(env.Config)
	}

	cfg, err := Load()
	env.Apply(&cfg)
	return cfg, err
}
