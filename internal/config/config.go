// Package config loads and saves estimasi configuration: appearance, the
// seed roster and operational costs, and default project parameters.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all estimasi configuration.
type Config struct {
	General     GeneralConfig    `toml:"general"`
	Appearance  AppearanceConfig `toml:"appearance"`
	Project     ProjectConfig    `toml:"project"`
	Features    FeaturesConfig   `toml:"features"`
	Team        []MemberConfig   `toml:"team"`
	Operational []ItemConfig     `toml:"operational"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	LogLevel string `toml:"log_level,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ProjectConfig holds the project parameters an estimate starts from.
type ProjectConfig struct {
	Mode                string  `toml:"mode"`
	DurationMonths      float64 `toml:"duration_months"`
	RiskBufferPercent   float64 `toml:"risk_buffer_percent"`
	TaxPercent          float64 `toml:"tax_percent"`
	IncludeTax          bool    `toml:"include_tax"`
	TestingRatioPercent float64 `toml:"testing_ratio_percent"`
	StagingWeeks        float64 `toml:"staging_weeks"`
}

// FeaturesConfig holds feature counts and effort (days) per tier.
type FeaturesConfig struct {
	SimpleCount   int     `toml:"simple_count"`
	MediumCount   int     `toml:"medium_count"`
	ComplexCount  int     `toml:"complex_count"`
	SimpleEffort  float64 `toml:"simple_effort_days"`
	MediumEffort  float64 `toml:"medium_effort_days"`
	ComplexEffort float64 `toml:"complex_effort_days"`
}

// MemberConfig is one seed roster row.
type MemberConfig struct {
	Role        string  `toml:"role"`
	Count       int     `toml:"count"`
	MonthlyRate float64 `toml:"monthly_rate"`
	Category    string  `toml:"category"`
}

// ItemConfig is one seed operational cost row.
type ItemConfig struct {
	Name string  `toml:"name"`
	Cost float64 `toml:"cost"`
	Type string  `toml:"type"`
}

// DefaultConfig returns the default configuration: a five-person team at
// Indonesian mid-level market rates, cloud hosting plus tooling licences,
// and a three month manual estimate with 20% buffer and 11% PPN.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Project: ProjectConfig{
			Mode:                "manual",
			DurationMonths:      3,
			RiskBufferPercent:   20,
			TaxPercent:          11,
			IncludeTax:          true,
			TestingRatioPercent: 30,
			StagingWeeks:        2,
		},
		Features: FeaturesConfig{
			SimpleCount:   5,
			MediumCount:   3,
			ComplexCount:  2,
			SimpleEffort:  2,
			MediumEffort:  5,
			ComplexEffort: 10,
		},
		Team: []MemberConfig{
			{Role: "Project Manager", Count: 1, MonthlyRate: 15_000_000, Category: "Management"},
			{Role: "UI/UX Designer", Count: 1, MonthlyRate: 12_000_000, Category: "Design"},
			{Role: "Senior Backend Dev", Count: 1, MonthlyRate: 20_000_000, Category: "Development"},
			{Role: "Frontend Dev", Count: 1, MonthlyRate: 15_000_000, Category: "Development"},
			{Role: "QA Tester", Count: 1, MonthlyRate: 10_000_000, Category: "QA"},
		},
		Operational: []ItemConfig{
			{Name: "Server & Cloud (AWS/GCP)", Cost: 2_000_000, Type: "monthly"},
			{Name: "Lisensi Software & Tools", Cost: 1_500_000, Type: "one-time"},
		},
	}
}

var pathOverride string

// SetPath points Load, Save and Exists at an explicit file instead of the
// XDG location. An empty path restores the default.
func SetPath(p string) {
	pathOverride = p
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "estimasi")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "estimasi")
}

// Path returns the full path to the config file.
func Path() string {
	if pathOverride != "" {
		return pathOverride
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A [[team]] or [[operational]] list in the file replaces the default list
// wholesale; scalar settings fall back to defaults individually.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML config data on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	defaults := DefaultConfig()
	cfg.Team = nil
	cfg.Operational = nil

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return defaults, fmt.Errorf("parsing config: %w", err)
	}

	if !md.IsDefined("team") {
		cfg.Team = defaults.Team
	}
	if !md.IsDefined("operational") {
		cfg.Operational = defaults.Operational
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(Path()), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
