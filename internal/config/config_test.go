package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/estimasi/internal/model"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	SetPath(p)
	t.Cleanup(func() { SetPath("") })
	return p
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestParse_ReplacesListsWholesale(t *testing.T) {
	cfg, err := Parse([]byte(`
[project]
tax_percent = 12

[[team]]
role = "Mobile Dev"
count = 2
monthly_rate = 18000000
category = "Development"
`))
	require.NoError(t, err)

	require.Len(t, cfg.Team, 1)
	assert.Equal(t, "Mobile Dev", cfg.Team[0].Role)
	assert.Equal(t, 2, cfg.Team[0].Count)
	assert.InDelta(t, 18_000_000, cfg.Team[0].MonthlyRate, 0)

	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultConfig().Operational, cfg.Operational)
	assert.InDelta(t, 12, cfg.Project.TaxPercent, 0)
	assert.InDelta(t, 20, cfg.Project.RiskBufferPercent, 0)
	assert.True(t, cfg.Project.IncludeTax)
}

func TestParse_EmptyListClearsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("operational = []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Operational)
	assert.Len(t, cfg.Team, 5)
}

func TestParse_InvalidTOML(t *testing.T) {
	cfg, err := Parse([]byte("[project\n"))
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	p := useTempConfig(t)

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Project.Mode = "features"
	cfg.Team = cfg.Team[:2]
	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSeed_DefaultsMatchReferenceForm(t *testing.T) {
	in := DefaultConfig().Seed()

	require.Len(t, in.Team, 5)
	for i, m := range in.Team {
		assert.Equal(t, i+1, m.ID)
	}
	assert.Equal(t, model.CategoryManagement, in.Team[0].Category)
	assert.Equal(t, model.CostMonthly, in.Operational[0].Type)
	assert.Equal(t, model.CostOneTime, in.Operational[1].Type)
	assert.Equal(t, model.ModeManual, in.Params.Mode)
	assert.Equal(t, [3]int{5, 3, 2}, [3]int(in.Features.Counts))

	e := DefaultConfig().NewEstimator()
	assert.InDelta(t, 297_702_000, e.Totals().GrandTotal, 1e-6)
}

func TestSeed_CoercesUnknownValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Team = []MemberConfig{{Role: "X", Count: -3, MonthlyRate: -1, Category: "Sales"}}
	cfg.Operational = []ItemConfig{{Name: "Y", Cost: 10, Type: "weekly"}}
	cfg.Project.Mode = "auto"

	in := cfg.Seed()
	assert.Equal(t, 0, in.Team[0].Count)
	assert.Zero(t, in.Team[0].MonthlyRate)
	assert.Equal(t, model.CategoryDevelopment, in.Team[0].Category)
	assert.Equal(t, model.CostOneTime, in.Operational[0].Type)
	assert.Equal(t, model.ModeManual, in.Params.Mode)
}

func TestLoadWithEnv_AppliesOverrides(t *testing.T) {
	p := useTempConfig(t)
	require.NoError(t, os.WriteFile(p, []byte("[project]\ntax_percent = 10\n"), 0o600))

	t.Setenv("ESTIMASI_TAX_PERCENT", "12.5")
	t.Setenv("ESTIMASI_INCLUDE_TAX", "false")
	t.Setenv("ESTIMASI_THEME", "terminal")

	cfg, err := LoadWithEnv()
	require.NoError(t, err)
	assert.InDelta(t, 12.5, cfg.Project.TaxPercent, 0)
	assert.False(t, cfg.Project.IncludeTax)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.InDelta(t, 20, cfg.Project.RiskBufferPercent, 0)
}

func TestLoadWithEnv_ConfigPathFromEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "alt.toml")
	require.NoError(t, os.WriteFile(p, []byte("[appearance]\ntheme = \"catppuccin-mocha\"\n"), 0o600))
	t.Setenv("ESTIMASI_CONFIG", p)
	t.Cleanup(func() { SetPath("") })

	cfg, err := LoadWithEnv()
	require.NoError(t, err)
	assert.Equal(t, "catppuccin-mocha", cfg.Appearance.Theme)
	assert.Equal(t, p, Path())
}

func TestLoadWithEnv_BadValue(t *testing.T) {
	useTempConfig(t)
	t.Setenv("ESTIMASI_TAX_PERCENT", "lots")

	_, err := LoadWithEnv()
	require.Error(t, err)
}
