package cmd

import (
	"slices"
	"testing"

	"github.com/theirongolddev/estimasi/internal/config"
	"github.com/theirongolddev/estimasi/internal/model"
)

func TestLoadEstimatorAppliesChangedFlags(t *testing.T) {
	cfg = config.DefaultConfig()
	if err := rootCmd.ParseFlags([]string{"--duration", "4", "--risk", "10", "--no-tax"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	est, err := loadEstimator(rootCmd)
	if err != nil {
		t.Fatalf("loadEstimator: %v", err)
	}
	p := est.Params()
	if p.DurationMonths != 4 {
		t.Errorf("duration = %v, want 4", p.DurationMonths)
	}
	if p.RiskBufferPercent != 10 {
		t.Errorf("risk = %v, want 10", p.RiskBufferPercent)
	}
	if p.IncludeTax {
		t.Error("--no-tax should exclude PPN")
	}
	// --tax was not given, so the configured rate survives.
	if p.TaxPercent != 11 {
		t.Errorf("tax = %v, want 11", p.TaxPercent)
	}
	if p.Mode != model.ModeManual {
		t.Errorf("mode = %q, want manual", p.Mode)
	}
	if est.Totals().TaxAmount != 0 {
		t.Errorf("tax amount = %v, want 0", est.Totals().TaxAmount)
	}

	if err := rootCmd.ParseFlags([]string{"--mode", "sometimes"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if _, err := loadEstimator(rootCmd); err == nil {
		t.Error("expected an error for an unknown --mode")
	}
}

func TestNonNegativeNumber(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"3", false},
		{" 2.5 ", false},
		{"0", false},
		{"-1", true},
		{"abc", true},
		{"", true},
	}
	for _, tt := range tests {
		if err := nonNegativeNumber(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("nonNegativeNumber(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
	if got := mustFloat(" 2.5 "); got != 2.5 {
		t.Errorf("mustFloat = %v, want 2.5", got)
	}
}

func TestSetEnvOverrides(t *testing.T) {
	t.Setenv("ESTIMASI_THEME", "tokyo-night")
	t.Setenv("OTHER_THEME", "x")

	names := setEnvOverrides()
	if !slices.Contains(names, "ESTIMASI_THEME") {
		t.Errorf("names = %v, want ESTIMASI_THEME", names)
	}
	if slices.Contains(names, "OTHER_THEME") {
		t.Errorf("names = %v, should not list OTHER_THEME", names)
	}
}

func TestIsInteractive(t *testing.T) {
	if !isInteractive(rootCmd) || !isInteractive(tuiCmd) {
		t.Error("root and tui should be interactive")
	}
	if isInteractive(estimateCmd) {
		t.Error("estimate should log to stderr")
	}
}
