package estimator

import (
	"testing"

	"github.com/theirongolddev/estimasi/internal/model"
)

func TestDeriveDuration_ReferenceExample(t *testing.T) {
	f := model.FeatureParameters{
		Counts:     [3]int{5, 3, 2},
		EffortDays: [3]float64{2, 5, 10},
	}
	team := []model.TeamMember{
		{ID: 1, Count: 1, Category: model.CategoryDevelopment},
		{ID: 2, Count: 3, Category: model.CategoryQA},
	}

	if got := EffortDays(f); got != 45 {
		t.Fatalf("EffortDays = %v, want 45", got)
	}
	if got := DeriveDuration(f, team, 30, 2); got != 3.4 {
		t.Errorf("DeriveDuration = %v, want 3.4", got)
	}
}

func TestDeveloperCount(t *testing.T) {
	tests := []struct {
		name string
		team []model.TeamMember
		want int
	}{
		{"empty roster", nil, 1},
		{"no developers", []model.TeamMember{{Count: 2, Category: model.CategoryDesign}}, 1},
		{"zero-count developers", []model.TeamMember{{Count: 0, Category: model.CategoryDevelopment}}, 1},
		{"mixed", []model.TeamMember{
			{Count: 2, Category: model.CategoryDevelopment},
			{Count: 1, Category: model.CategoryQA},
			{Count: 3, Category: model.CategoryDevelopment},
		}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeveloperCount(tt.team); got != tt.want {
				t.Errorf("DeveloperCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeriveDuration_RoundsToOneDecimal(t *testing.T) {
	f := model.FeatureParameters{
		Counts:     [3]int{1, 0, 0},
		EffortDays: [3]float64{7, 0, 0},
	}
	// 7 / 20 = 0.35, no testing, no staging.
	got := DeriveDuration(f, nil, 0, 0)
	if got != 0.3 && got != 0.4 {
		t.Fatalf("DeriveDuration = %v, want a single decimal", got)
	}

	// No features leaves only staging.
	if got := DeriveDuration(model.FeatureParameters{}, nil, 30, 6); got != 1.5 {
		t.Errorf("staging only = %v, want 1.5", got)
	}
}

func TestExplainDuration_Steps(t *testing.T) {
	f := model.FeatureParameters{
		Counts:     [3]int{5, 3, 2},
		EffortDays: [3]float64{2, 5, 10},
	}
	team := []model.TeamMember{{ID: 1, Count: 1, Category: model.CategoryDevelopment}}

	s := ExplainDuration(f, team, 30, 2)
	if s.EffortDays != 45 || s.Developers != 1 {
		t.Fatalf("effort/devs = %v/%d, want 45/1", s.EffortDays, s.Developers)
	}
	if !approx(s.BaseMonths, 2.25) || !approx(s.WithTesting, 2.925) || !approx(s.StagingMonths, 0.5) {
		t.Errorf("steps = %+v", s)
	}
	if s.Months != 3.4 {
		t.Errorf("Months = %v, want 3.4", s.Months)
	}
}
