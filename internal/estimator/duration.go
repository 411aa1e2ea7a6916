package estimator

import (
	"math"

	"github.com/theirongolddev/estimasi/internal/model"
)

const (
	// WorkDaysPerMonth is the developer capacity assumed per month.
	WorkDaysPerMonth = 20
	// WeeksPerMonth converts staging weeks into months.
	WeeksPerMonth = 4
)

// EffortDays returns the total development effort across all tiers.
func EffortDays(f model.FeatureParameters) float64 {
	var total float64
	for _, t := range model.Tiers {
		total += float64(f.Count(t)) * f.Effort(t)
	}
	return total
}

// DeveloperCount sums the headcount of Development members. When nobody is
// categorized as Development it returns 1 so duration stays finite.
func DeveloperCount(team []model.TeamMember) int {
	n := 0
	for _, m := range team {
		if m.Category == model.CategoryDevelopment {
			n += m.Count
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// DurationSteps is the worked derivation of a feature-based duration.
type DurationSteps struct {
	EffortDays    float64
	Developers    int
	BaseMonths    float64
	WithTesting   float64
	StagingMonths float64
	Months        float64 // rounded to one decimal
}

// ExplainDuration runs the duration derivation and keeps every
// intermediate value.
func ExplainDuration(f model.FeatureParameters, team []model.TeamMember, testingRatioPercent, stagingWeeks float64) DurationSteps {
	s := DurationSteps{
		EffortDays: EffortDays(f),
		Developers: DeveloperCount(team),
	}
	s.BaseMonths = s.EffortDays / float64(s.Developers*WorkDaysPerMonth)
	s.WithTesting = s.BaseMonths * (1 + testingRatioPercent/100)
	s.StagingMonths = stagingWeeks / WeeksPerMonth
	s.Months = roundTenth(s.WithTesting + s.StagingMonths)
	return s
}

// DeriveDuration computes project duration in months from feature effort:
// effort is spread over the developers at 20 days a month, stretched by the
// testing ratio, then staging weeks are added. Result has one decimal.
func DeriveDuration(f model.FeatureParameters, team []model.TeamMember, testingRatioPercent, stagingWeeks float64) float64 {
	return ExplainDuration(f, team, testingRatioPercent, stagingWeeks).Months
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
