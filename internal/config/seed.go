package config

import (
	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/model"
)

// Seed converts the configuration into the initial estimator input. Rows
// get ids 1..n in file order. Unknown categories and cost types fall back
// to Development and one-time; negative numbers become 0.
func (c Config) Seed() model.Input {
	in := model.Input{
		Team:        make([]model.TeamMember, 0, len(c.Team)),
		Operational: make([]model.OperationalCostItem, 0, len(c.Operational)),
	}

	for i, m := range c.Team {
		cat, ok := model.ParseCategory(m.Category)
		if !ok {
			cat = model.CategoryDevelopment
		}
		in.Team = append(in.Team, model.TeamMember{
			ID:          i + 1,
			Role:        m.Role,
			Count:       max(m.Count, 0),
			MonthlyRate: max(m.MonthlyRate, 0),
			Category:    cat,
		})
	}

	for i, item := range c.Operational {
		typ, ok := model.ParseCostType(item.Type)
		if !ok {
			typ = model.CostOneTime
		}
		in.Operational = append(in.Operational, model.OperationalCostItem{
			ID:   i + 1,
			Name: item.Name,
			Cost: max(item.Cost, 0),
			Type: typ,
		})
	}

	f := c.Features
	in.Features = model.FeatureParameters{
		Counts:     [3]int{max(f.SimpleCount, 0), max(f.MediumCount, 0), max(f.ComplexCount, 0)},
		EffortDays: [3]float64{max(f.SimpleEffort, 0), max(f.MediumEffort, 0), max(f.ComplexEffort, 0)},
	}

	mode, ok := model.ParseMode(c.Project.Mode)
	if !ok {
		mode = model.ModeManual
	}
	p := c.Project
	in.Params = model.ProjectParameters{
		Mode:                mode,
		DurationMonths:      max(p.DurationMonths, 0),
		RiskBufferPercent:   max(p.RiskBufferPercent, 0),
		TaxPercent:          max(p.TaxPercent, 0),
		IncludeTax:          p.IncludeTax,
		TestingRatioPercent: max(p.TestingRatioPercent, 0),
		StagingWeeks:        max(p.StagingWeeks, 0),
	}
	return in
}

// NewEstimator seeds an Estimator from the configuration.
func (c Config) NewEstimator() *estimator.Estimator {
	return estimator.New(c.Seed())
}
