package estimator

import "github.com/theirongolddev/estimasi/internal/model"

// MemberSubtotal is a single roster line: rate × headcount × duration.
func MemberSubtotal(m model.TeamMember, durationMonths float64) float64 {
	return m.MonthlyRate * float64(m.Count) * durationMonths
}

// ItemCost is a single operational line. Monthly items scale with duration;
// one-time items don't.
func ItemCost(item model.OperationalCostItem, durationMonths float64) float64 {
	if item.Type == model.CostMonthly {
		return item.Cost * durationMonths
	}
	return item.Cost
}

// Manpower sums every roster line.
func Manpower(team []model.TeamMember, durationMonths float64) float64 {
	var total float64
	for _, m := range team {
		total += MemberSubtotal(m, durationMonths)
	}
	return total
}

// Operational sums every operational line.
func Operational(items []model.OperationalCostItem, durationMonths float64) float64 {
	var total float64
	for _, item := range items {
		total += ItemCost(item, durationMonths)
	}
	return total
}

// Aggregate computes the full cost breakdown for the given inputs.
// The risk buffer applies to the subtotal; tax applies to subtotal plus
// buffer and only when IncludeTax is set.
func Aggregate(team []model.TeamMember, items []model.OperationalCostItem, p model.ProjectParameters) model.Totals {
	var t model.Totals
	t.Manpower = Manpower(team, p.DurationMonths)
	t.Operational = Operational(items, p.DurationMonths)
	t.Subtotal = t.Manpower + t.Operational
	t.BufferAmount = t.Subtotal * (p.RiskBufferPercent / 100)

	taxable := t.Subtotal + t.BufferAmount
	if p.IncludeTax {
		t.TaxAmount = taxable * (p.TaxPercent / 100)
	}
	t.GrandTotal = taxable + t.TaxAmount
	return t
}

// Compute derives duration when the input is in feature mode, then
// aggregates. It returns the parameters actually used.
func Compute(in model.Input) (model.ProjectParameters, model.Totals) {
	p := in.Params
	if p.Mode == model.ModeFeatures {
		p.DurationMonths = DeriveDuration(in.Features, in.Team, p.TestingRatioPercent, p.StagingWeeks)
	}
	return p, Aggregate(in.Team, in.Operational, p)
}

// CategoryCost is the manpower spend of one category.
type CategoryCost struct {
	Category  model.Category
	Headcount int
	Amount    float64
}

// ManpowerByCategory splits manpower by category, in model.Categories order.
// Categories with no members are omitted.
func ManpowerByCategory(team []model.TeamMember, durationMonths float64) []CategoryCost {
	var out []CategoryCost
	for _, c := range model.Categories {
		cc := CategoryCost{Category: c}
		found := false
		for _, m := range team {
			if m.Category != c {
				continue
			}
			found = true
			cc.Headcount += m.Count
			cc.Amount += MemberSubtotal(m, durationMonths)
		}
		if found {
			out = append(out, cc)
		}
	}
	return out
}
