// Package estimator implements the budget calculation core: the feature
// based duration deriver, the cost aggregator, and the Estimator controller
// that owns the mutable input state.
package estimator

import (
	"go.uber.org/zap"

	"github.com/theirongolddev/estimasi/internal/model"
)

// MemberField names an editable TeamMember field.
type MemberField int

const (
	MemberRole MemberField = iota
	MemberCount
	MemberRate
	MemberCategory
)

// ItemField names an editable OperationalCostItem field.
type ItemField int

const (
	ItemName ItemField = iota
	ItemAmount
	ItemType
)

// Templates for rows added without explicit values.
var (
	NewMemberTemplate = model.TeamMember{
		Role:        "Role Baru",
		Count:       1,
		MonthlyRate: 10_000_000,
		Category:    model.CategoryDevelopment,
	}
	NewItemTemplate = model.OperationalCostItem{
		Name: "Biaya Baru",
		Cost: 1_000_000,
		Type: model.CostOneTime,
	}
)

// Estimator owns the input state of one estimate. Every mutation re-runs the
// duration deriver (in feature mode) and the cost aggregator before it
// returns, so Totals always reflects the current inputs.
//
// An Estimator is not safe for concurrent use.
type Estimator struct {
	in     model.Input
	totals model.Totals
	subs   []func(model.Totals)
}

// New returns an Estimator seeded with a copy of in.
func New(in model.Input) *Estimator {
	e := &Estimator{in: in.Clone()}
	e.recompute()
	return e
}

// OnChange registers fn to be called with fresh totals after every mutation.
func (e *Estimator) OnChange(fn func(model.Totals)) {
	e.subs = append(e.subs, fn)
}

// Input returns a copy of the current input state.
func (e *Estimator) Input() model.Input { return e.in.Clone() }

// Team returns a copy of the roster in insertion order.
func (e *Estimator) Team() []model.TeamMember {
	return append([]model.TeamMember(nil), e.in.Team...)
}

// Operational returns a copy of the operational items in insertion order.
func (e *Estimator) Operational() []model.OperationalCostItem {
	return append([]model.OperationalCostItem(nil), e.in.Operational...)
}

// Params returns the current project parameters.
func (e *Estimator) Params() model.ProjectParameters { return e.in.Params }

// Features returns the current feature parameters.
func (e *Estimator) Features() model.FeatureParameters { return e.in.Features }

// Totals returns the breakdown for the current inputs.
func (e *Estimator) Totals() model.Totals { return e.totals }

// MemberSubtotal returns the roster line for id, or false if id is unknown.
func (e *Estimator) MemberSubtotal(id int) (float64, bool) {
	for _, m := range e.in.Team {
		if m.ID == id {
			return MemberSubtotal(m, e.in.Params.DurationMonths), true
		}
	}
	return 0, false
}

func (e *Estimator) recompute() {
	p := &e.in.Params
	if p.Mode == model.ModeFeatures {
		p.DurationMonths = DeriveDuration(e.in.Features, e.in.Team, p.TestingRatioPercent, p.StagingWeeks)
	}
	e.totals = Aggregate(e.in.Team, e.in.Operational, *p)

	zap.S().Named("estimator").Debugw("recomputed",
		"mode", p.Mode,
		"duration", p.DurationMonths,
		"grand_total", e.totals.GrandTotal,
	)

	for _, fn := range e.subs {
		fn(e.totals)
	}
}

// ─── Team ───────────────────────────────────────────────────────

// AddMember appends m with a fresh id (max existing id + 1) and returns it.
func (e *Estimator) AddMember(m model.TeamMember) int {
	m.ID = nextMemberID(e.in.Team)
	if m.Count < 0 {
		m.Count = 0
	}
	m.MonthlyRate = nonNegative(m.MonthlyRate)
	if _, ok := model.ParseCategory(string(m.Category)); !ok {
		m.Category = model.CategoryDevelopment
	}
	e.in.Team = append(e.in.Team, m)
	e.recompute()
	return m.ID
}

// UpdateMember sets one field of member id from raw text input. Numeric
// text is coerced; an unknown category leaves the field as it was.
func (e *Estimator) UpdateMember(id int, field MemberField, raw string) {
	for i := range e.in.Team {
		m := &e.in.Team[i]
		if m.ID != id {
			continue
		}
		switch field {
		case MemberRole:
			m.Role = raw
		case MemberCount:
			m.Count = CoerceInt(raw)
		case MemberRate:
			m.MonthlyRate = float64(CoerceInt(raw))
		case MemberCategory:
			if c, ok := model.ParseCategory(raw); ok {
				m.Category = c
			}
		}
		e.recompute()
		return
	}
}

// RemoveMember drops member id. Unknown ids are ignored.
func (e *Estimator) RemoveMember(id int) {
	kept := e.in.Team[:0:0]
	for _, m := range e.in.Team {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(e.in.Team) {
		return
	}
	e.in.Team = kept
	e.recompute()
}

func nextMemberID(team []model.TeamMember) int {
	maxID := 0
	for _, m := range team {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	return maxID + 1
}

// ─── Operational ────────────────────────────────────────────────

// AddOperational appends item with a fresh id and returns it.
func (e *Estimator) AddOperational(item model.OperationalCostItem) int {
	item.ID = nextItemID(e.in.Operational)
	item.Cost = nonNegative(item.Cost)
	if _, ok := model.ParseCostType(string(item.Type)); !ok {
		item.Type = model.CostOneTime
	}
	e.in.Operational = append(e.in.Operational, item)
	e.recompute()
	return item.ID
}

// UpdateOperational sets one field of item id from raw text input.
func (e *Estimator) UpdateOperational(id int, field ItemField, raw string) {
	for i := range e.in.Operational {
		item := &e.in.Operational[i]
		if item.ID != id {
			continue
		}
		switch field {
		case ItemName:
			item.Name = raw
		case ItemAmount:
			item.Cost = float64(CoerceInt(raw))
		case ItemType:
			if t, ok := model.ParseCostType(raw); ok {
				item.Type = t
			}
		}
		e.recompute()
		return
	}
}

// RemoveOperational drops item id. Unknown ids are ignored.
func (e *Estimator) RemoveOperational(id int) {
	kept := e.in.Operational[:0:0]
	for _, item := range e.in.Operational {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(e.in.Operational) {
		return
	}
	e.in.Operational = kept
	e.recompute()
}

func nextItemID(items []model.OperationalCostItem) int {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

// ─── Parameters ─────────────────────────────────────────────────

// SetMode switches between manual and feature-derived duration. Leaving
// feature mode keeps the last derived duration.
func (e *Estimator) SetMode(m model.Mode) {
	if m != model.ModeFeatures {
		m = model.ModeManual
	}
	e.in.Params.Mode = m
	e.recompute()
}

// ToggleMode flips between the two modes.
func (e *Estimator) ToggleMode() {
	if e.in.Params.Mode == model.ModeFeatures {
		e.SetMode(model.ModeManual)
		return
	}
	e.SetMode(model.ModeFeatures)
}

// SetDuration sets the duration in months. It has no lasting effect in
// feature mode, where the deriver overwrites it.
func (e *Estimator) SetDuration(months float64) {
	e.in.Params.DurationMonths = nonNegative(months)
	e.recompute()
}

// SetRiskBuffer sets the contingency percentage.
func (e *Estimator) SetRiskBuffer(pct float64) {
	e.in.Params.RiskBufferPercent = nonNegative(pct)
	e.recompute()
}

// SetTaxPercent sets the tax (PPN) percentage.
func (e *Estimator) SetTaxPercent(pct float64) {
	e.in.Params.TaxPercent = nonNegative(pct)
	e.recompute()
}

// SetIncludeTax turns tax on or off.
func (e *Estimator) SetIncludeTax(on bool) {
	e.in.Params.IncludeTax = on
	e.recompute()
}

// ToggleIncludeTax flips the include-tax flag.
func (e *Estimator) ToggleIncludeTax() {
	e.SetIncludeTax(!e.in.Params.IncludeTax)
}

// SetTestingRatio sets testing time as a percentage of development time.
func (e *Estimator) SetTestingRatio(pct float64) {
	e.in.Params.TestingRatioPercent = nonNegative(pct)
	e.recompute()
}

// SetStagingWeeks sets staging and UAT time in weeks.
func (e *Estimator) SetStagingWeeks(weeks float64) {
	e.in.Params.StagingWeeks = nonNegative(weeks)
	e.recompute()
}

// SetFeatureCount sets the number of features in a tier.
func (e *Estimator) SetFeatureCount(t model.Tier, n int) {
	if t < 0 || int(t) >= len(e.in.Features.Counts) {
		return
	}
	if n < 0 {
		n = 0
	}
	e.in.Features.Counts[t] = n
	e.recompute()
}

// SetFeatureEffort sets the effort per feature, in days, for a tier.
func (e *Estimator) SetFeatureEffort(t model.Tier, days float64) {
	if t < 0 || int(t) >= len(e.in.Features.EffortDays) {
		return
	}
	e.in.Features.EffortDays[t] = nonNegative(days)
	e.recompute()
}
