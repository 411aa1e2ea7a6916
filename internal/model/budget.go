// Package model defines the estimator's input state and derived totals.
package model

// Totals holds the derived cost breakdown. It is always recomputed from
// inputs and never edited directly.
type Totals struct {
	Manpower     float64
	Operational  float64
	Subtotal     float64
	BufferAmount float64
	TaxAmount    float64
	GrandTotal   float64
}

// Taxable returns the base tax is charged on (subtotal plus risk buffer).
func (t Totals) Taxable() float64 {
	return t.Subtotal + t.BufferAmount
}

// Input is the full mutable input state an estimate is computed from.
type Input struct {
	Team        []TeamMember
	Operational []OperationalCostItem
	Features    FeatureParameters
	Params      ProjectParameters
}

// Clone returns a deep copy so callers can't alias the slices.
func (in Input) Clone() Input {
	out := in
	out.Team = append([]TeamMember(nil), in.Team...)
	out.Operational = append([]OperationalCostItem(nil), in.Operational...)
	return out
}
