package model

// Mode selects how project duration is obtained.
type Mode string

const (
	// ModeManual takes duration straight from user input.
	ModeManual Mode = "manual"
	// ModeFeatures derives duration from feature counts and team size.
	ModeFeatures Mode = "features"
)

// ParseMode accepts "manual" or "features" (also "feature-derived").
func ParseMode(s string) (Mode, bool) {
	switch s {
	case string(ModeManual):
		return ModeManual, true
	case string(ModeFeatures), "feature-derived":
		return ModeFeatures, true
	}
	return "", false
}

// Label returns the Indonesian display name.
func (m Mode) Label() string {
	if m == ModeFeatures {
		return "Estimasi Fitur"
	}
	return "Manual"
}

// Tier is a feature complexity tier.
type Tier int

const (
	TierSimple Tier = iota
	TierMedium
	TierComplex
	tierCount // sentinel
)

// Tiers lists every tier in display order.
var Tiers = []Tier{TierSimple, TierMedium, TierComplex}

func (t Tier) String() string {
	switch t {
	case TierSimple:
		return "simple"
	case TierMedium:
		return "medium"
	case TierComplex:
		return "complex"
	}
	return "unknown"
}

// Label returns the Indonesian display name.
func (t Tier) Label() string {
	switch t {
	case TierSimple:
		return "Sederhana"
	case TierMedium:
		return "Menengah"
	case TierComplex:
		return "Kompleks"
	}
	return "?"
}

// FeatureParameters holds per-tier feature counts and effort in days.
type FeatureParameters struct {
	Counts     [tierCount]int
	EffortDays [tierCount]float64
}

// Count returns the feature count for a tier.
func (f FeatureParameters) Count(t Tier) int {
	if t < 0 || t >= tierCount {
		return 0
	}
	return f.Counts[t]
}

// Effort returns the effort per feature, in days, for a tier.
func (f FeatureParameters) Effort(t Tier) float64 {
	if t < 0 || t >= tierCount {
		return 0
	}
	return f.EffortDays[t]
}

// ProjectParameters holds the scalar project inputs.
type ProjectParameters struct {
	Mode                Mode
	DurationMonths      float64
	RiskBufferPercent   float64
	TaxPercent          float64
	IncludeTax          bool
	TestingRatioPercent float64
	StagingWeeks        float64
}
