package estimator

import (
	"testing"

	"github.com/theirongolddev/estimasi/internal/model"
)

func TestAggregate_ManpowerScalesWithDuration(t *testing.T) {
	in := defaultInput()
	for _, d := range []float64{0, 0.5, 1, 3, 7.25, 24} {
		want := 0.0
		for _, m := range in.Team {
			want += m.MonthlyRate * float64(m.Count) * d
		}
		if got := Manpower(in.Team, d); !approx(got, want) {
			t.Errorf("Manpower(d=%v) = %.2f, want %.2f", d, got, want)
		}
	}

	one := Manpower(in.Team, 1)
	if got := Manpower(in.Team, 4); !approx(got, one*4) {
		t.Errorf("Manpower(4) = %.2f, want 4 × %.2f", got, one)
	}
}

func TestAggregate_OneTimeItemsIgnoreDuration(t *testing.T) {
	oneTime := []model.OperationalCostItem{
		{ID: 1, Cost: 1_500_000, Type: model.CostOneTime},
		{ID: 2, Cost: 250_000, Type: model.CostOneTime},
	}
	monthly := []model.OperationalCostItem{
		{ID: 1, Cost: 2_000_000, Type: model.CostMonthly},
	}

	for _, d := range []float64{0, 1, 3, 12} {
		if got := Operational(oneTime, d); !approx(got, 1_750_000) {
			t.Errorf("one-time Operational(d=%v) = %.2f, want 1750000", d, got)
		}
		if got := Operational(monthly, d); !approx(got, 2_000_000*d) {
			t.Errorf("monthly Operational(d=%v) = %.2f, want %.2f", d, got, 2_000_000*d)
		}
	}
}

func TestAggregate_MonotoneInBufferAndTax(t *testing.T) {
	in := defaultInput()
	p := in.Params

	prev := -1.0
	for pct := 0.0; pct <= 50; pct += 5 {
		p.RiskBufferPercent = pct
		got := Aggregate(in.Team, in.Operational, p).GrandTotal
		if got < prev {
			t.Fatalf("GrandTotal decreased at buffer %v%%: %.2f < %.2f", pct, got, prev)
		}
		prev = got
	}

	p = in.Params
	prev = -1.0
	for pct := 0.0; pct <= 30; pct++ {
		p.TaxPercent = pct
		got := Aggregate(in.Team, in.Operational, p).GrandTotal
		if got < prev {
			t.Fatalf("GrandTotal decreased at tax %v%%: %.2f < %.2f", pct, got, prev)
		}
		prev = got
	}
}

func TestAggregate_ExcludedTax(t *testing.T) {
	in := defaultInput()
	p := in.Params
	p.IncludeTax = false
	p.TaxPercent = 50

	got := Aggregate(in.Team, in.Operational, p)
	if got.TaxAmount != 0 {
		t.Errorf("TaxAmount = %v, want 0", got.TaxAmount)
	}
	if got.GrandTotal != got.Subtotal+got.BufferAmount {
		t.Errorf("GrandTotal = %v, want subtotal+buffer = %v", got.GrandTotal, got.Subtotal+got.BufferAmount)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	got := Aggregate(nil, nil, model.ProjectParameters{DurationMonths: 3, RiskBufferPercent: 20, TaxPercent: 11, IncludeTax: true})
	if got != (model.Totals{}) {
		t.Errorf("Aggregate(empty) = %+v, want zero totals", got)
	}
}

func TestCompute_UsesDerivedDuration(t *testing.T) {
	in := defaultInput()
	in.Params.Mode = model.ModeFeatures
	in.Params.DurationMonths = 99

	p, totals := Compute(in)
	if p.DurationMonths != 2 {
		t.Fatalf("DurationMonths = %v, want 2", p.DurationMonths)
	}
	if !approx(totals.Manpower, 72_000_000*2) {
		t.Errorf("Manpower = %.2f, want %.2f", totals.Manpower, 72_000_000.0*2)
	}
}

func TestManpowerByCategory(t *testing.T) {
	in := defaultInput()
	got := ManpowerByCategory(in.Team, 3)

	// Development (2 members), Design, Management, QA
	if len(got) != 4 {
		t.Fatalf("got %d categories, want 4", len(got))
	}
	dev := got[0]
	if dev.Category != model.CategoryDevelopment || dev.Headcount != 2 {
		t.Errorf("first entry = %+v, want Development with 2 heads", dev)
	}
	if !approx(dev.Amount, (20_000_000+15_000_000)*3) {
		t.Errorf("development amount = %.0f", dev.Amount)
	}

	var sum float64
	for _, c := range got {
		sum += c.Amount
	}
	if !approx(sum, Manpower(in.Team, 3)) {
		t.Errorf("category amounts sum to %.0f, want manpower %.0f", sum, Manpower(in.Team, 3))
	}
}

func TestManpowerByCategory_OmitsEmpty(t *testing.T) {
	team := []model.TeamMember{{ID: 1, Count: 1, MonthlyRate: 1, Category: model.CategoryQA}}
	got := ManpowerByCategory(team, 1)
	if len(got) != 1 || got[0].Category != model.CategoryQA {
		t.Errorf("got %+v, want only QA", got)
	}
}
