package estimator

import (
	"math"
	"testing"

	"github.com/theirongolddev/estimasi/internal/model"
)

func defaultInput() model.Input {
	return model.Input{
		Team: []model.TeamMember{
			{ID: 1, Role: "Project Manager", Count: 1, MonthlyRate: 15_000_000, Category: model.CategoryManagement},
			{ID: 2, Role: "UI/UX Designer", Count: 1, MonthlyRate: 12_000_000, Category: model.CategoryDesign},
			{ID: 3, Role: "Senior Backend Dev", Count: 1, MonthlyRate: 20_000_000, Category: model.CategoryDevelopment},
			{ID: 4, Role: "Frontend Dev", Count: 1, MonthlyRate: 15_000_000, Category: model.CategoryDevelopment},
			{ID: 5, Role: "QA Tester", Count: 1, MonthlyRate: 10_000_000, Category: model.CategoryQA},
		},
		Operational: []model.OperationalCostItem{
			{ID: 1, Name: "Server & Cloud (AWS/GCP)", Cost: 2_000_000, Type: model.CostMonthly},
			{ID: 2, Name: "Lisensi Software & Tools", Cost: 1_500_000, Type: model.CostOneTime},
		},
		Features: model.FeatureParameters{
			Counts:     [3]int{5, 3, 2},
			EffortDays: [3]float64{2, 5, 10},
		},
		Params: model.ProjectParameters{
			Mode:                model.ModeManual,
			DurationMonths:      3,
			RiskBufferPercent:   20,
			TaxPercent:          11,
			IncludeTax:          true,
			TestingRatioPercent: 30,
			StagingWeeks:        2,
		},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestEstimator_DefaultEndToEnd(t *testing.T) {
	e := New(defaultInput())
	got := e.Totals()

	want := model.Totals{
		Manpower:     216_000_000,
		Operational:  7_500_000,
		Subtotal:     223_500_000,
		BufferAmount: 44_700_000,
		TaxAmount:    29_502_000,
		GrandTotal:   297_702_000,
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"Manpower", got.Manpower, want.Manpower},
		{"Operational", got.Operational, want.Operational},
		{"Subtotal", got.Subtotal, want.Subtotal},
		{"BufferAmount", got.BufferAmount, want.BufferAmount},
		{"Taxable", got.Taxable(), 268_200_000},
		{"TaxAmount", got.TaxAmount, want.TaxAmount},
		{"GrandTotal", got.GrandTotal, want.GrandTotal},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s = %.2f, want %.2f", c.name, c.got, c.want)
		}
	}
}

func TestEstimator_FeatureModeDerivesDuration(t *testing.T) {
	in := defaultInput()
	// One developer only.
	in.Team = []model.TeamMember{
		{ID: 1, Role: "Dev", Count: 1, MonthlyRate: 10_000_000, Category: model.CategoryDevelopment},
	}
	e := New(in)
	if got := e.Params().DurationMonths; got != 3 {
		t.Fatalf("manual duration = %v, want 3", got)
	}

	e.SetMode(model.ModeFeatures)
	if got := e.Params().DurationMonths; got != 3.4 {
		t.Fatalf("derived duration = %v, want 3.4", got)
	}
	if !approx(e.Totals().Manpower, 34_000_000) {
		t.Errorf("Manpower = %.2f, want 34000000", e.Totals().Manpower)
	}

	// Manual input is overwritten while in feature mode.
	e.SetDuration(12)
	if got := e.Params().DurationMonths; got != 3.4 {
		t.Errorf("duration after manual set in feature mode = %v, want 3.4", got)
	}

	// Leaving feature mode keeps the derived value.
	e.SetMode(model.ModeManual)
	if got := e.Params().DurationMonths; got != 3.4 {
		t.Errorf("duration after switching to manual = %v, want 3.4", got)
	}
	e.SetDuration(6)
	if got := e.Params().DurationMonths; got != 6 {
		t.Errorf("manual duration = %v, want 6", got)
	}
}

func TestEstimator_FeatureModeTracksTeamChanges(t *testing.T) {
	in := defaultInput()
	in.Params.Mode = model.ModeFeatures
	e := New(in)

	// Two developers: 45 / 40 = 1.125 * 1.3 = 1.4625 + 0.5 = 1.9625 -> 2.0
	if got := e.Params().DurationMonths; got != 2 {
		t.Fatalf("duration with 2 devs = %v, want 2", got)
	}

	e.UpdateMember(4, MemberCategory, "Design")
	if got := e.Params().DurationMonths; got != 3.4 {
		t.Errorf("duration with 1 dev = %v, want 3.4", got)
	}

	e.SetFeatureCount(model.TierComplex, 0)
	// 25 / 20 = 1.25 * 1.3 = 1.625 + 0.5 = 2.125 -> 2.1
	if got := e.Params().DurationMonths; got != 2.1 {
		t.Errorf("duration after dropping complex features = %v, want 2.1", got)
	}
}

func TestEstimator_AddMemberAssignsGreaterID(t *testing.T) {
	in := defaultInput()
	in.Team[2].ID = 42
	e := New(in)

	id := e.AddMember(NewMemberTemplate)
	if id != 43 {
		t.Fatalf("new id = %d, want 43", id)
	}
	for _, m := range e.Team()[:len(e.Team())-1] {
		if m.ID >= id {
			t.Errorf("existing id %d not below new id %d", m.ID, id)
		}
	}

	empty := New(model.Input{})
	if got := empty.AddMember(NewMemberTemplate); got != 1 {
		t.Errorf("first id on empty roster = %d, want 1", got)
	}
	if got := empty.AddOperational(NewItemTemplate); got != 1 {
		t.Errorf("first id on empty item list = %d, want 1", got)
	}
}

func TestEstimator_RemoveMemberKeepsOtherLines(t *testing.T) {
	e := New(defaultInput())

	before := map[int]float64{}
	for _, m := range e.Team() {
		v, _ := e.MemberSubtotal(m.ID)
		before[m.ID] = v
	}

	e.RemoveMember(3)
	if _, ok := e.MemberSubtotal(3); ok {
		t.Fatal("member 3 still present after removal")
	}
	for _, m := range e.Team() {
		v, _ := e.MemberSubtotal(m.ID)
		if !approx(v, before[m.ID]) {
			t.Errorf("member %d subtotal = %.2f, want %.2f", m.ID, v, before[m.ID])
		}
	}
	if !approx(e.Totals().Manpower, 216_000_000-60_000_000) {
		t.Errorf("Manpower after removal = %.2f", e.Totals().Manpower)
	}

	// Unknown ids are a no-op.
	n := len(e.Team())
	e.RemoveMember(999)
	if len(e.Team()) != n {
		t.Errorf("removing unknown id changed roster size")
	}
}

func TestEstimator_UpdateMemberCoercesInput(t *testing.T) {
	e := New(defaultInput())

	e.UpdateMember(1, MemberCount, "abc")
	e.UpdateMember(2, MemberRate, "")
	e.UpdateMember(3, MemberCount, "2 orang")
	e.UpdateMember(4, MemberCategory, "Marketing")
	e.UpdateMember(5, MemberRole, "QA Lead")

	team := e.Team()
	if team[0].Count != 0 {
		t.Errorf("Count from %q = %d, want 0", "abc", team[0].Count)
	}
	if team[1].MonthlyRate != 0 {
		t.Errorf("MonthlyRate from empty = %v, want 0", team[1].MonthlyRate)
	}
	if team[2].Count != 2 {
		t.Errorf("Count from %q = %d, want 2", "2 orang", team[2].Count)
	}
	if team[3].Category != model.CategoryDevelopment {
		t.Errorf("unknown category changed field to %q", team[3].Category)
	}
	if team[4].Role != "QA Lead" {
		t.Errorf("Role = %q, want QA Lead", team[4].Role)
	}
}

func TestEstimator_OperationalMutations(t *testing.T) {
	e := New(defaultInput())

	id := e.AddOperational(NewItemTemplate)
	if id != 3 {
		t.Fatalf("new item id = %d, want 3", id)
	}
	if !approx(e.Totals().Operational, 8_500_000) {
		t.Errorf("Operational = %.2f, want 8500000", e.Totals().Operational)
	}

	e.UpdateOperational(id, ItemType, "monthly")
	if !approx(e.Totals().Operational, 10_500_000) {
		t.Errorf("Operational after switching to monthly = %.2f, want 10500000", e.Totals().Operational)
	}

	e.UpdateOperational(id, ItemAmount, "x")
	e.UpdateOperational(id, ItemName, "Domain")
	ops := e.Operational()
	if ops[2].Cost != 0 || ops[2].Name != "Domain" {
		t.Errorf("item = %+v, want cost 0 name Domain", ops[2])
	}

	e.RemoveOperational(1)
	if !approx(e.Totals().Operational, 1_500_000) {
		t.Errorf("Operational after removal = %.2f, want 1500000", e.Totals().Operational)
	}
}

func TestEstimator_OnChangeFiresAfterMutation(t *testing.T) {
	e := New(defaultInput())

	var calls int
	var last model.Totals
	e.OnChange(func(tt model.Totals) {
		calls++
		last = tt
	})

	e.ToggleIncludeTax()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if last.TaxAmount != 0 {
		t.Errorf("TaxAmount after disabling tax = %v, want 0", last.TaxAmount)
	}
	if !approx(last.GrandTotal, 268_200_000) {
		t.Errorf("GrandTotal without tax = %.2f, want 268200000", last.GrandTotal)
	}
}

func TestEstimator_AccessorsReturnCopies(t *testing.T) {
	e := New(defaultInput())
	team := e.Team()
	team[0].Count = 100
	if e.Team()[0].Count != 1 {
		t.Error("mutating Team() result changed estimator state")
	}
}

func TestEstimator_UpdateItemAmountFeedsItemCost(t *testing.T) {
	e := New(defaultInput())

	e.UpdateOperational(1, ItemAmount, "2500000abc")
	item := e.Operational()[0]
	if item.Cost != 2_500_000 {
		t.Fatalf("cost = %.2f, want 2500000", item.Cost)
	}
	if got := ItemCost(item, e.Params().DurationMonths); !approx(got, 7_500_000) {
		t.Errorf("ItemCost = %.2f, want 7500000", got)
	}
	if !approx(e.Totals().Operational, 9_000_000) {
		t.Errorf("Operational = %.2f, want 9000000", e.Totals().Operational)
	}
}
