package tui

import (
	"strconv"

	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/model"
	"github.com/theirongolddev/estimasi/internal/tui/components"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type formTarget int

const (
	formMember formTarget = iota
	formItem
)

// rowValues holds the raw text a row form edits. Numbers stay strings so
// they go through the estimator's coercion like any other input.
type rowValues struct {
	name     string
	count    string
	amount   string
	category string
	costType string
}

// rowForm is an open edit form for one team member or operational item.
type rowForm struct {
	form   *huh.Form
	target formTarget
	id     int
	title  string
	vals   *rowValues
}

func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	return km
}

func newMemberForm(m model.TeamMember, width int) *rowForm {
	vals := &rowValues{
		name:     m.Role,
		count:    strconv.Itoa(m.Count),
		amount:   strconv.FormatFloat(m.MonthlyRate, 'f', -1, 64),
		category: string(m.Category),
	}

	categories := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		categories[i] = huh.NewOption(string(c), string(c))
	}

	f := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Role").Value(&vals.name),
		huh.NewSelect[string]().Title("Kategori").Options(categories...).Value(&vals.category),
		huh.NewInput().Title("Jumlah orang").Value(&vals.count),
		huh.NewInput().Title("Gaji per bulan (Rp)").Value(&vals.amount),
	)).WithKeyMap(formKeyMap()).WithShowHelp(true).WithWidth(width)

	return &rowForm{form: f, target: formMember, id: m.ID, title: "Edit Anggota Tim", vals: vals}
}

func newItemForm(item model.OperationalCostItem, width int) *rowForm {
	vals := &rowValues{
		name:     item.Name,
		amount:   strconv.FormatFloat(item.Cost, 'f', -1, 64),
		costType: string(item.Type),
	}

	types := make([]huh.Option[string], len(model.CostTypes))
	for i, ct := range model.CostTypes {
		types[i] = huh.NewOption(ct.Label(), string(ct))
	}

	f := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Nama biaya").Value(&vals.name),
		huh.NewInput().Title("Biaya (Rp)").Value(&vals.amount),
		huh.NewSelect[string]().Title("Tipe").Options(types...).Value(&vals.costType),
	)).WithKeyMap(formKeyMap()).WithShowHelp(true).WithWidth(width)

	return &rowForm{form: f, target: formItem, id: item.ID, title: "Edit Biaya Operasional", vals: vals}
}

// apply writes the form values back through the estimator.
func (r *rowForm) apply(e *estimator.Estimator) {
	v := r.vals
	switch r.target {
	case formMember:
		e.UpdateMember(r.id, estimator.MemberRole, v.name)
		e.UpdateMember(r.id, estimator.MemberCategory, v.category)
		e.UpdateMember(r.id, estimator.MemberCount, v.count)
		e.UpdateMember(r.id, estimator.MemberRate, v.amount)
	case formItem:
		e.UpdateOperational(r.id, estimator.ItemName, v.name)
		e.UpdateOperational(r.id, estimator.ItemAmount, v.amount)
		e.UpdateOperational(r.id, estimator.ItemType, v.costType)
	}
}

func (a App) openForm(r *rowForm) (tea.Model, tea.Cmd, bool) {
	a.form = r
	return a, r.form.Init(), true
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.form.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		a.form.form = f
	}

	if !formDone(a.form.form) {
		return a, cmd
	}

	if a.form.form.State == huh.StateCompleted {
		a.form.apply(a.est)
		a.form = nil
		return a.setFlash("Tersimpan", false)
	}
	a.form = nil
	return a, nil
}

func (a App) renderForm(cw int) string {
	return components.FocusCard(a.form.title, a.form.form.View(), cw)
}
