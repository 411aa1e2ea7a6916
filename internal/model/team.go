package model

// Category groups team roles. Only Development headcount counts toward
// feature throughput.
type Category string

const (
	CategoryDevelopment Category = "Development"
	CategoryDesign      Category = "Design"
	CategoryManagement  Category = "Management"
	CategoryQA          Category = "QA"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryDevelopment,
	CategoryDesign,
	CategoryManagement,
	CategoryQA,
}

// ParseCategory matches a category name exactly.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// TeamMember is one roster row: count people in Role at MonthlyRate each.
type TeamMember struct {
	ID          int
	Role        string
	Count       int
	MonthlyRate float64
	Category    Category
}

// CostType distinguishes recurring from one-off operational spend.
type CostType string

const (
	CostMonthly CostType = "monthly"
	CostOneTime CostType = "one-time"
)

// CostTypes lists every cost type in display order.
var CostTypes = []CostType{CostMonthly, CostOneTime}

// ParseCostType matches a cost type name exactly.
func ParseCostType(s string) (CostType, bool) {
	for _, c := range CostTypes {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Label returns the Indonesian label shown next to an item.
func (c CostType) Label() string {
	if c == CostMonthly {
		return "Bulanan"
	}
	return "Sekali Bayar"
}

// OperationalCostItem is an infrastructure or tooling expense.
type OperationalCostItem struct {
	ID   int
	Name string
	Cost float64
	Type CostType
}
