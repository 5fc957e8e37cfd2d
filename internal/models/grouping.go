package models

// TopExpense summarizes the largest member of an expense group.
type TopExpense struct {
	Description string  `json:"description" yaml:"description"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Date        string  `json:"date" yaml:"date"`
}

// ExpenseGroup is a cluster of at least two similar expenses.
type ExpenseGroup struct {
	ID          string     `json:"id" yaml:"id"`
	GroupName   string     `json:"groupName" yaml:"group_name"`
	TotalAmount float64    `json:"totalAmount" yaml:"total_amount"`
	Expenses    []Expense  `json:"expenses" yaml:"expenses"`
	TopExpense  TopExpense `json:"topExpense" yaml:"top_expense"`
	Pattern     string     `json:"pattern" yaml:"pattern"`
	Similarity  int        `json:"similarity" yaml:"similarity"`
}

// GroupingResult partitions an expense list into groups and ungrouped records.
type GroupingResult struct {
	Groups         []ExpenseGroup `json:"groups" yaml:"groups"`
	Ungrouped      []Expense      `json:"ungrouped" yaml:"ungrouped"`
	TotalGrouped   float64        `json:"totalGrouped" yaml:"total_grouped"`
	TotalUngrouped float64        `json:"totalUngrouped" yaml:"total_ungrouped"`
}

// GroupRow flattens a group membership for tabular output.
type GroupRow struct {
	GroupID     string  `csv:"group_id"`
	GroupName   string  `csv:"group_name"`
	ExpenseID   string  `csv:"expense_id"`
	Description string  `csv:"description"`
	Amount      float64 `csv:"amount"`
	Date        string  `csv:"date"`
	Category    string  `csv:"category"`
}

// Rows flattens the result, one row per grouped expense followed by the
// ungrouped ones with an empty group.
func (r GroupingResult) Rows() []GroupRow {
	var rows []GroupRow
	for _, g := range r.Groups {
		for _, e := range g.Expenses {
			rows = append(rows, GroupRow{
				GroupID:     g.ID,
				GroupName:   g.GroupName,
				ExpenseID:   e.ID,
				Description: e.Description,
				Amount:      e.Amount,
				Date:        e.Date,
				Category:    e.Category,
			})
		}
	}
	for _, e := range r.Ungrouped {
		rows = append(rows, GroupRow{
			ExpenseID:   e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.Date,
			Category:    e.Category,
		})
	}
	return rows
}

// RankedExpense is an entry of the top spenders list.
type RankedExpense struct {
	Description string  `csv:"description" json:"description" yaml:"description"`
	Amount      float64 `csv:"amount" json:"amount" yaml:"amount"`
	Date        string  `csv:"date" json:"date" yaml:"date"`
	Category    string  `csv:"category" json:"category" yaml:"category"`
	Percentage  float64 `csv:"percentage" json:"percentage" yaml:"percentage"`
}

// PatternSummary aggregates the expenses matching one pattern dictionary category.
type PatternSummary struct {
	Pattern       string  `csv:"pattern" json:"pattern" yaml:"pattern"`
	Name          string  `csv:"name" json:"name" yaml:"name"`
	TotalAmount   float64 `csv:"total_amount" json:"totalAmount" yaml:"total_amount"`
	Count         int     `csv:"count" json:"count" yaml:"count"`
	AverageAmount float64 `csv:"average_amount" json:"averageAmount" yaml:"average_amount"`
}

// PatternConfig is a pattern dictionary entry as stored in YAML.
type PatternConfig struct {
	Key      string   `yaml:"key"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// PatternsConfig represents the structure of the patterns YAML file.
type PatternsConfig struct {
	Patterns []PatternConfig `yaml:"patterns"`
}

// MerchantConfig is a known brand with its spelling variants.
type MerchantConfig struct {
	Name     string   `yaml:"name"`
	Aliases  []string `yaml:"aliases"`
	Category string   `yaml:"category"`
}

// MerchantsConfig represents the structure of the merchants YAML file.
type MerchantsConfig struct {
	Merchants []MerchantConfig `yaml:"merchants"`
}
