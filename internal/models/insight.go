package models

// SmartExpenseGroup is a group produced by merchant-aware grouping.
type SmartExpenseGroup struct {
	ID               string    `json:"id" yaml:"id"`
	GroupName        string    `json:"groupName" yaml:"group_name"`
	Merchant         string    `json:"merchant,omitempty" yaml:"merchant,omitempty"`
	Category         string    `json:"category" yaml:"category"`
	Reason           string    `json:"reason" yaml:"reason"`
	Expenses         []Expense `json:"expenses" yaml:"expenses"`
	Count            int       `json:"count" yaml:"count"`
	TotalAmount      float64   `json:"totalAmount" yaml:"total_amount"`
	AverageAmount    float64   `json:"averageAmount" yaml:"average_amount"`
	Frequency        string    `json:"frequency" yaml:"frequency"`
	MonthlyAmount    float64   `json:"monthlyAmount" yaml:"monthly_amount"`
	YearlyProjection float64   `json:"yearlyProjection" yaml:"yearly_projection"`
	Insights         []string  `json:"insights" yaml:"insights"`
}

// RecurringPayment is an amount bucket that looks like a subscription.
type RecurringPayment struct {
	Bucket        float64   `csv:"bucket" json:"bucket" yaml:"bucket"`
	Descriptions  []string  `csv:"-" json:"descriptions" yaml:"descriptions"`
	Occurrences   int       `csv:"occurrences" json:"occurrences" yaml:"occurrences"`
	TotalAmount   float64   `csv:"total_amount" json:"totalAmount" yaml:"total_amount"`
	AverageAmount float64   `csv:"average_amount" json:"averageAmount" yaml:"average_amount"`
	Frequency     string    `csv:"frequency" json:"frequency" yaml:"frequency"`
	YearlyCost    float64   `csv:"yearly_cost" json:"yearlyCost" yaml:"yearly_cost"`
	Expenses      []Expense `csv:"-" json:"expenses" yaml:"expenses"`
}

// SavingsInsight is an actionable recommendation derived from a group.
type SavingsInsight struct {
	GroupID          string   `json:"groupId" yaml:"group_id"`
	Kind             string   `json:"kind" yaml:"kind"`
	Title            string   `json:"title" yaml:"title"`
	Description      string   `json:"description" yaml:"description"`
	ActionSteps      []string `json:"actionSteps" yaml:"action_steps"`
	Difficulty       string   `json:"difficulty" yaml:"difficulty"`
	Timeframe        string   `json:"timeframe" yaml:"timeframe"`
	PotentialSavings float64  `json:"potentialSavings" yaml:"potential_savings"`
}

// WastageAlert flags a group whose projected cost looks avoidable.
type WastageAlert struct {
	GroupID          string  `csv:"group_id" json:"groupId" yaml:"group_id"`
	GroupName        string  `csv:"group_name" json:"groupName" yaml:"group_name"`
	Severity         string  `csv:"severity" json:"severity" yaml:"severity"`
	Message          string  `csv:"message" json:"message" yaml:"message"`
	Occurrences      int     `csv:"occurrences" json:"occurrences" yaml:"occurrences"`
	MonthlyCost      float64 `csv:"monthly_cost" json:"monthlyCost" yaml:"monthly_cost"`
	YearlyProjection float64 `csv:"yearly_projection" json:"yearlyProjection" yaml:"yearly_projection"`
}

// InsightReport bundles savings insights and wastage alerts.
type InsightReport struct {
	Insights []SavingsInsight `json:"insights" yaml:"insights"`
	Alerts   []WastageAlert   `json:"alerts" yaml:"alerts"`
}
