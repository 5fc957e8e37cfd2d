// Package analyzer is the public entry point of finny-analyzer. It parses
// receipt OCR text and analyzes expense histories with the built-in
// dictionaries. None of its functions fail: empty input yields an empty,
// well-formed result.
package analyzer

import (
	"fjacquet/finny-analyzer/internal/grouping"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/receiptparser"
	"fjacquet/finny-analyzer/internal/smartgroups"
	"fjacquet/finny-analyzer/internal/textutils"
)

// Result types shared with the internal packages.
type (
	Expense           = models.Expense
	ReceiptItem       = models.ReceiptItem
	ParsedReceipt     = models.ParsedReceipt
	ExpenseGroup      = models.ExpenseGroup
	GroupingResult    = models.GroupingResult
	RankedExpense     = models.RankedExpense
	PatternSummary    = models.PatternSummary
	SmartExpenseGroup = models.SmartExpenseGroup
	RecurringPayment  = models.RecurringPayment
)

// ParseReceiptText turns OCR text into a receipt with at least one item.
func ParseReceiptText(text string) ParsedReceipt {
	return receiptparser.ParseReceiptText(text)
}

// GroupSimilarExpenses partitions expenses into groups of similar records
// and ungrouped records.
func GroupSimilarExpenses(expenses []Expense) GroupingResult {
	return grouping.GroupSimilarExpenses(expenses)
}

// GetTopSpenders returns the limit largest expenses with their share of
// total spending.
func GetTopSpenders(expenses []Expense, limit int) []RankedExpense {
	return grouping.GetTopSpenders(expenses, limit)
}

// AnalyzeSpendingPatterns summarizes spending per pattern category.
func AnalyzeSpendingPatterns(expenses []Expense) []PatternSummary {
	return grouping.AnalyzeSpendingPatterns(expenses)
}

// CreateSmartExpenseGroups groups expenses by merchant, then by similarity.
func CreateSmartExpenseGroups(expenses []Expense) []SmartExpenseGroup {
	return smartgroups.CreateSmartExpenseGroups(expenses)
}

// DetectRecurringPayments finds amounts that repeat like subscriptions.
func DetectRecurringPayments(expenses []Expense) []RecurringPayment {
	return smartgroups.DetectRecurringPayments(expenses)
}

// CalculateSimilarity scores two descriptions from 0 (unrelated) to 100 (identical).
func CalculateSimilarity(a, b string) int {
	return textutils.CalculateSimilarity(a, b)
}
