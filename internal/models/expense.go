// Package models provides the data structures used throughout the application.
package models

// Expense is a historical expense record owned by the caller. The analysis
// packages only ever read it.
type Expense struct {
	ID          string  `csv:"id" json:"id" yaml:"id"`
	Description string  `csv:"description" json:"description" yaml:"description"`
	Amount      float64 `csv:"amount" json:"amount" yaml:"amount"`
	Date        string  `csv:"date" json:"date" yaml:"date"`
	Category    string  `csv:"category" json:"category" yaml:"category"`
}

// ReceiptItem is one line item extracted from receipt text.
type ReceiptItem struct {
	Name          string `csv:"name" json:"name" yaml:"name"`
	Amount        string `csv:"amount" json:"amount" yaml:"amount"`
	Category      string `csv:"category" json:"category,omitempty" yaml:"category,omitempty"`
	Date          string `csv:"date" json:"date,omitempty" yaml:"date,omitempty"`
	PaymentMethod string `csv:"payment_method" json:"paymentMethod,omitempty" yaml:"payment_method,omitempty"`
}

// ParsedReceipt is the structured result of parsing one receipt.
// Items always holds at least one entry.
type ParsedReceipt struct {
	Merchant string        `json:"merchant" yaml:"merchant"`
	Date     string        `json:"date" yaml:"date"`
	Total    string        `json:"total" yaml:"total"`
	Items    []ReceiptItem `json:"items" yaml:"items"`
}
