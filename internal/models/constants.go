package models

// Receipt defaults
const (
	UnknownMerchant      = "Unknown"
	DefaultMerchant      = "Store Receipt"
	FallbackItemName     = "Store Purchase"
	EmptyReceiptItemName = "Purchase"
	DefaultFallbackTotal = "10.00"
	ZeroAmount           = "0.00"
)

// Item categories assigned by the receipt parser
const (
	CategoryGroceries = "Groceries"
	CategoryProduce   = "Produce"
	CategoryMeat      = "Meat & Seafood"
	CategoryDining    = "Food & Dining"
	CategoryHousehold = "Household"
	CategoryShopping  = "Shopping"
)

// Grouping reasons for smart expense groups
const (
	GroupReasonMerchant   = "merchant"
	GroupReasonSimilarity = "similarity"
)

// Insight kinds
const (
	InsightWarning = "warning"
	InsightEasyWin = "easy_win"
)

// Insight difficulty levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Wastage severities
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
