package logging

// Standardized field names for structured logging.
const (
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldFormat     = "format"
	FieldComponent  = "component"
	FieldStrategy   = "strategy"
	FieldMerchant   = "merchant"
	FieldCategory   = "category"
	FieldPattern    = "pattern"
	FieldGroup      = "group"
	FieldScore      = "score"
	FieldCount      = "count"
	FieldTotal      = "total"
	FieldReason     = "reason"
	FieldError      = "error"
)
