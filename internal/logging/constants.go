package logging

// Standardized field names for structured logging.
const (
	FieldTransactionID = "transaction_id"
	FieldType          = "type"
	FieldCategory      = "category"
	FieldStatus        = "status"
	FieldOperation     = "operation"
	FieldBackend       = "backend"
	FieldKey           = "key"
	FieldPath          = "path"
	FieldCount         = "count"
	FieldFormat        = "format"
	FieldBytes         = "bytes"
	FieldError         = "error"
	FieldComponent     = "component"
)
