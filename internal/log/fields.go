package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldPath        = "path"
	FieldBackend     = "backend"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldDate        = "date"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentConsole = "console"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpEnter   = "enter"
	OpHydrate = "hydrate"
	OpPersist = "persist"
	OpParse   = "parse"
	OpStartup = "startup"
)
