package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldRow       = "row"
	FieldBackend   = "backend"
	FieldMonth     = "month"
	FieldYear      = "year"
)

// Standard component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentSheets   = "sheets"
	ComponentStorage  = "storage"
	ComponentRollover = "rollover"
	ComponentReport   = "report"
)
