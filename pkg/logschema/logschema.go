package logschema

// Log schema constants for commlink structured logs.
const (
	SchemaID    = "commlink.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
	FieldScheme    = "scheme"
	FieldMode      = "mode"
	FieldState     = "state"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}
