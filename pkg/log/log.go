package log

// Logger is the structured logging interface used across the module.
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs fine-grained information for development and tracing.
	// keysAndValues are alternating keys and values (e.g. "method", m).
	Debug(msg string, keysAndValues ...any)
	// Info logs routine operational events.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected but non-fatal situations.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that need attention.
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure; implementations may exit the
	// process afterwards.
	Fatal(msg string, keysAndValues ...any)

	// WithKV returns a logger that attaches the key-value pair to every
	// future entry.
	WithKV(key string, value any) Logger
	// GetAllKV returns the accumulated persistent key-value pairs.
	GetAllKV() []any
	// WithName returns a logger scoped to the given component name.
	// Nested names are joined with dots.
	WithName(name string) Logger
	// Name returns the logger's component name.
	Name() string
	// AddCallerSkip returns a logger that skips additional stack frames
	// when resolving the caller. Wrappers use it so the reported source
	// points at the call site, not the wrapper.
	AddCallerSkip(skip int) Logger
}

// Level filters log output by severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// SpanRecorder mirrors log events onto a trace span so entries written
// inside an instrumented request show up next to the span's own events.
type SpanRecorder interface {
	// TraceID returns the identifier of the span's trace.
	TraceID() string
	// SpanID returns the span's own identifier.
	SpanID() string
	// RecordEvent attaches a named event with the given key-value pairs.
	RecordEvent(name string, keysAndValues ...any)
	// RecordError attaches a named event and marks the span as failed.
	RecordError(name string, keysAndValues ...any)
}
