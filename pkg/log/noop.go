package log

var _ Logger = NoopLogger{}

// NoopLogger discards every log entry. It is the default wherever a nil
// Logger would otherwise be passed around, and keeps tests quiet.
type NoopLogger struct{}

// NewNoopLogger returns a logger that drops everything.
func NewNoopLogger() Logger {
	return NoopLogger{}
}

func (NoopLogger) Debug(msg string, keysAndValues ...any) {}
func (NoopLogger) Info(msg string, keysAndValues ...any)  {}
func (NoopLogger) Warn(msg string, keysAndValues ...any)  {}
func (NoopLogger) Error(msg string, keysAndValues ...any) {}
func (NoopLogger) Fatal(msg string, keysAndValues ...any) {}

func (n NoopLogger) WithKV(key string, value any) Logger { return n }
func (n NoopLogger) GetAllKV() []any                     { return nil }
func (n NoopLogger) WithName(name string) Logger         { return n }
func (n NoopLogger) Name() string                        { return "noop" }
func (n NoopLogger) AddCallerSkip(skip int) Logger       { return n }
