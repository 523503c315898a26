package log_test

import "github.com/satworks/electrum-jsonrpc/pkg/log"

var _ log.Logger = &mockLogger{}

// mockLogger captures entries so tests can inspect what a wrapper forwarded
// to its underlying logger.
type mockLogger struct {
	last entry

	name          string
	keysAndValues []any
	callerSkip    int
}

// entry is a single captured log call.
type entry struct {
	Level         log.Level
	Message       string
	KeysAndValues []any
}

func newMockLogger() *mockLogger {
	return &mockLogger{name: "mock"}
}

func (ml *mockLogger) Debug(msg string, keysAndValues ...any) {
	ml.capture(log.LevelDebug, msg, keysAndValues...)
}

func (ml *mockLogger) Info(msg string, keysAndValues ...any) {
	ml.capture(log.LevelInfo, msg, keysAndValues...)
}

func (ml *mockLogger) Warn(msg string, keysAndValues ...any) {
	ml.capture(log.LevelWarn, msg, keysAndValues...)
}

func (ml *mockLogger) Error(msg string, keysAndValues ...any) {
	ml.capture(log.LevelError, msg, keysAndValues...)
}

func (ml *mockLogger) Fatal(msg string, keysAndValues ...any) {
	ml.capture(log.LevelFatal, msg, keysAndValues...)
}

func (ml *mockLogger) WithKV(key string, value any) log.Logger {
	ml.keysAndValues = append(ml.keysAndValues, key, value)
	return ml
}

func (ml *mockLogger) GetAllKV() []any { return ml.keysAndValues }

func (ml *mockLogger) WithName(name string) log.Logger {
	ml.name = name
	return ml
}

func (ml *mockLogger) Name() string { return ml.name }

func (ml *mockLogger) AddCallerSkip(skip int) log.Logger {
	ml.callerSkip += skip
	return ml
}

// CallerSkip reports the accumulated skip so tests can check wrappers adjust
// it correctly.
func (ml *mockLogger) CallerSkip() int { return ml.callerSkip }

// LastEntry returns the most recently captured call.
func (ml *mockLogger) LastEntry() entry { return ml.last }

func (ml *mockLogger) capture(level log.Level, msg string, keysAndValues ...any) {
	ml.last = entry{
		Level:         level,
		Message:       msg,
		KeysAndValues: append(ml.keysAndValues, keysAndValues...),
	}
}

var _ log.SpanRecorder = &mockSpanRecorder{}

// mockSpanRecorder records the last span event and whether any event was an
// error, standing in for a real trace span.
type mockSpanRecorder struct {
	traceID  string
	spanID   string
	failed   bool
	lastMeta []any
}

func newMockSpanRecorder(traceID, spanID string) *mockSpanRecorder {
	return &mockSpanRecorder{traceID: traceID, spanID: spanID}
}

func (sr *mockSpanRecorder) TraceID() string { return sr.traceID }

func (sr *mockSpanRecorder) SpanID() string { return sr.spanID }

func (sr *mockSpanRecorder) RecordEvent(name string, keysAndValues ...any) {
	sr.lastMeta = append([]any{"msg", name}, keysAndValues...)
}

func (sr *mockSpanRecorder) RecordError(name string, keysAndValues ...any) {
	sr.failed = true
	sr.lastMeta = append([]any{"msg", name}, keysAndValues...)
}

// LastEventMeta returns the metadata of the most recent event, with the
// event name stored under the "msg" key.
func (sr *mockSpanRecorder) LastEventMeta() []any { return sr.lastMeta }

// Failed reports whether RecordError was called at least once.
func (sr *mockSpanRecorder) Failed() bool { return sr.failed }
