package log

var _ Logger = SpanLogger{}

// SpanLogger forwards entries to a wrapped logger and mirrors them onto a
// trace span through a SpanRecorder, so log lines and span events tell the
// same story. Every entry also gains traceId/spanId fields for correlation.
type SpanLogger struct {
	lg  Logger
	rec SpanRecorder
}

// NewSpanLogger wraps lg so its entries are also recorded on the span
// behind rec.
func NewSpanLogger(lg Logger, rec SpanRecorder) Logger {
	return SpanLogger{
		// One extra frame for the SpanLogger methods themselves.
		lg:  lg.AddCallerSkip(1),
		rec: rec,
	}
}

func (sl SpanLogger) Debug(msg string, keysAndValues ...any) {
	sl.rec.RecordEvent(msg, sl.eventKV(LevelDebug, keysAndValues)...)
	sl.lg.Debug(msg, sl.traceKV(keysAndValues)...)
}

func (sl SpanLogger) Info(msg string, keysAndValues ...any) {
	sl.rec.RecordEvent(msg, sl.eventKV(LevelInfo, keysAndValues)...)
	sl.lg.Info(msg, sl.traceKV(keysAndValues)...)
}

func (sl SpanLogger) Warn(msg string, keysAndValues ...any) {
	sl.rec.RecordEvent(msg, sl.eventKV(LevelWarn, keysAndValues)...)
	sl.lg.Warn(msg, sl.traceKV(keysAndValues)...)
}

func (sl SpanLogger) Error(msg string, keysAndValues ...any) {
	sl.rec.RecordError(msg, sl.eventKV(LevelError, keysAndValues)...)
	sl.lg.Error(msg, sl.traceKV(keysAndValues)...)
}

func (sl SpanLogger) Fatal(msg string, keysAndValues ...any) {
	sl.rec.RecordError(msg, sl.eventKV(LevelFatal, keysAndValues)...)
	sl.lg.Fatal(msg, sl.traceKV(keysAndValues)...)
}

func (sl SpanLogger) WithKV(key string, value any) Logger {
	return SpanLogger{lg: sl.lg.WithKV(key, value), rec: sl.rec}
}

func (sl SpanLogger) GetAllKV() []any {
	return sl.lg.GetAllKV()
}

func (sl SpanLogger) WithName(name string) Logger {
	return SpanLogger{lg: sl.lg.WithName(name), rec: sl.rec}
}

func (sl SpanLogger) Name() string {
	return sl.lg.Name()
}

func (sl SpanLogger) AddCallerSkip(skip int) Logger {
	return SpanLogger{lg: sl.lg.AddCallerSkip(skip), rec: sl.rec}
}

// traceKV prepends the trace identifiers so log entries can be joined with
// the span in a trace viewer.
func (sl SpanLogger) traceKV(keysAndValues []any) []any {
	kv := make([]any, 0, len(keysAndValues)+4)
	kv = append(kv, "traceId", sl.rec.TraceID(), "spanId", sl.rec.SpanID())
	return append(kv, keysAndValues...)
}

// eventKV builds the full attribute set for the span event: severity and
// component first, then the logger's persistent pairs, then the per-entry
// pairs.
func (sl SpanLogger) eventKV(level Level, keysAndValues []any) []any {
	kv := make([]any, 0, len(keysAndValues)+len(sl.lg.GetAllKV())+4)
	kv = append(kv, "level", string(level), "component", sl.lg.Name())
	kv = append(kv, sl.lg.GetAllKV()...)
	return append(kv, keysAndValues...)
}
