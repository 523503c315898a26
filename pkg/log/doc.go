// Package log is the structured logging facade for the module.
//
// It exposes a small Logger interface with leveled, key-value logging and
// ships three implementations: ZapLogger (the real one, backed by
// go.uber.org/zap), NoopLogger (discards everything), and SpanLogger
// (wraps another logger and mirrors entries onto a trace span).
//
// # Configuration
//
// ZapLogger is configured through Config, which carries cleanenv tags so
// applications can bind it straight from the environment:
//
//	var logConf log.Config
//	_ = cleanenv.ReadEnv(&logConf)
//	logger := log.NewZapLogger(logConf)
//
//	LOG_FORMAT  console | logfmt | json   (default console)
//	LOG_LEVEL   debug | info | warn | error | fatal   (default info)
//	LOG_OUTPUT  stderr | stdout | <file path>   (default stderr)
//
// # Usage
//
//	logger := log.NewZapLogger(conf).WithName("rpc")
//	logger.Info("request dispatched", "method", "getinfo", "status", 200)
//
// Loggers are immutable; WithKV and WithName return derived loggers and
// never mutate the receiver, so a logger may be shared freely between
// goroutines.
//
// # Context and tracing
//
// SetContextLogger and FromContext pass a logger through a context.Context.
// When the context holds a recording OpenTelemetry span, SetContextLogger
// transparently upgrades the logger to a SpanLogger: every entry is then
// also recorded as a span event with the entry's key-value pairs as
// attributes, and the written log line gains traceId/spanId fields.
//
//	ctx = log.SetContextLogger(ctx, logger)
//	...
//	log.FromContext(ctx).Debug("retrying", "attempt", 2)
package log
