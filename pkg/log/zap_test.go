package log_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satworks/electrum-jsonrpc/pkg/log"
)

// TestZapLogger drives the zap-backed logger end to end: leveled output,
// name nesting, persistent key-value pairs, and caller resolution.
func TestZapLogger(t *testing.T) {
	cfg := log.Config{
		Format: "json",
		Level:  log.LevelDebug,
	}
	sink := &captureSyncer{}
	logger := log.NewZapLogger(cfg, sink).WithName("testLogger")

	kv := []any{"key1", "value1", "key2", "value2"}
	msg := "test message"
	callerFile := "log/zap_test.go"

	logger.Debug(msg, kv...)
	sink.AssertEntry(t, log.LevelDebug, "testLogger", msg, callerFile, 28, kv...)

	logger.Info(msg, kv...)
	sink.AssertEntry(t, log.LevelInfo, "testLogger", msg, callerFile, 31, kv...)

	logger.Warn(msg, kv...)
	sink.AssertEntry(t, log.LevelWarn, "testLogger", msg, callerFile, 34, kv...)

	logger.Error(msg, kv...)
	sink.AssertEntry(t, log.LevelError, "testLogger", msg, callerFile, 37, kv...)

	// Nested names are joined with dots.
	logger = logger.WithName("sub")
	assert.Equal(t, "testLogger.sub", logger.Name())

	// Pairs added with WithKV ride along on every later entry.
	logger = logger.WithKV("newKey", "newValue")
	assert.Equal(t, []any{"newKey", "newValue"}, logger.GetAllKV())
	allKV := append([]any{"newKey", "newValue"}, kv...)

	logger.Info(msg, kv...)
	sink.AssertEntry(t, log.LevelInfo, "testLogger.sub", msg, callerFile, 49, allKV...)

	// A wrapper adds one stack frame; AddCallerSkip(1) keeps the caller
	// pointed at the wrapper's call site.
	wrappedInfo := func(msg string, keysAndValues ...any) {
		logger.AddCallerSkip(1).Info(msg, keysAndValues...)
	}

	wrappedInfo(msg, kv...)
	sink.AssertEntry(t, log.LevelInfo, "testLogger.sub", msg, callerFile, 58, allKV...)
}

// TestZapLoggerLevelFiltering verifies entries below the configured level
// never reach the output.
func TestZapLoggerLevelFiltering(t *testing.T) {
	sink := &captureSyncer{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelWarn}, sink)

	logger.Debug("dropped")
	logger.Info("dropped too")
	require.Empty(t, sink.entries)

	logger.Warn("kept")
	require.Len(t, sink.entries, 1)

	logger.Error("kept as well")
	require.Len(t, sink.entries, 2)
}

// TestZapLoggerFormats smoke-tests the non-JSON encoders.
func TestZapLoggerFormats(t *testing.T) {
	tcs := []struct {
		name     string
		format   string
		contains []string
	}{
		{
			name:     "logfmt",
			format:   "logfmt",
			contains: []string{"level=info", `msg="format check"`, "key=value"},
		},
		{
			name:     "console",
			format:   "console",
			contains: []string{"\tinfo\t", "format check"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			sink := &captureSyncer{}
			logger := log.NewZapLogger(log.Config{Format: tc.format, Level: log.LevelDebug}, sink)

			logger.Info("format check", "key", "value")

			entry := string(sink.Last())
			for _, want := range tc.contains {
				assert.Contains(t, entry, want)
			}
		})
	}
}

// captureSyncer is a zapcore.WriteSyncer that keeps every written entry so
// tests can assert on the exact output.
type captureSyncer struct {
	entries [][]byte
}

func (cs *captureSyncer) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	copy(buf, p)
	cs.entries = append(cs.entries, buf)
	return len(p), nil
}

func (cs *captureSyncer) Sync() error { return nil }

// Last returns the most recent entry, or nil when nothing was written.
func (cs *captureSyncer) Last() []byte {
	if len(cs.entries) == 0 {
		return nil
	}
	return cs.entries[len(cs.entries)-1]
}

// AssertEntry checks the last written JSON entry against the expected level,
// logger name, message, caller location, and key-value pairs.
func (cs *captureSyncer) AssertEntry(t *testing.T, level log.Level, name, message, callerFile string, callerLine int, keysAndValues ...any) {
	t.Helper()

	entryMap := make(map[string]any)
	require.NoError(t, json.Unmarshal(cs.Last(), &entryMap), "failed to unmarshal log entry: %s", cs.Last())

	assert.Contains(t, entryMap, "ts")
	assert.Equal(t, name, entryMap["logger"])
	assert.Equal(t, string(level), entryMap["level"])
	assert.Equal(t, message, entryMap["msg"])
	assert.Equal(t, fmt.Sprintf("%s:%d", callerFile, callerLine), entryMap["caller"])

	for i := 0; i < len(keysAndValues); i += 2 {
		assert.Equal(t, keysAndValues[i+1], entryMap[keysAndValues[i].(string)])
	}

	// ts, level, logger, caller and msg account for the five fixed fields.
	assert.Equal(t, len(keysAndValues)/2, len(entryMap)-5)
}
