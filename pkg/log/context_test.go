package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"

	"github.com/satworks/electrum-jsonrpc/pkg/log"
)

// TestContextLogger verifies the context round trip: the noop fallback, the
// plain store-and-retrieve path, and the automatic SpanLogger upgrade when
// the context carries a valid span.
func TestContextLogger(t *testing.T) {
	ctx := context.Background()

	// Nothing stored yet, so FromContext falls back to the noop logger.
	logger := log.FromContext(ctx)
	_, isNoop := logger.(log.NoopLogger)
	assert.True(t, isNoop)

	// A nil logger is stored as the noop logger rather than panicking later.
	nilCtx := log.SetContextLogger(ctx, nil)
	_, isNoop = log.FromContext(nilCtx).(log.NoopLogger)
	assert.True(t, isNoop)

	// A real logger survives the round trip unchanged.
	logger = log.NewZapLogger(log.Config{})
	ctx = log.SetContextLogger(ctx, logger)

	logger = log.FromContext(ctx)
	_, isZap := logger.(*log.ZapLogger)
	assert.True(t, isZap)

	// With a valid span in the context, the stored logger is upgraded so its
	// entries also land on the span.
	ctx = trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: [16]byte{1},
		SpanID:  [8]byte{1},
	}))
	ctx = log.SetContextLogger(ctx, logger)

	logger = log.FromContext(ctx)
	_, isSpan := logger.(log.SpanLogger)
	assert.True(t, isSpan)
}
