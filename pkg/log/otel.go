package log

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ SpanRecorder = (*OtelSpanRecorder)(nil)

// OtelSpanRecorder records log events on an OpenTelemetry span, converting
// key-value pairs into span attributes.
type OtelSpanRecorder struct {
	span trace.Span
}

// NewOtelSpanRecorder returns a SpanRecorder writing to the given span.
func NewOtelSpanRecorder(span trace.Span) *OtelSpanRecorder {
	return &OtelSpanRecorder{span: span}
}

func (r *OtelSpanRecorder) TraceID() string {
	return r.span.SpanContext().TraceID().String()
}

func (r *OtelSpanRecorder) SpanID() string {
	return r.span.SpanContext().SpanID().String()
}

// RecordEvent adds a named event to the span.
func (r *OtelSpanRecorder) RecordEvent(name string, keysAndValues ...any) {
	r.span.AddEvent(name, trace.WithAttributes(kvAttributes(keysAndValues)...))
}

// RecordError adds a named event and flips the span status to error.
func (r *OtelSpanRecorder) RecordError(name string, keysAndValues ...any) {
	r.span.AddEvent(name, trace.WithAttributes(kvAttributes(keysAndValues)...))
	r.span.SetStatus(codes.Error, name)
}

// kvAttributes converts alternating keys and values into otel attributes.
// A trailing key without a value gets a placeholder; a non-string key stops
// the conversion and stores the remainder under one attribute rather than
// dropping it.
func kvAttributes(keysAndValues []any) []attribute.KeyValue {
	if len(keysAndValues)%2 != 0 {
		keysAndValues = append(keysAndValues, "(missing)")
	}

	attrs := make([]attribute.KeyValue, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			attrs = append(attrs, attribute.String("malformedKeysAndValues", fmt.Sprint(keysAndValues[i:])))
			break
		}

		switch v := keysAndValues[i+1].(type) {
		case bool:
			attrs = append(attrs, attribute.Bool(key, v))
		case int:
			attrs = append(attrs, attribute.Int(key, v))
		case int64:
			attrs = append(attrs, attribute.Int64(key, v))
		case uint64:
			attrs = append(attrs, attribute.String(key, fmt.Sprintf("%d", v)))
		case float64:
			attrs = append(attrs, attribute.Float64(key, v))
		case string:
			attrs = append(attrs, attribute.String(key, v))
		case error:
			attrs = append(attrs, attribute.String(key, v.Error()))
		case fmt.Stringer:
			attrs = append(attrs, attribute.String(key, v.String()))
		default:
			attrs = append(attrs, attribute.String(key, fmt.Sprint(v)))
		}
	}

	return attrs
}
