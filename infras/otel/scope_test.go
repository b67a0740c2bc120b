package otel_test

import (
	"camping/infras/otel"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	ot := otel.NewWithProvider(trace.NewTracerProvider(trace.WithSpanProcessor(recorder)))

	t.Cleanup(func() {
		_ = ot.Shutdown(context.Background())
	})

	_, scope := ot.NewScope(context.Background(), "service", "service.booking.Create")
	scope.SetAttributes(map[string]any{
		"camping.id":  "c-1",
		"nights":      3,
		"total_price": 150.5,
		"available":   true,
		"elapsed":     1500 * time.Millisecond,
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("insert failed"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.booking.Create", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "insert failed", span.Status().Description)
	assert.Len(t, span.Events(), 1)
	assert.Contains(t, span.Attributes(), attribute.Float64("total_price", 150.5))
	assert.Contains(t, span.Attributes(), attribute.Int("nights", 3))
	assert.Contains(t, span.Attributes(), attribute.String("camping.id", "c-1"))
	assert.Contains(t, span.Attributes(), attribute.Bool("available", true))
	assert.Contains(t, span.Attributes(), attribute.Int64("elapsed_ms", 1500))
}
