package otel_test

import (
	"context"
	"errors"
	"hotelhub/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScopeRecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	o := otel.NewWithProvider(provider)

	_, scope := o.NewScope(context.Background(), "service", "service.Decide")
	scope.SetAttributes(map[string]any{"contract_id": "c-1", "attempt": 2, "rate": 12.5})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("stale"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.Decide", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Attributes(), 3)

	require.NoError(t, o.Shutdown(context.Background()))
}
