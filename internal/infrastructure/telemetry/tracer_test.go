package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), Config{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, tp)

	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("test"), "disabled provider still hands out usable tracers")
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestTracerProvider_DisabledSpansAreNoop(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), Config{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "invoice.create")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid())
}
