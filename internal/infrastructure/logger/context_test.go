package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestScope(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	ctx := context.Background()
	ctx, log := WithRequestID(ctx, zap.New(core), "req-1")
	ctx, log = WithOrgID(ctx, log, "org-1")
	ctx, _ = WithUserID(ctx, log, "user-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "org-1", GetOrgID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))

	FromContext(ctx).Info("enriched")

	entries := recorded.FilterMessage("enriched").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "org-1", fields["org_id"])
	assert.Equal(t, "user-1", fields["user_id"])
}

func TestFromContext(t *testing.T) {
	t.Run("nop logger outside a request", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
		assert.Empty(t, GetOrgID(context.Background()))
	})

	t.Run("stored logger", func(t *testing.T) {
		l := zap.NewExample()
		assert.Same(t, l, FromContext(WithContext(context.Background(), l)))
	})
}

func TestFields(t *testing.T) {
	assert.Empty(t, Fields(context.Background()))

	ctx, _ := WithOrgID(context.Background(), zap.NewNop(), "org-9")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3},
		SpanID:     trace.SpanID{4, 5, 6},
		TraceFlags: trace.FlagsSampled,
	})
	ctx = trace.ContextWithSpanContext(ctx, sc)

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range Fields(ctx) {
		f.AddTo(enc)
	}
	assert.Equal(t, "org-9", enc.Fields["org_id"])
	assert.Equal(t, sc.TraceID().String(), enc.Fields["trace_id"])
	assert.Equal(t, sc.SpanID().String(), enc.Fields["span_id"])
	assert.NotContains(t, enc.Fields, "request_id")
}
