package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type contextKey struct{ name string }

var (
	loggerKey = contextKey{"logger"}
	scopeKey  = contextKey{"scope"}
)

// scope holds the identifiers of the caller a request runs for
type scope struct {
	requestID string
	orgID     string
	userID    string
}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey).(scope)
	return s
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request logger, or a no-op logger outside a request
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

func withScope(ctx context.Context, logger *zap.Logger, field zap.Field, update func(*scope)) (context.Context, *zap.Logger) {
	s := scopeFrom(ctx)
	update(&s)
	ctx = context.WithValue(ctx, scopeKey, s)
	enriched := logger.With(field)
	return WithContext(ctx, enriched), enriched
}

// WithRequestID records the request ID and returns the enriched logger
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	return withScope(ctx, logger, zap.String("request_id", requestID), func(s *scope) { s.requestID = requestID })
}

// WithOrgID records the organization the caller acts for
func WithOrgID(ctx context.Context, logger *zap.Logger, orgID string) (context.Context, *zap.Logger) {
	return withScope(ctx, logger, zap.String("org_id", orgID), func(s *scope) { s.orgID = orgID })
}

// WithUserID records the authenticated user
func WithUserID(ctx context.Context, logger *zap.Logger, userID string) (context.Context, *zap.Logger) {
	return withScope(ctx, logger, zap.String("user_id", userID), func(s *scope) { s.userID = userID })
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string { return scopeFrom(ctx).requestID }

// GetOrgID retrieves the organization ID from context
func GetOrgID(ctx context.Context) string { return scopeFrom(ctx).orgID }

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) string { return scopeFrom(ctx).userID }

// Fields returns the request, organization and span identifiers carried by
// ctx, for loggers that were not derived from the request logger
func Fields(ctx context.Context) []zap.Field {
	s := scopeFrom(ctx)
	var fields []zap.Field
	if s.requestID != "" {
		fields = append(fields, zap.String("request_id", s.requestID))
	}
	if s.orgID != "" {
		fields = append(fields, zap.String("org_id", s.orgID))
	}
	if s.userID != "" {
		fields = append(fields, zap.String("user_id", s.userID))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	return fields
}
