package app

import (
	"context"

	"github.com/advdv/petite"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ctxKey int

const ctxKeyLogger ctxKey = iota

// withRequestLogger makes the logger available to routers and handlers through [Log].
func withRequestLogger(logs *zap.Logger) petite.Middleware {
	return func(next petite.Endpoint) petite.Endpoint {
		return petite.EndpointFunc(func(ctx context.Context, r *petite.Request) (petite.Result, error) {
			return next.ServePetite(context.WithValue(ctx, ctxKeyLogger, logs), r)
		})
	}
}

// Log returns a trace-correlated zap logger from the context. Outside of an app, for example when a router is
// served by a bare [petite.Server], it returns a no-op logger.
func Log(ctx context.Context) *zap.Logger {
	logs, ok := ctx.Value(ctxKeyLogger).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}

	return logs.With(traceFields(ctx)...)
}

// Span returns the current trace span from the context.
func Span(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// traceFields extracts trace_id and span_id from the context for log correlation.
func traceFields(ctx context.Context) []zap.Field {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return nil
	}
	sc := span.SpanContext()
	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}
