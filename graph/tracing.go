package graph

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracerOnce  sync.Once
	graphTracer trace.Tracer
)

// getTracer returns the package tracer, created on first use so a provider
// installed after import is still honored.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		graphTracer = otel.Tracer("github.com/katalvlaran/magn/graph")
	})
	return graphTracer
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return getTracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err, if any, and ends span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
