package sssp

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/dsssp/graph"
)

var (
	tracerOnce sync.Once
	tracer     trace.Tracer
)

// getTracer returns the package tracer, resolved lazily so a provider
// installed after import is still picked up.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		tracer = otel.Tracer("github.com/katalvlaran/dsssp/sssp")
	})

	return tracer
}

// startRunSpan opens the span covering one Run.
func startRunSpan(ctx context.Context, g *graph.Graph, o Options) (context.Context, trace.Span) {
	return getTracer().Start(ctx, "sssp.Run",
		trace.WithAttributes(
			attribute.Int("sssp.workers", o.Workers),
			attribute.Int("sssp.source", o.Source),
			attribute.Int("graph.vertices", g.N()),
			attribute.Int("graph.edges", g.M()),
		),
	)
}

// endRunSpan records the outcome on span and ends it.
func endRunSpan(span trace.Span, res *Result, err error) {
	defer span.End()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run failed")

		return
	}
	span.SetAttributes(
		attribute.Int("sssp.source", res.Source),
		attribute.Bool("sssp.source_fallback", res.SourceFallback),
		attribute.Int64("sssp.rounds", int64(res.Rounds)),
		attribute.Int("sssp.finalized", len(res.Order)),
		attribute.Int64("sssp.duration_us", res.Elapsed.Microseconds()),
	)
	span.SetStatus(codes.Ok, "run completed")
}
