package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/roach88/scenario"
)

// Span attribute keys.
const (
	AttrRunID    = attribute.Key("scenario.run_id")
	AttrTitle    = attribute.Key("scenario.title")
	AttrStep     = attribute.Key("scenario.step")
	AttrCategory = attribute.Key("scenario.category")
)

// Tracer is a scenario.Observer that opens one span per step.
//
// The span is named after the step's transcript text and is carried by the
// context handed to the step body, so spans started by asynchronous bodies
// nest under it.
type Tracer struct {
	tracer trace.Tracer
}

var _ scenario.Observer = (*Tracer)(nil)

// NewTracer creates a Tracer observer that starts spans from tracer.
func NewTracer(tracer trace.Tracer) *Tracer {
	return &Tracer{tracer: tracer}
}

// StepStarted implements scenario.Observer.
func (t *Tracer) StepStarted(ctx context.Context, ev scenario.StepEvent) context.Context {
	ctx, _ = t.tracer.Start(ctx, ev.Description,
		trace.WithTimestamp(ev.StartedAt),
		trace.WithAttributes(
			AttrRunID.String(ev.RunID),
			AttrTitle.String(ev.Scenario),
			AttrStep.Int(ev.Index),
			AttrCategory.String(ev.Category.String()),
		),
	)
	return ctx
}

// StepFinished implements scenario.Observer.
func (t *Tracer) StepFinished(ctx context.Context, ev scenario.StepEvent) {
	span := trace.SpanFromContext(ctx)
	if ev.Err != nil {
		span.RecordError(ev.Err)
		span.SetStatus(codes.Error, ev.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(ev.StartedAt.Add(ev.Duration)))
}

// ScenarioFinished implements scenario.Observer. Step spans carry
// everything; there is no scenario span to close.
func (t *Tracer) ScenarioFinished(context.Context, scenario.Summary) {}
