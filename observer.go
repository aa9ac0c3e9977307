package scenario

import (
	"context"
	"time"
)

// Status is the outcome of a step or a whole playback.
type Status string

const (
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
)

// StepEvent describes one step of a playback. Index 0 is the opening
// scenario record.
type StepEvent struct {
	RunID       string
	Scenario    string
	Index       int
	Category    Category
	Description string
	Status      Status
	Err         error
	StartedAt   time.Time
	Duration    time.Duration
}

// Summary describes a finished playback. Steps counts the records that
// started, Passed those that completed.
type Summary struct {
	RunID    string
	Scenario string
	Steps    int
	Passed   int
	Status   Status
	Err      error
	Duration time.Duration
}

// Observer is notified around every step of a playback.
//
// StepStarted returns the context handed to the step body, which lets an
// observer attach a span or other values. Observers run on the playback
// goroutine and must not block.
type Observer interface {
	StepStarted(ctx context.Context, ev StepEvent) context.Context
	StepFinished(ctx context.Context, ev StepEvent)
	ScenarioFinished(ctx context.Context, sum Summary)
}

// observers fans events out in registration order.
type observers []Observer

func (obs observers) stepStarted(ctx context.Context, ev StepEvent) context.Context {
	for _, o := range obs {
		ctx = o.StepStarted(ctx, ev)
	}
	return ctx
}

func (obs observers) stepFinished(ctx context.Context, ev StepEvent) {
	for _, o := range obs {
		o.StepFinished(ctx, ev)
	}
}

func (obs observers) scenarioFinished(ctx context.Context, sum Summary) {
	for _, o := range obs {
		o.ScenarioFinished(ctx, sum)
	}
}
