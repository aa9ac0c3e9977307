package scenario

import (
	"context"
	"sync"
)

// Report is the machine-readable outcome of one playback.
type Report struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	Scenario   string        `json:"scenario" yaml:"scenario"`
	Status     Status        `json:"status" yaml:"status"`
	Passed     int           `json:"passed" yaml:"passed"`
	Failed     int           `json:"failed" yaml:"failed"`
	DurationMS int64         `json:"duration_ms" yaml:"duration_ms"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
	Steps      []StepOutcome `json:"steps" yaml:"steps"`
}

// StepOutcome is one line of a Report.
type StepOutcome struct {
	Index       int    `json:"index" yaml:"index"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	DurationMS  int64  `json:"duration_ms" yaml:"duration_ms"`
}

// Collector is an Observer that builds a Report of the most recent
// playback of every runner it is registered with.
//
// Thread-safety: Collector is safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	pending Report
	last    Report
	done    bool
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// StepStarted implements Observer.
func (c *Collector) StepStarted(ctx context.Context, ev StepEvent) context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ev.Index == 0 {
		c.pending = Report{RunID: ev.RunID, Scenario: ev.Scenario, Status: StatusRunning}
	}
	return ctx
}

// StepFinished implements Observer.
func (c *Collector) StepFinished(_ context.Context, ev StepEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := StepOutcome{
		Index:       ev.Index,
		Category:    ev.Category.String(),
		Description: ev.Description,
		Status:      ev.Status,
		DurationMS:  ev.Duration.Milliseconds(),
	}
	if ev.Err != nil {
		out.Error = ev.Err.Error()
	}
	c.pending.Steps = append(c.pending.Steps, out)
}

// ScenarioFinished implements Observer.
func (c *Collector) ScenarioFinished(_ context.Context, sum Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending.Status = sum.Status
	c.pending.Passed = sum.Passed
	c.pending.Failed = sum.Steps - sum.Passed
	c.pending.DurationMS = sum.Duration.Milliseconds()
	if sum.Err != nil {
		c.pending.Error = sum.Err.Error()
	}
	c.last = c.pending
	c.pending = Report{}
	c.done = true
}

// Report returns the last finished report, and false when no playback has
// finished yet.
func (c *Collector) Report() (Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done {
		return Report{}, false
	}
	r := c.last
	r.Steps = append([]StepOutcome(nil), c.last.Steps...)
	return r, true
}
