package scenario

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/roach88/scenario/internal/narrate"
)

// Runner assembles and plays one scenario.
//
// Steps accumulate through the category entries (Given, When, Then, And and
// their Named and Steps forms). Play drains the ledger and executes it once;
// a drained runner can be reused to build a new ledger.
//
// Assembly errors (a blank description, a nil body or callback) are raised
// as panics carrying an *Error with ErrCodeInvalidArgument.
//
// Thread-safety: a Runner is not safe for concurrent use.
type Runner struct {
	title     string
	out       Output
	store     *Context
	steps     []Step
	seed      any
	logger    *slog.Logger
	observers observers
	ids       IDGenerator
	clock     Clock

	successGlyph string
	failureGlyph string
}

// New creates a runner titled title that writes its transcript to out.
func New(title string, out Output, opts ...Option) (*Runner, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newInvalidArgument("please explain your intent by documenting your scenario")
	}
	if out == nil {
		return nil, newInvalidArgument("scenario output is required")
	}

	r := &Runner{
		title:        title,
		out:          out,
		store:        NewContext(),
		logger:       discardLogger(),
		ids:          UUIDv7Generator{},
		clock:        systemClock{},
		successGlyph: DefaultSuccessGlyph,
		failureGlyph: DefaultFailureGlyph,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.steps = append(r.steps, scenarioStep(title, r.seed))
	return r, nil
}

// NewNamed creates a runner titled after the calling function. A leading
// "Test" is dropped, so TestPlayingOutside is titled "Playing Outside".
func NewNamed(out Output, opts ...Option) (*Runner, error) {
	title := narrate.Sentence(narrate.TrimTestPrefix(narrate.CallerName(1)))
	return New(title, out, opts...)
}

// Title returns the scenario title.
func (r *Runner) Title() string {
	return r.title
}

// Steps returns a copy of the ledger that the next Play will execute.
func (r *Runner) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// SetContextData stores data under key, replacing any previous entry.
func (r *Runner) SetContextData(key string, data any) {
	r.store.Set(key, data)
}

// ContextData returns the data stored under key, or an ErrCodeKeyNotFound
// error. Use ContextValue for a typed read.
func (r *Runner) ContextData(key string) (any, error) {
	return r.store.Get(key)
}

// Given appends a setup step.
func (r *Runner) Given(description string, body Body) *Runner {
	return r.add(CategoryGiven, description, body)
}

// When appends an action step.
func (r *Runner) When(description string, body Body) *Runner {
	return r.add(CategoryWhen, description, body)
}

// Then appends a verification step.
func (r *Runner) Then(description string, body Body) *Runner {
	return r.add(CategoryThen, description, body)
}

// And appends a step that continues the previous step's category. With no
// previous user step it appends a Given step.
func (r *Runner) And(description string, body Body) *Runner {
	return r.add(r.continuation(), description, body)
}

// GivenNamed appends a setup step described by the body's function name.
func (r *Runner) GivenNamed(body Body) *Runner {
	return r.add(CategoryGiven, describe(body), body)
}

// WhenNamed appends an action step described by the body's function name.
func (r *Runner) WhenNamed(body Body) *Runner {
	return r.add(CategoryWhen, describe(body), body)
}

// ThenNamed appends a verification step described by the body's function
// name.
func (r *Runner) ThenNamed(body Body) *Runner {
	return r.add(CategoryThen, describe(body), body)
}

// AndNamed continues the previous category with a step described by the
// body's function name.
func (r *Runner) AndNamed(body Body) *Runner {
	return r.add(r.continuation(), describe(body), body)
}

// GivenSteps hands fn a StepRunner that appends setup steps.
func (r *Runner) GivenSteps(fn func(*StepRunner)) *Runner {
	return r.withSteps(CategoryGiven, fn)
}

// WhenSteps hands fn a StepRunner that appends action steps.
func (r *Runner) WhenSteps(fn func(*StepRunner)) *Runner {
	return r.withSteps(CategoryWhen, fn)
}

// ThenSteps hands fn a StepRunner that appends verification steps.
func (r *Runner) ThenSteps(fn func(*StepRunner)) *Runner {
	return r.withSteps(CategoryThen, fn)
}

// AndSteps hands fn a StepRunner bound to the previous step's category.
func (r *Runner) AndSteps(fn func(*StepRunner)) *Runner {
	return r.withSteps(r.continuation(), fn)
}

func (r *Runner) withSteps(category Category, fn func(*StepRunner)) *Runner {
	if fn == nil {
		panic(newInvalidArgument("step callback is required"))
	}
	fn(&StepRunner{runner: r, category: category})
	return r
}

// continuation returns the category an And step takes.
func (r *Runner) continuation() Category {
	if len(r.steps) == 0 {
		return CategoryGiven
	}
	last := r.steps[len(r.steps)-1].category
	if last == CategoryScenario {
		return CategoryGiven
	}
	return last
}

func (r *Runner) add(category Category, description string, body Body) *Runner {
	step, err := newStep(category, description, body)
	if err != nil {
		panic(err)
	}

	var previous Category
	hasPrevious := len(r.steps) > 0
	if hasPrevious {
		previous = r.steps[len(r.steps)-1].category
	}
	r.steps = append(r.steps, step.withDisplay(render(previous, hasPrevious, category, description)))
	return r
}

// describe derives a description from the function a body was built from.
func describe(body Body) string {
	return narrate.Sentence(narrate.TrimTestPrefix(body.name()))
}

// Play executes the ledger and discards the final result.
//
// The first failing step stops playback: its failure line is written and its
// error is returned unchanged. A synchronous body that panics, or stops its
// goroutine through runtime.Goexit, gets its failure line before the panic
// or exit continues. Playing a drained runner does nothing.
func (r *Runner) Play(ctx context.Context) error {
	_, err := r.play(ctx)
	return err
}

// PlayResult executes the ledger of r and returns the last step's result as
// an Ensure[T].
func PlayResult[T any](ctx context.Context, r *Runner) (Ensure[T], error) {
	result, err := r.play(ctx)
	if err != nil {
		return Ensure[T]{}, err
	}
	return From[T](result), nil
}

func (r *Runner) play(ctx context.Context) (any, error) {
	steps := r.steps
	r.steps = nil

	if len(steps) == 0 {
		r.logger.DebugContext(ctx, "nothing to play", "scenario", r.title)
		return nil, nil
	}

	runID := r.ids.Generate()
	p := &playback{
		runner:  r,
		log:     r.logger.With("run_id", runID, "scenario", r.title),
		summary: Summary{RunID: runID, Scenario: r.title, Status: StatusRunning},
		started: r.clock.Now(),
	}
	p.log.InfoContext(ctx, "scenario started", "steps", len(steps))

	var current any
	for i, step := range steps {
		result, err := p.step(ctx, i, step, current)
		if err != nil {
			return nil, err
		}
		current = result
	}

	p.finish(ctx, nil)
	return current, nil
}

// playback holds the state of one Play call.
type playback struct {
	runner  *Runner
	log     *slog.Logger
	summary Summary
	started time.Time
}

func (p *playback) step(ctx context.Context, index int, step Step, prior any) (any, error) {
	r := p.runner
	ev := StepEvent{
		RunID:       p.summary.RunID,
		Scenario:    p.summary.Scenario,
		Index:       index,
		Category:    step.category,
		Description: step.display,
		Status:      StatusRunning,
		StartedAt:   r.clock.Now(),
	}
	p.summary.Steps++
	stepCtx := r.observers.stepStarted(ctx, ev)

	returned := false
	defer func() {
		if !returned {
			p.fail(ctx, stepCtx, ev, ErrStepAborted)
		}
	}()
	result, err := step.run(stepCtx, prior)
	returned = true

	if err != nil {
		p.fail(ctx, stepCtx, ev, err)
		return nil, err
	}

	ev.Status = StatusPassed
	ev.Duration = r.clock.Now().Sub(ev.StartedAt)
	r.out.WriteLinef("%s %s", r.successGlyph, step.display)
	p.log.DebugContext(ctx, "step passed",
		"step", index,
		"category", step.category.String(),
		"description", step.display,
		"duration", ev.Duration,
	)
	r.observers.stepFinished(stepCtx, ev)
	p.summary.Passed++
	return result, nil
}

func (p *playback) fail(ctx, stepCtx context.Context, ev StepEvent, err error) {
	r := p.runner
	ev.Status = StatusFailed
	ev.Err = err
	ev.Duration = r.clock.Now().Sub(ev.StartedAt)
	r.out.WriteLinef("%s %s", r.failureGlyph, ev.Description)
	p.log.WarnContext(ctx, "step failed",
		"step", ev.Index,
		"category", ev.Category.String(),
		"description", ev.Description,
		"error", err,
	)
	r.observers.stepFinished(stepCtx, ev)
	p.finish(ctx, err)
}

func (p *playback) finish(ctx context.Context, err error) {
	p.summary.Status = StatusPassed
	if err != nil {
		p.summary.Status = StatusFailed
		p.summary.Err = err
	}
	p.summary.Duration = p.runner.clock.Now().Sub(p.started)
	p.log.InfoContext(ctx, "scenario finished",
		"status", string(p.summary.Status),
		"passed", p.summary.Passed,
		"steps", p.summary.Steps,
	)
	p.runner.observers.scenarioFinished(ctx, p.summary)
}
