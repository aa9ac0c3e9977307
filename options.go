package scenario

import (
	"io"
	"log/slog"
	"time"
)

// Default transcript glyphs.
const (
	DefaultSuccessGlyph = "✓"
	DefaultFailureGlyph = "✗"
)

// Clock supplies step timestamps to observers.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option configures a Runner.
type Option func(*Runner)

// WithSeed sets the value handed to the first user step. Without a seed the
// first step receives nil.
func WithSeed(seed any) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithLogger sets the structured logger used for playback diagnostics.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver registers observers notified around every step, in
// registration order.
func WithObserver(observers ...Observer) Option {
	return func(r *Runner) {
		for _, o := range observers {
			if o != nil {
				r.observers = append(r.observers, o)
			}
		}
	}
}

// WithGlyphs replaces the success and failure markers of transcript lines.
// Empty values keep the defaults.
func WithGlyphs(success, failure string) Option {
	return func(r *Runner) {
		if success != "" {
			r.successGlyph = success
		}
		if failure != "" {
			r.failureGlyph = failure
		}
	}
}

// WithIDGenerator sets the run identifier source.
// Default: UUIDv7Generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(r *Runner) {
		if gen != nil {
			r.ids = gen
		}
	}
}

// WithClock sets the time source for step events.
func WithClock(clock Clock) Option {
	return func(r *Runner) {
		if clock != nil {
			r.clock = clock
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
