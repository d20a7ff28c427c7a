package glue

import (
	"context"
	"fmt"
)

// DefaultMaxAttempts is the attempt budget when WithMaxAttempts is not given.
const DefaultMaxAttempts = 100

// Option configures Glue via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Glue.
type Option func(*Options)

// Options holds the resolved engine parameters.
type Options struct {
	// Ctx is checked between attempts (never inside one).
	Ctx context.Context

	// MaxAttempts bounds the retry loop; must be > 0.
	MaxAttempts int

	// Workers is the number of attempts run concurrently per batch; must be ≥ 1.
	Workers int

	// Strict switches the remainder check from contiguity.CanSatisfy to
	// contiguity.CanPack.
	Strict bool

	// OnAttempt is called once per finished attempt, in attempt order, on
	// the goroutine that called Glue. Attempts after the winning one are
	// never reported.
	OnAttempt func(AttemptReport)

	err error
}

// DefaultOptions returns the engine defaults: background context,
// 100 attempts, one worker, heuristic feasibility, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxAttempts: DefaultMaxAttempts,
		Workers:     1,
		OnAttempt:   func(AttemptReport) {},
	}
}

// WithContext sets a context for cancellation between attempts.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxAttempts sets the attempt budget. n must be positive.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxAttempts must be > 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithWorkers runs up to n attempts concurrently. The result is the same as
// with one worker.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrictFeasibility enables exact component packing as the remainder check.
func WithStrictFeasibility() Option {
	return func(o *Options) { o.Strict = true }
}

// WithOnAttempt registers a per-attempt hook. A nil fn is ignored.
func WithOnAttempt(fn func(AttemptReport)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAttempt = fn
		}
	}
}
