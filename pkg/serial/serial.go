// Package serial runs a list of steps one at a time with a fixed pause
// between them. A failing step does not stop the walk.
package serial

import (
	"context"
	"time"
)

// Runner walks items strictly in order with at most one step in flight.
type Runner struct {
	delay time.Duration
}

// New returns a Runner that waits delay between consecutive steps.
// A negative delay is treated as zero.
func New(delay time.Duration) *Runner {
	if delay < 0 {
		delay = 0
	}
	return &Runner{delay: delay}
}

// Delay returns the pause applied between steps.
func (r *Runner) Delay() time.Duration {
	return r.delay
}

// Report is the outcome of one walk.
type Report[T any] struct {
	Done    []T
	Failed  []T
	Errors  []error // parallel to Failed
	Skipped []T     // not attempted because ctx was done
}

// Step is invoked once per item. A non-nil error marks the item failed.
type Step[T any] func(ctx context.Context, item T) error

// Run calls step for each item in order. Each step starts only after the
// previous one returned and the delay elapsed. The delay is not applied
// after the last item. Once ctx is done the remaining items are skipped.
func Run[T any](ctx context.Context, r *Runner, items []T, step Step[T]) Report[T] {
	var rep Report[T]

	for i, item := range items {
		if i > 0 && !r.wait(ctx) {
			rep.Skipped = append(rep.Skipped, items[i:]...)
			return rep
		}
		if ctx.Err() != nil {
			rep.Skipped = append(rep.Skipped, items[i:]...)
			return rep
		}

		if err := step(ctx, item); err != nil {
			rep.Failed = append(rep.Failed, item)
			rep.Errors = append(rep.Errors, err)
			continue
		}
		rep.Done = append(rep.Done, item)
	}

	return rep
}

func (r *Runner) wait(ctx context.Context) bool {
	if r.delay == 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(r.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
