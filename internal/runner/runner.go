// Package runner executes batches of tasks with a bounded level of
// parallelism.
//
// Run dispatches handlers in input order, never exceeds the configured
// ceiling, and isolates failures: one task's error or panic is recorded
// in its Result and does not affect siblings or abort the batch. Each
// Run call owns its own worker group, so handlers may call Run again
// (an outer batch of releases fanning out into inner batches of tracks)
// without deadlocking.
//
// Example:
//
//	report := runner.Run(ctx, 5, trackIDs, func(ctx context.Context, id string) error {
//	    return downloadTrack(ctx, id)
//	})
//	for _, r := range report.Failed() {
//	    log.Printf("failed %s: %v", r.Item, r.Err)
//	}
package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result pairs one input item with the outcome of its handler.
type Result[T any] struct {
	Item T
	Err  error
}

// Report holds the per-item results of one Run call, in input order.
type Report[T any] struct {
	Results []Result[T]
}

// Failed returns the results whose handlers returned an error or panicked.
func (r Report[T]) Failed() []Result[T] {
	var failed []Result[T]
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err returns nil when every handler succeeded, otherwise an error
// naming the failure count.
func (r Report[T]) Err() error {
	failed := len(r.Failed())
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d tasks failed", failed, len(r.Results))
}

// Run executes fn for every item with at most limit handlers in flight.
//
// Items are dispatched in input order. Run returns after all handlers
// have completed; it never returns early on handler failure. A limit
// below 1 is treated as 1. Cancelling ctx does not abandon queued items:
// each handler still runs and is expected to fail fast on the cancelled
// context.
func Run[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) Report[T] {
	if limit < 1 {
		limit = 1
	}

	report := Report[T]{Results: make([]Result[T], len(items))}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		i, item := i, item // capture
		report.Results[i].Item = item
		g.Go(func() error {
			report.Results[i].Err = protect(ctx, item, fn)
			return nil
		})
	}

	// Handlers always return nil to the group, so Wait's error is
	// always nil; failures live in the report.
	_ = g.Wait()

	return report
}

// protect invokes fn, converting a panic into an error so one bad task
// cannot take down the batch.
func protect[T any](ctx context.Context, item T, fn func(context.Context, T) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task panicked: %v", rec)
		}
	}()
	return fn(ctx, item)
}
