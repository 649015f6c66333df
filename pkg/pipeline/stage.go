// Package pipeline provides the stage abstraction shared by the develop
// stage, the batch orchestrator and the HTTP server.
package pipeline

import (
	"context"
)

// Stage turns one input into one output.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// Developer is the stage that frames a single photo.
type Developer = Stage[DevelopInput, DevelopResult]

// StageFunc adapts a plain function to Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Limit returns a stage that runs at most n executions of stage at a time.
// Callers waiting for a slot give up when their context is done.
func Limit[In, Out any](stage Stage[In, Out], n int) Stage[In, Out] {
	if n <= 0 {
		return stage
	}
	slots := make(chan struct{}, n)
	return StageFunc[In, Out](func(ctx context.Context, input In) (Out, error) {
		var zero Out
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
		defer func() { <-slots }()
		return stage.Execute(ctx, input)
	})
}
