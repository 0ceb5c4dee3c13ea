package core

import (
	"context"
	"sync"
)

type CancellationHandlers[T any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan T)
	OnCancelUnprocessed func(ctx context.Context, unprocessed T)
}

// Locomotive pulls items from inputCh and hands them to engine one at a
// time until inputCh is closed or ctx is done.
func Locomotive[T any](ctx context.Context, inputCh <-chan T,
	engine func(ctx context.Context, input T),
	handlers CancellationHandlers[T],
	onProcessed func(ctx context.Context, in T), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh)
				}
				return
			}

			engine(ctx, in)
			if onProcessed != nil {
				onProcessed(ctx, in)
			}
		}
	}
}
