// Package chflow provides context-aware helpers for channel operations and
// waits. Every helper returns early when the context is done, so pipeline
// stages never block past shutdown.
package chflow

import (
	"context"
	"time"
)

// Receive waits for a value from ch or for ctx to be done.
// ok is false when ctx is done or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first.
// It reports whether the value was sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Sleep pauses for d or until ctx is done, whichever comes first.
// It reports whether the full duration elapsed.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
