// Package future turns a one-shot completion into a value a caller can either
// wait on or observe through callbacks.
//
// A [Future] resolves exactly once. Producers obtain the resolving function
// from [NewPromise]; calling it a second time is a programming error and
// panics.
package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrPending is returned by Result while the future has not resolved.
var ErrPending = errors.New("future: not resolved")

// Callback observes the resolved value of a Future.
type Callback[T any] func(T, error)

// Future is a handle on a value that becomes available later.
type Future[T any] struct {
	done     chan struct{}
	resolved atomic.Bool
	value    T
	err      error
}

// NewPromise returns an unresolved future and the function that resolves it.
// Calling resolve invokes every callback with the value, in order, and then
// resolves the future, so a caller woken by Await sees the callbacks' effects.
// The future resolves even when a callback panics; the panic continues in the
// caller of resolve.
func NewPromise[T any](callbacks ...Callback[T]) (*Future[T], Callback[T]) {
	f := &Future[T]{done: make(chan struct{})}

	resolve := func(value T, err error) {
		if !f.resolved.CompareAndSwap(false, true) {
			panic("future: resolved more than once")
		}
		defer func() {
			f.value, f.err = value, err
			close(f.done)
		}()
		for _, cb := range callbacks {
			if cb != nil {
				cb(value, err)
			}
		}
	}
	return f, resolve
}

// Go runs fn on a new goroutine and resolves the returned future with its
// result.
func Go[T any](fn func() (T, error), callbacks ...Callback[T]) *Future[T] {
	f, resolve := NewPromise(callbacks...)
	go func() {
		resolve(fn())
	}()
	return f
}

// Resolved returns a future that already holds value and err. The callbacks
// run before Resolved returns.
func Resolved[T any](value T, err error, callbacks ...Callback[T]) *Future[T] {
	f, resolve := NewPromise(callbacks...)
	resolve(value, err)
	return f
}

// Await blocks until the future resolves or ctx is done. The future itself is
// not cancelled by ctx.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result returns the resolved value without blocking, or ErrPending.
func (f *Future[T]) Result() (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
		var zero T
		return zero, ErrPending
	}
}
