package bridge

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// ErrAlreadySettled is logged when a pending promise is settled twice.
var ErrAlreadySettled = errors.New("promise already settled")

// Promise is the caller's side of an asynchronous bridge command.
type Promise[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Pending is the event loop's side of a promise: it settles it exactly
// once.
type Pending[T any] struct {
	promise *Promise[T]
	settled atomic.Bool
	name    string
	logger  *log.Logger
}

// NewPromise returns a promise and the handle that settles it. Settling
// failures are logged to logger under name.
func NewPromise[T any](name string, logger *log.Logger) (*Promise[T], *Pending[T]) {
	p := &Promise[T]{done: make(chan struct{})}
	return p, &Pending[T]{promise: p, name: name, logger: logger}
}

// Rejected returns a promise that already failed with err.
func Rejected[T any](err error) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{}), err: err}
	close(p.done)
	return p
}

// Done is closed once the promise is settled.
func (p *Promise[T]) Done() <-chan struct{} { return p.done }

// Await blocks until the promise is settled or ctx is done.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Resolve fulfils the promise with v.
func (p *Pending[T]) Resolve(v T) bool { return p.Finish(v, nil) }

// Reject fails the promise with err.
func (p *Pending[T]) Reject(err error) bool {
	var zero T
	return p.Finish(zero, err)
}

// Finish settles the promise with v or, when err is not nil, with err. It
// reports whether this call settled it; later calls are logged and
// dropped. A nil Pending is a no-op, for fire-and-forget commands.
func (p *Pending[T]) Finish(v T, err error) bool {
	if p == nil {
		return false
	}
	if !p.settled.CompareAndSwap(false, true) {
		if p.logger != nil {
			p.logger.Warn("failed to settle promise", "command", p.name, "err", ErrAlreadySettled)
		}
		return false
	}
	if err != nil {
		p.promise.err = err
	} else {
		p.promise.value = v
	}
	close(p.promise.done)
	return true
}
