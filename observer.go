package rxlite

import "go.uber.org/atomic"

// Handler carries the callbacks for one subscription.
// Any of the three may be nil; a nil callback is skipped, never an error.
type Handler[T any] struct {
	// OnNext is invoked once per emitted value.
	OnNext func(value T)
	// OnError is invoked at most once, with the terminal error.
	OnError func(err error)
	// OnComplete is invoked at most once, on successful termination.
	OnComplete func()
}

// Teardown releases whatever a producer acquired for one subscription.
type Teardown func()

// Observer is the live delivery target of a single subscription. It
// dispatches to its Handler until the subscription terminates, after which
// every call on it is silently dropped.
type Observer[T any] struct {
	handler      Handler[T]
	unsubscribed atomic.Bool
	torndown     atomic.Bool
	teardown     Teardown
}

func newObserver[T any](handler Handler[T]) *Observer[T] {
	return &Observer[T]{handler: handler}
}

// Next delivers a value to the OnNext callback.
func (o *Observer[T]) Next(value T) {
	if o.unsubscribed.Load() {
		return
	}
	if fn := o.handler.OnNext; fn != nil {
		fn(value)
	}
}

// Error terminates the subscription with err: the OnError callback fires if
// one was supplied, then the teardown runs. Only the first terminal call
// wins; later Error, Complete and Next calls are dropped.
func (o *Observer[T]) Error(err error) {
	if !o.unsubscribed.CAS(false, true) {
		return
	}
	if fn := o.handler.OnError; fn != nil {
		fn(err)
	}
	o.runTeardown()
}

// Complete terminates the subscription successfully. Delivery rules match
// Error: first terminal call wins, then the teardown runs.
func (o *Observer[T]) Complete() {
	if !o.unsubscribed.CAS(false, true) {
		return
	}
	if fn := o.handler.OnComplete; fn != nil {
		fn()
	}
	o.runTeardown()
}

// Unsubscribe cancels the subscription without invoking any callback. Safe
// to call any number of times; the teardown runs at most once no matter
// whether cancellation came from here, Error or Complete.
func (o *Observer[T]) Unsubscribe() {
	o.unsubscribed.Store(true)
	o.runTeardown()
}

// IsUnsubscribed reports whether the subscription has terminated.
func (o *Observer[T]) IsUnsubscribed() bool {
	return o.unsubscribed.Load()
}

// setTeardown registers the producer's teardown. The producer may already
// have terminated the subscription during its own run; the teardown then
// fires immediately, still at most once.
func (o *Observer[T]) setTeardown(fn Teardown) {
	o.teardown = fn
	if o.unsubscribed.Load() {
		o.runTeardown()
	}
}

func (o *Observer[T]) runTeardown() {
	if o.teardown == nil {
		return
	}
	// CAS keeps re-entrant triggers, e.g. a teardown unsubscribing its own
	// observer, from running it twice.
	if o.torndown.CAS(false, true) {
		o.teardown()
	}
}
