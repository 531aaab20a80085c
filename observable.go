package rxlite

// Producer performs the emission for one subscription. It receives that
// subscription's Observer, emits through it, and returns a Teardown
// releasing anything it acquired along the way. A nil Teardown is fine.
type Producer[T any] func(o *Observer[T]) Teardown

// Observable is a reusable description of how to produce a stream of
// values. It holds no per-subscription state: every Subscribe runs the
// producer against a fresh Observer, so subscriptions never share anything.
type Observable[T any] struct {
	producer Producer[T]
}

// Create returns an Observable backed by the given producer.
// It panics with ErrNilProducer when producer is nil.
func Create[T any](producer Producer[T]) Observable[T] {
	if producer == nil {
		panic(ErrNilProducer)
	}
	return Observable[T]{producer: producer}
}

// Subscribe builds an Observer from handler, runs the producer against it
// synchronously, registers the returned teardown and hands back the
// subscription handle. The producer finishes before Subscribe returns; if
// it panics, the panic escapes Subscribe untouched rather than being routed
// to handler.OnError.
func (ob Observable[T]) Subscribe(handler Handler[T]) Subscription {
	o := newObserver(handler)
	teardown := ob.producer(o)
	o.setTeardown(teardown)
	return o
}
