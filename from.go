package rxlite

import "github.com/rxlite/rxlite-go/logger"

// From returns an Observable that emits each of values in order and then
// completes. Called with no values it completes immediately. The teardown
// only logs at debug level: a finished sequence holds nothing to release.
func From[T any](values ...T) Observable[T] {
	return Create(func(o *Observer[T]) Teardown {
		for _, v := range values {
			o.Next(v)
		}
		o.Complete()
		return func() {
			logger.Debugf("rxlite: torn down sequence of %d", len(values))
		}
	})
}
