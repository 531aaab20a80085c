package rxlite_test

import (
	"testing"

	"github.com/pkg/errors"
	rxlite "github.com/rxlite/rxlite-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNilProducerPanics(t *testing.T) {
	assert.Panics(t, func() {
		rxlite.Create[int](nil)
	})
}

func TestSubscribeRunsProducerSynchronously(t *testing.T) {
	var trace []string
	source := rxlite.Create(func(o *rxlite.Observer[string]) rxlite.Teardown {
		trace = append(trace, "produce")
		o.Next("v")
		o.Complete()
		return nil
	})

	trace = append(trace, "before")
	source.Subscribe(rxlite.Handler[string]{
		OnNext: func(v string) {
			trace = append(trace, "next:"+v)
		},
		OnComplete: func() {
			trace = append(trace, "complete")
		},
	})
	trace = append(trace, "after")

	assert.Equal(t, []string{"before", "produce", "next:v", "complete", "after"}, trace)
}

func TestProducerPanicEscapesSubscribe(t *testing.T) {
	source := rxlite.Create(func(o *rxlite.Observer[int]) rxlite.Teardown {
		panic("producer exploded")
	})
	errored := false
	assert.Panics(t, func() {
		source.Subscribe(rxlite.Handler[int]{
			OnError: func(error) {
				errored = true
			},
		})
	})
	assert.False(t, errored, "a producer panic is not an error signal")
}

func TestErrorThenNextDropped(t *testing.T) {
	source := rxlite.Create(func(o *rxlite.Observer[int]) rxlite.Teardown {
		o.Error(rxlite.WrapValue("x"))
		o.Next(1)
		return nil
	})

	var errs []error
	nexts := 0
	source.Subscribe(rxlite.Handler[int]{
		OnNext: func(int) {
			nexts++
		},
		OnError: func(err error) {
			errs = append(errs, err)
		},
	})

	require.Len(t, errs, 1)
	assert.Zero(t, nexts)

	ve, ok := errs[0].(*rxlite.ValueError)
	require.True(t, ok)
	assert.Equal(t, "x", ve.Value())
	assert.Contains(t, ve.Error(), "x")
}

func TestWrapValueKeepsErrors(t *testing.T) {
	boom := errors.New("boom")
	assert.Equal(t, boom, rxlite.WrapValue(boom))
	assert.NotEqual(t, boom, rxlite.WrapValue("boom"))
}

func TestTeardownRunsOnceOnComplete(t *testing.T) {
	released := 0
	source := rxlite.Create(func(o *rxlite.Observer[int]) rxlite.Teardown {
		o.Next(42)
		o.Complete()
		// Completion happens before Subscribe stores this teardown; it must
		// still run, exactly once.
		return func() {
			released++
		}
	})

	sub := source.Subscribe(rxlite.Handler[int]{})
	assert.Equal(t, 1, released)

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 1, released)
}

func TestTeardownReleasesResource(t *testing.T) {
	acquired := false
	source := rxlite.Create(func(o *rxlite.Observer[int]) rxlite.Teardown {
		acquired = true
		o.Next(1)
		return func() {
			acquired = false
		}
	})

	sub := source.Subscribe(rxlite.Handler[int]{})
	assert.True(t, acquired, "producer holds its resource until cancelled")

	sub.Unsubscribe()
	assert.False(t, acquired, "unsubscribe must release the producer's resource")
}

func TestSubscriptionsDoNotShareState(t *testing.T) {
	teardowns := 0
	source := rxlite.Create(func(o *rxlite.Observer[int]) rxlite.Teardown {
		o.Next(7)
		return func() {
			teardowns++
		}
	})

	first := source.Subscribe(rxlite.Handler[int]{})
	second := source.Subscribe(rxlite.Handler[int]{})

	first.Unsubscribe()
	assert.Equal(t, 1, teardowns)
	assert.True(t, first.IsUnsubscribed())
	assert.False(t, second.IsUnsubscribed(), "cancelling one subscription must not touch another")

	second.Unsubscribe()
	assert.Equal(t, 2, teardowns)
}
