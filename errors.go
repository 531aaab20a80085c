package rxlite

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNilProducer is the panic value of Create when handed a nil producer.
var ErrNilProducer = errors.New("rxlite: nil producer")

// ValueError adapts an arbitrary terminal payload to the error interface so
// a producer can fail a stream with something that is not an error itself:
// a string, a numeric code, a struct. The stream core never looks inside
// either way.
type ValueError struct {
	value interface{}
}

// WrapValue returns v unchanged when it already is an error, otherwise a
// ValueError carrying it.
func WrapValue(v interface{}) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &ValueError{value: v}
}

// Value returns the original payload.
func (e *ValueError) Value() interface{} {
	return e.value
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("rxlite: stream failed: %v", e.value)
}
