package codec

import "errors"

var (
	// ErrCapacityExceeded is the panic value for writes past a bounded sequence.
	ErrCapacityExceeded = errors.New("codec: capacity exceeded")
)
