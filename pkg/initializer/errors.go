package initializer

import (
	"errors"
	"fmt"
)

var (
	// Precondition faults, used as panic values.
	ErrInvalidConfig       = errors.New("invalid encoder config")
	ErrInvalidStream       = errors.New("invalid video stream")
	ErrTooManyStreams      = errors.New("too many simulcast streams")
	ErrInvalidLayering     = errors.New("invalid layering")
	ErrUnsupportedSettings = errors.New("encoder specific settings not supported")

	// Returned by SetupCodec.
	ErrMultiplexSetup  = errors.New("failed to create multiplex encoder configuration")
	errNestedMultiplex = errors.New("multiplex codec nested in multiplex codec")
)

// check panics with err when cond does not hold.
func check(cond bool, err error, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Errorf("%w: "+format, append([]interface{}{err}, args...)...))
	}
}

func checkRange(v, lo, hi int, err error, what string) {
	check(v >= lo && v <= hi, err, "%s %d not in [%d, %d]", what, v, lo, hi)
}
