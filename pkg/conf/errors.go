package conf

import "errors"

// ErrInvalidConfig is returned for structurally invalid configuration files.
var ErrInvalidConfig = errors.New("invalid config")
