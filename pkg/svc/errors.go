package svc

import "errors"

// ErrInvalidInput is the panic value for non-positive geometry arguments.
var ErrInvalidInput = errors.New("svc: invalid layer geometry input")
