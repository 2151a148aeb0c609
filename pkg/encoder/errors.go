package encoder

import "errors"

var (
	// ErrSettingsMismatch is the panic value when settings for one codec are
	// applied to a record of another.
	ErrSettingsMismatch = errors.New("encoder: specific settings do not match codec type")
)
