package keymaterial

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every validation error produced by genkey.
// Check for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Validation errors that can be checked with errors.Is()
var (
	ErrTooShortSecret      = fmt.Errorf("%w: too short secret", ErrInvalidArgument)
	ErrTooShortSalt        = fmt.Errorf("%w: too short salt", ErrInvalidArgument)
	ErrTooShortInfo        = fmt.Errorf("%w: too short info", ErrInvalidArgument)
	ErrInvalidInfoEncoding = fmt.Errorf("%w: info is not valid utf-8", ErrInvalidArgument)
)
