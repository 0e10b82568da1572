package kdf

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/genkey/pkg/keymaterial"
)

var (
	// ErrInvalidOutputLength is returned when the requested key length is not
	// in [1, MaxOutputByteCount].
	ErrInvalidOutputLength = fmt.Errorf("%w: output byte count out of range", keymaterial.ErrInvalidArgument)

	// ErrKeyDerivationFailed wraps an unexpected failure of the HKDF reader.
	ErrKeyDerivationFailed = errors.New("key derivation failed")
)
