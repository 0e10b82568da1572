package keydigest

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/genkey/pkg/keymaterial"
)

// Errors that can be checked with errors.Is()
var (
	// ErrInvalidFingerprint indicates a fingerprint string is not 64 hex characters.
	ErrInvalidFingerprint = fmt.Errorf("%w: invalid fingerprint format", keymaterial.ErrInvalidArgument)

	// ErrMismatch indicates the key does not hash to the expected fingerprint.
	ErrMismatch = errors.New("fingerprint mismatch")
)
