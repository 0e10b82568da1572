package secretfile

import (
	"fmt"

	"github.com/dmitrymomot/genkey/pkg/keymaterial"
)

var (
	// ErrMissingSource indicates a source has no file path configured.
	ErrMissingSource = fmt.Errorf("%w: missing source", keymaterial.ErrInvalidArgument)

	// ErrUnreadable indicates a source file could not be opened or read.
	ErrUnreadable = fmt.Errorf("%w: unable to read file", keymaterial.ErrInvalidArgument)
)
