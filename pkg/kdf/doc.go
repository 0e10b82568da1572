// Package kdf derives symmetric keys with HKDF-SHA256 (RFC 5869).
//
// The derivation extracts a pseudorandom key from the effective keying material
// (pepper || IKM) using the salt as the HMAC key, then expands it to the
// requested length bound to the info string. Same inputs always produce the
// same key.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/genkey/pkg/kdf"
//		"github.com/dmitrymomot/genkey/pkg/keymaterial"
//	)
//
//	key, err := kdf.NewKey(ikm, pepper, salt, info)
//	if err != nil {
//		return err
//	}
//	defer key.Wipe()
//
//	// 42-byte key instead of the default 32
//	key, err = kdf.NewKey(ikm, pepper, salt, info, kdf.WithOutputByteCount(42))
//
// Splitting public and private inputs:
//
//	gen := kdf.NewGenerator(
//		kdf.NewPrivate(ikm, pepper),
//		kdf.Public{Salt: salt, Info: info},
//	)
//	key, err := gen.NewKey()
//
// # Output Length
//
// HKDF-SHA256 can produce at most 255*32 = 8160 bytes. Lengths outside
// [1, MaxOutputByteCount] fail with ErrInvalidOutputLength, which also matches
// keymaterial.ErrInvalidArgument. The output is never silently truncated.
//
// # Derived Keys
//
// DerivedKey never exposes its bytes directly. Use WithBytes for scoped access
// and Wipe once the key is no longer needed. Printing or logging a DerivedKey
// yields "[REDACTED]".
package kdf
