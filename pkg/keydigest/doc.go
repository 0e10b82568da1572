// Package keydigest computes safe-to-print fingerprints of derived keys.
//
// A fingerprint is the SHA-256 digest of the raw key bytes. It identifies a key
// for logging, display and equality checks without revealing it. The hash is
// one-way: a fingerprint cannot be turned back into the key.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/genkey/pkg/keydigest"
//
//	fp := keydigest.Of(key)
//	fmt.Println(fp) // 64 lowercase hex characters
//
//	// Later, check a key against a stored fingerprint
//	stored, err := keydigest.Parse(line)
//	if err != nil {
//		return err
//	}
//	if err := keydigest.Verify(key, stored); err != nil {
//		// errors.Is(err, keydigest.ErrMismatch)
//	}
package keydigest
