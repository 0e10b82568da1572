package keydigest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/dmitrymomot/genkey/pkg/kdf"
)

// Size is the fingerprint length in bytes.
const Size = sha256.Size

// Fingerprint is the SHA-256 digest of a derived key.
type Fingerprint [Size]byte

// Of hashes the raw bytes of key. The bytes are only read inside the key's
// scoped accessor.
func Of(key kdf.DerivedKey) Fingerprint {
	var fp Fingerprint
	key.WithBytes(func(b []byte) {
		fp = sha256.Sum256(b)
	})
	return fp
}

// String returns the fingerprint as lowercase hex.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Equal reports whether two fingerprints match.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return subtle.ConstantTimeCompare(f[:], other[:]) == 1
}

// Parse decodes a hex fingerprint. Case is ignored and surrounding whitespace
// is trimmed, so a line printed by String can be fed back as is.
func Parse(s string) (Fingerprint, error) {
	var fp Fingerprint
	s = strings.TrimSpace(s)
	if len(s) != hex.EncodedLen(Size) {
		return fp, ErrInvalidFingerprint
	}
	if _, err := hex.Decode(fp[:], []byte(strings.ToLower(s))); err != nil {
		return Fingerprint{}, ErrInvalidFingerprint
	}
	return fp, nil
}

// Verify returns nil when key hashes to expected, or ErrMismatch otherwise.
func Verify(key kdf.DerivedKey, expected Fingerprint) error {
	if !Of(key).Equal(expected) {
		return ErrMismatch
	}
	return nil
}
