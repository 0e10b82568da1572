package kdf

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/hkdf"

	"github.com/dmitrymomot/genkey/pkg/keymaterial"
)

const (
	// DefaultOutputByteCount is the key length used when none is requested.
	DefaultOutputByteCount = 32
	// MaxOutputByteCount is the HKDF-SHA256 output limit (255 * hash length).
	MaxOutputByteCount = 255 * sha256.Size
)

// DerivedKey is a secret key produced by DeriveKey.
type DerivedKey struct {
	key []byte
}

// Len returns the key length in bytes.
func (k DerivedKey) Len() int { return len(k.key) }

// WithBytes calls fn with the raw key. fn must not retain or modify the slice.
func (k DerivedKey) WithBytes(fn func(b []byte)) { fn(k.key) }

// Equal reports whether both keys hold the same bytes, in constant time.
func (k DerivedKey) Equal(other DerivedKey) bool {
	return subtle.ConstantTimeCompare(k.key, other.key) == 1
}

// Wipe zeroes the key. The value must not be used afterwards.
func (k DerivedKey) Wipe() { clear(k.key) }

func (k DerivedKey) String() string { return "[REDACTED]" }
func (k DerivedKey) GoString() string { return "kdf.DerivedKey{[REDACTED]}" }
func (k DerivedKey) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }

// DeriveKey runs HKDF-SHA256 over ekm with the given salt and info and returns
// outputByteCount bytes of key material.
func DeriveKey(ekm keymaterial.EffectiveKeyingMaterial, salt keymaterial.Salt, info keymaterial.Info, outputByteCount int) (DerivedKey, error) {
	if outputByteCount < 1 || outputByteCount > MaxOutputByteCount {
		return DerivedKey{}, fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidOutputLength, outputByteCount, MaxOutputByteCount)
	}

	key := make([]byte, outputByteCount)
	var err error
	ekm.WithBytes(func(secret []byte) {
		r := hkdf.New(sha256.New, secret, salt.Bytes(), info.Bytes())
		_, err = io.ReadFull(r, key)
	})
	if err != nil {
		clear(key)
		return DerivedKey{}, fmt.Errorf("%w: %w", ErrKeyDerivationFailed, err)
	}

	return DerivedKey{key: key}, nil
}

// NewKey combines pepper and IKM, derives a key and wipes the intermediate
// keying material. The key is DefaultOutputByteCount bytes long unless
// WithOutputByteCount says otherwise.
func NewKey(ikm keymaterial.Ikm, pepper keymaterial.Pepper, salt keymaterial.Salt, info keymaterial.Info, opts ...Option) (DerivedKey, error) {
	o := applyOptions(opts...)

	ekm := pepper.Combine(ikm)
	defer ekm.Wipe()

	return DeriveKey(ekm, salt, info, o.outputByteCount)
}
