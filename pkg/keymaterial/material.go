package keymaterial

import (
	"bytes"
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	// MinIkmLength is the minimum accepted length of input keying material.
	MinIkmLength = 22
	// MinSaltLength is the minimum accepted salt length.
	MinSaltLength = 13
	// MinInfoLength is the minimum accepted info (context) length.
	MinInfoLength = 10

	redacted = "[REDACTED]"
)

// Ikm is validated secret input keying material.
type Ikm struct {
	secret []byte
}

// NewIkm validates and copies b. It returns ErrTooShortSecret when b is
// shorter than MinIkmLength.
func NewIkm(b []byte) (Ikm, error) {
	if len(b) < MinIkmLength {
		return Ikm{}, ErrTooShortSecret
	}
	return Ikm{secret: bytes.Clone(b)}, nil
}

// Len returns the number of secret bytes.
func (k Ikm) Len() int { return len(k.secret) }

// WithBytes calls fn with the raw secret. fn must not retain or modify the slice.
func (k Ikm) WithBytes(fn func(b []byte)) { fn(k.secret) }

// Material returns the IKM alone as effective keying material.
func (k Ikm) Material() EffectiveKeyingMaterial {
	return k.CombineWithPepper(nil)
}

// CombineWithPepper returns pepper followed by the IKM bytes.
func (k Ikm) CombineWithPepper(pepper []byte) EffectiveKeyingMaterial {
	combined := make([]byte, 0, len(pepper)+len(k.secret))
	combined = append(combined, pepper...)
	combined = append(combined, k.secret...)
	return EffectiveKeyingMaterial{material: combined}
}

// Wipe zeroes the secret. The value must not be used afterwards.
func (k Ikm) Wipe() { clear(k.secret) }

func (k Ikm) String() string { return redacted }
func (k Ikm) GoString() string { return "keymaterial.Ikm{" + redacted + "}" }
func (k Ikm) LogValue() slog.Value { return slog.StringValue(redacted) }

// Pepper is an optional secondary secret mixed in front of the IKM.
// The zero value is the empty pepper.
type Pepper struct {
	secret []byte
}

// NewPepper copies b into a Pepper. Any length, including zero, is accepted.
func NewPepper(b []byte) Pepper {
	return Pepper{secret: bytes.Clone(b)}
}

// NoPepper returns the empty pepper.
func NoPepper() Pepper { return Pepper{} }

// Len returns the number of secret bytes.
func (p Pepper) Len() int { return len(p.secret) }

// IsEmpty reports whether the pepper carries no bytes.
func (p Pepper) IsEmpty() bool { return len(p.secret) == 0 }

// WithBytes calls fn with the raw secret. fn must not retain or modify the slice.
func (p Pepper) WithBytes(fn func(b []byte)) { fn(p.secret) }

// Combine returns the pepper followed by the IKM bytes.
func (p Pepper) Combine(ikm Ikm) EffectiveKeyingMaterial {
	return ikm.CombineWithPepper(p.secret)
}

// Wipe zeroes the secret. The value must not be used afterwards.
func (p Pepper) Wipe() { clear(p.secret) }

func (p Pepper) String() string { return redacted }
func (p Pepper) GoString() string { return "keymaterial.Pepper{" + redacted + "}" }
func (p Pepper) LogValue() slog.Value { return slog.StringValue(redacted) }

// EffectiveKeyingMaterial is the pepper || IKM buffer fed into the KDF.
// It is short-lived: callers should Wipe it as soon as derivation is done.
type EffectiveKeyingMaterial struct {
	material []byte
}

// Len returns the number of bytes.
func (m EffectiveKeyingMaterial) Len() int { return len(m.material) }

// WithBytes calls fn with the raw material. fn must not retain or modify the slice.
func (m EffectiveKeyingMaterial) WithBytes(fn func(b []byte)) { fn(m.material) }

// Wipe zeroes the material.
func (m EffectiveKeyingMaterial) Wipe() { clear(m.material) }

func (m EffectiveKeyingMaterial) String() string { return redacted }
func (m EffectiveKeyingMaterial) GoString() string {
	return "keymaterial.EffectiveKeyingMaterial{" + redacted + "}"
}
func (m EffectiveKeyingMaterial) LogValue() slog.Value { return slog.StringValue(redacted) }

// Salt is the public HKDF extraction salt.
type Salt struct {
	salt []byte
}

// NewSalt validates and copies b. It returns ErrTooShortSalt when b is
// shorter than MinSaltLength.
func NewSalt(b []byte) (Salt, error) {
	if len(b) < MinSaltLength {
		return Salt{}, ErrTooShortSalt
	}
	return Salt{salt: bytes.Clone(b)}, nil
}

// Bytes returns a copy of the salt.
func (s Salt) Bytes() []byte { return bytes.Clone(s.salt) }

// Len returns the salt length.
func (s Salt) Len() int { return len(s.salt) }

// Info is the public HKDF context string used for domain separation.
type Info struct {
	info []byte
}

// NewInfo validates and copies b. It returns ErrTooShortInfo when b is
// shorter than MinInfoLength.
func NewInfo(b []byte) (Info, error) {
	if len(b) < MinInfoLength {
		return Info{}, ErrTooShortInfo
	}
	return Info{info: bytes.Clone(b)}, nil
}

// InfoFromNames builds the info from a fully-qualified domain name followed by
// a code name, encoded as UTF-8. Ill-formed UTF-8 in either part is rejected
// with ErrInvalidInfoEncoding instead of falling back to an empty info.
func InfoFromNames(fqdn, codeName string) (Info, error) {
	encoded, _, err := transform.Bytes(encoding.UTF8Validator, []byte(fqdn+codeName))
	if err != nil {
		return Info{}, ErrInvalidInfoEncoding
	}
	return NewInfo(encoded)
}

// Bytes returns a copy of the info.
func (i Info) Bytes() []byte { return bytes.Clone(i.info) }

// Len returns the info length.
func (i Info) Len() int { return len(i.info) }

// String returns the info as text. Info is public and safe to print.
func (i Info) String() string { return string(i.info) }
