package kdf

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/genkey/pkg/keymaterial"
)

// Public groups the non-secret derivation inputs.
type Public struct {
	Salt keymaterial.Salt
	Info keymaterial.Info
}

// Private groups the secret derivation inputs.
type Private struct {
	ikm    keymaterial.Ikm
	pepper keymaterial.Pepper
}

// NewPrivate bundles an IKM with its pepper.
func NewPrivate(ikm keymaterial.Ikm, pepper keymaterial.Pepper) Private {
	return Private{ikm: ikm, pepper: pepper}
}

// Wipe zeroes both secrets.
func (p Private) Wipe() {
	p.ikm.Wipe()
	p.pepper.Wipe()
}

func (p Private) String() string { return "[REDACTED]" }
func (p Private) GoString() string { return "kdf.Private{[REDACTED]}" }
func (p Private) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }

// Generator derives keys from a fixed set of private and public inputs.
type Generator struct {
	private Private
	public  Public
}

// NewGenerator returns a Generator for the given inputs.
func NewGenerator(private Private, public Public) *Generator {
	return &Generator{private: private, public: public}
}

// Public returns the public inputs the generator was built with.
func (g *Generator) Public() Public { return g.public }

// NewKey derives a key. See NewKey for the options.
func (g *Generator) NewKey(opts ...Option) (DerivedKey, error) {
	return NewKey(g.private.ikm, g.private.pepper, g.public.Salt, g.public.Info, opts...)
}

// String describes the generator without its secrets.
func (g *Generator) String() string {
	return fmt.Sprintf("kdf.Generator{salt: %d bytes, info: %d bytes}", g.public.Salt.Len(), g.public.Info.Len())
}
