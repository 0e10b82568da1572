package kdf

type options struct {
	outputByteCount int
}

// Option configures key generation.
type Option func(*options)

// WithOutputByteCount sets the derived key length in bytes.
func WithOutputByteCount(n int) Option {
	return func(o *options) {
		o.outputByteCount = n
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{outputByteCount: DefaultOutputByteCount}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
