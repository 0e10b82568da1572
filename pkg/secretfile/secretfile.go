package secretfile

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/genkey/core/logger"
)

// DefaultMaxReadBytes caps every read at 1 MiB.
const DefaultMaxReadBytes int64 = 1 << 20

// Source names one input: the environment variable it is configured by and the
// file path that variable holds.
type Source struct {
	Env  string
	Path string
}

// FromEnv builds a Source from the current process environment.
func FromEnv(name string) Source {
	return Source{Env: name, Path: os.Getenv(name)}
}

type options struct {
	maxReadBytes int64
	log          *slog.Logger
}

// Option configures a Reader.
type Option func(*options)

// WithMaxReadBytes sets the read cap. Values below 1 keep the default.
func WithMaxReadBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxReadBytes = n
		}
	}
}

// WithLogger sets the logger used for read diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Reader loads source files with a size cap.
type Reader struct {
	maxReadBytes int64
	log          *slog.Logger
}

// NewReader creates a Reader.
func NewReader(opts ...Option) *Reader {
	o := &options{
		maxReadBytes: DefaultMaxReadBytes,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Reader{maxReadBytes: o.maxReadBytes, log: o.log}
}

// MaxReadBytes returns the read cap.
func (r *Reader) MaxReadBytes() int64 { return r.maxReadBytes }

// Read returns at most MaxReadBytes bytes of the source file.
func (r *Reader) Read(src Source) ([]byte, error) {
	if src.Path == "" {
		return nil, fmt.Errorf("%w: env var %s missing", ErrMissingSource, src.Env)
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	// One extra byte tells a file of exactly the cap apart from a longer one.
	data, err := io.ReadAll(io.LimitReader(f, r.maxReadBytes+1))
	if err != nil {
		clear(data)
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	if int64(len(data)) > r.maxReadBytes {
		clear(data[r.maxReadBytes:])
		data = data[:r.maxReadBytes]
		r.log.Warn("source truncated to read limit",
			logger.Component("secretfile"),
			logger.Source(src.Env),
			logger.Length("limit_bytes", int(r.maxReadBytes)),
		)
	}

	r.log.Debug("source read",
		logger.Component("secretfile"),
		logger.Source(src.Env),
		logger.Length("bytes", len(data)),
	)
	return data, nil
}
