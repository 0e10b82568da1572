// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small factory with functional options and a set of attribute helpers
// for the records genkey emits.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/genkey/core/logger"
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Debug("key derived",
//		logger.Component("kdf"),
//		logger.Length("output_bytes", key.Len()),
//		logger.Fingerprint(keydigest.Of(key)),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level
//	devLogger := logger.New(logger.WithDevelopment("genkey"))
//
//	// Production: JSON format, info level
//	prodLogger := logger.New(logger.WithProduction("genkey"))
//
// Records go to stderr unless WithOutput says otherwise, so a command that
// prints its result on stdout keeps a clean output stream.
//
// # Secrets
//
// Never pass raw key material to a logger. The secret types in keymaterial and
// kdf implement slog.LogValuer and log as "[REDACTED]", but the only key-related
// value meant for logs is the fingerprint.
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
