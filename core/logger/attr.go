package logger

import (
	"fmt"
	"log/slog"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Key Material
// ============================================================================

// Fingerprint creates an attribute for a key fingerprint. Only pass values that
// are safe to print; raw keys must never reach a logger.
func Fingerprint(fp fmt.Stringer) slog.Attr {
	if fp == nil {
		return slog.Attr{}
	}
	return slog.String("fingerprint", fp.String())
}

// Length creates an attribute for a byte length under the given key.
func Length(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Source creates an attribute naming where an input came from, such as an
// environment variable.
func Source(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("source", name)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action creates an attribute for action names.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result creates an attribute for operation results (success/failure).
func Result(result string) slog.Attr {
	return slog.String("result", result)
}
