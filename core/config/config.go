package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Errors that can be checked with errors.Is()
var (
	ErrParsingConfig  = errors.New("failed to parse config from environment")
	ErrLoadingEnvFile = errors.New("failed to load env file")
)

var (
	cache      sync.Map // reflect.Type -> T
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg. The first call for a type parses
// and caches the result; later calls for the same type copy the cached value.
// A .env file in the working directory is loaded once, if present, without
// overriding variables already set.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}

	actual, _ := cache.LoadOrStore(typ, loaded)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error. Useful at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse parses cfg without touching the cache. By default it reads the process
// environment; see WithEnvironment and WithEnvFiles.
func Parse[T any](cfg *T, opts ...Option) error {
	o := applyOptions(opts...)

	environment := o.environment
	if len(o.envFiles) > 0 {
		fromFiles, err := godotenv.Read(o.envFiles...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoadingEnvFile, err)
		}
		if environment == nil {
			environment = osEnvironment()
		}
		environment = merge(environment, fromFiles)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}
	return nil
}

// merge adds file values that are not already set, matching godotenv.Load.
func merge(base, fromFiles map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(fromFiles))
	for k, v := range fromFiles {
		out[k] = v
	}
	for k, v := range base {
		out[k] = v
	}
	return out
}

func osEnvironment() map[string]string {
	vars := os.Environ()
	out := make(map[string]string, len(vars))
	for _, kv := range vars {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
