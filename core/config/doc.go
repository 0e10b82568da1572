// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/genkey/core/config"
//
//	type SourceConfig struct {
//		IkmPath  string `env:"ENV_SECRET_IKM_LOCATION,required"`
//		SaltPath string `env:"ENV_PUBLIC_SALT_LOCATION,required"`
//		MaxRead  int64  `env:"GENKEY_MAX_READ_BYTES" envDefault:"1048576"`
//	}
//
//	func main() {
//		var cfg SourceConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 SourceConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 SourceConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// # Uncached Parsing
//
// Parse skips the cache. It can read from an explicit variable map or merge in
// dotenv files, which keeps command-line tools and tests independent of the
// process environment:
//
//	err := config.Parse(&cfg,
//		config.WithEnvironment(map[string]string{"ENV_SECRET_IKM_LOCATION": "/run/secrets/ikm"}),
//		config.WithEnvFiles("genkey.env"),
//	)
package config
