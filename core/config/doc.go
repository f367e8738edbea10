// Package config loads environment-driven settings into typed structs with
// per-type caching using Go generics. Each configuration type is loaded once
// and the cached value is returned on subsequent calls.
//
// A .env file in the working directory is read on first use (missing files
// are ignored), and github.com/caarlos0/env parses the environment into
// struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/sigslot/core/config"
//
//	type LockConfig struct {
//		DefaultPolicy string `env:"SIGSLOT_DEFAULT_POLICY" envDefault:"local"`
//		RecoverPanics bool   `env:"SIGSLOT_RECOVER_PANICS"`
//	}
//
//	func main() {
//		var cfg LockConfig
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
// Each configuration type is loaded only once per process:
//
//	var cfg1 LockConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 LockConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Tests that change the environment between loads call Reset to drop the
// cache.
package config
