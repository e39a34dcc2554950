// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	// cache maps a config type to its loaded value.
	cache sync.Map
)

// Load parses environment variables into the given config struct. The first
// call for a type reads the environment; subsequent calls return the cached
// value, so repeated loads of the same type always agree.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is not an error; the process environment wins.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(cfg).Elem()
	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment for %s: %w", key, err)
	}

	v, _ := cache.LoadOrStore(key, *cfg)
	*cfg = v.(T)
	return nil
}

// MustLoad is Load but panics on failure. Use in main() or init() where
// panic on startup is acceptable.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
