package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = make(map[string]any)

	defaultEnvOnce sync.Once
)

// Load parses environment variables into cfg based on its env tags. The
// first call for a given struct type does the actual parse; later calls
// return the cached copy, so every consumer of a config type sees the same
// values regardless of load order.
//
// A .env file in the working directory is applied once per process before
// the first parse; its absence is not an error.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = *cfg
	return nil
}

// MustLoad is Load that panics on failure, for composition roots where a
// missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// LoadEnv applies the named .env files in order, later files overriding
// earlier ones, then drops the cache so subsequent Load calls see the new
// values.
func LoadEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Overload(path); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, path, err)
		}
	}
	ResetCache()
	return nil
}

// ResetCache discards every cached config. Intended for tests that mutate
// the environment between cases.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

func typeKey[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.Name()
}
