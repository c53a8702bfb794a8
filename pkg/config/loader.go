package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.RWMutex
	cache  = make(map[string]any)
	dotenv sync.Once
)

// Load parses environment variables into the given struct based on `env`
// field tags. A default .env file, if present, is loaded into the process
// environment first. Each configuration type is parsed at most once per
// process; later calls are served from the cache.
//
//	type appConfig struct {
//	    Env string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg appConfig
//	if err := config.Load(&cfg); err != nil { /* ... */ }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	mu.RLock()
	cached, ok := cache[key]
	mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	mu.Lock()
	// A concurrent Load of the same type may have won the race; keep the
	// first stored copy so every caller sees the same values.
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
	} else {
		cache[key] = *v
	}
	mu.Unlock()

	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset clears the cache so the next Load re-parses the environment. Handy in
// tests that mutate process env between assertions.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func typeKey[T any]() string {
	return fmt.Sprintf("%T", *new(T))
}
