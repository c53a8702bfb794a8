// Package config provides a type-safe, cached way to load configuration from
// environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file (if any) is loaded into the process environment once,
// then struct fields annotated with `env` tags are populated via env.Parse.
// Each configuration type is parsed at most once per process and served from
// an in-memory cache afterwards, so repeated Load calls are cheap and
// consistent.
//
// # Usage
//
//	type appConfig struct {
//	    Env   string `env:"APP_ENV" envDefault:"development"`
//	    Debug bool   `env:"DEBUG" envDefault:"false"`
//	}
//
//	var cfg appConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// MustLoad panics on failure for configuration the process cannot run
// without. Reset clears the cache, which is useful in tests that change the
// environment between assertions.
//
// # Error Handling
//
// Sentinel errors compare with errors.Is: ErrNilPointer for a nil target and
// ErrParsingConfig (joined with the underlying cause) for parse failures.
package config
