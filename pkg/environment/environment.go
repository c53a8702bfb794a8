package environment

import (
	"strings"
	"sync"

	"github.com/tedyhy/redux/pkg/config"
)

// Environment represents the application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

type envConfig struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
}

var (
	mu       sync.RWMutex
	resolved Environment
	loaded   bool
)

// Current returns the application environment resolved from the APP_ENV
// variable (via pkg/config, which also honors a .env file). Unknown values
// fall back to Development. The result is cached; use Set to override it.
func Current() Environment {
	mu.RLock()
	if loaded {
		env := resolved
		mu.RUnlock()
		return env
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		var cfg envConfig
		// A missing or unparsable environment is not fatal for a library;
		// fall back to development defaults.
		_ = config.Load(&cfg)
		resolved = normalize(cfg.AppEnv)
		loaded = true
	}
	return resolved
}

// Set overrides the cached environment. Mainly useful in tests; passing the
// empty string clears the cache so the next Current call re-resolves it.
func Set(env Environment) {
	mu.Lock()
	defer mu.Unlock()
	if env == "" {
		loaded = false
		resolved = ""
		return
	}
	resolved = normalize(string(env))
	loaded = true
}

// IsProduction reports whether the current environment is production.
func IsProduction() bool {
	return Current() == Production
}

// IsDevelopment reports whether the current environment is development.
func IsDevelopment() bool {
	return Current() == Development
}

// IsStaging reports whether the current environment is staging.
func IsStaging() bool {
	return Current() == Staging
}

func normalize(raw string) Environment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}
