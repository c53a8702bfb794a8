package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedyhy/redux/pkg/config"
)

type testConfig struct {
	Name  string `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Count int    `env:"CONFIG_TEST_COUNT" envDefault:"3"`
}

func TestLoadDefaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
}

func TestLoadFromEnvironment(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_NAME", "from-env")
	t.Setenv("CONFIG_TEST_COUNT", "7")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
}

func TestLoadServesCachedCopy(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_NAME", "first")

	var first testConfig
	require.NoError(t, config.Load(&first))

	// The environment changes, but the cached copy wins until Reset.
	t.Setenv("CONFIG_TEST_NAME", "second")
	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	config.Reset()
	var third testConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadParseFailure(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_COUNT", "not-a-number")

	var cfg testConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanicsOnFailure(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CONFIG_TEST_COUNT", "boom")

	var cfg testConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
