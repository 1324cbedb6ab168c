package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keel/core/config"
)

type serverConfig struct {
	Addr    string        `env:"TEST_SERVER_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TEST_SERVER_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_ENV_ADDR", ":9090")

	type envConfig struct {
		Addr string `env:"TEST_ENV_ADDR" envDefault:":8080"`
	}

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("TEST_CACHED_VALUE", "first")

	type cachedConfig struct {
		Value string `env:"TEST_CACHED_VALUE"`
	}

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// Later loads observe the cached value even if the environment moved.
	t.Setenv("TEST_CACHED_VALUE", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoadMissingRequired(t *testing.T) {
	var cfg requiredConfig
	assert.Error(t, config.Load(&cfg))
}

func TestLoadNil(t *testing.T) {
	assert.Error(t, config.Load[serverConfig](nil))
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
