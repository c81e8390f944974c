package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/config"
)

type defaultsConfig struct {
	Path    string        `env:"TEST_DEFAULT_PATH" envDefault:"patterns.yaml"`
	Timeout time.Duration `env:"TEST_DEFAULT_TIMEOUT" envDefault:"100ms"`
	Enabled bool          `env:"TEST_DEFAULT_ENABLED" envDefault:"true"`
}

type overrideConfig struct {
	Path    string        `env:"TEST_OVERRIDE_PATH" envDefault:"patterns.yaml"`
	Timeout time.Duration `env:"TEST_OVERRIDE_TIMEOUT" envDefault:"100ms"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"TEST_REQUIRED_VALUE,required"`
}

type invalidConfig struct {
	Timeout time.Duration `env:"TEST_INVALID_TIMEOUT"`
}

type customFileConfig struct {
	String  string        `env:"TEST_CUSTOM_STRING"`
	Int     int           `env:"TEST_CUSTOM_INT"`
	Engine  string        `env:"TEST_CUSTOM_ENGINE"`
	Timeout time.Duration `env:"TEST_CUSTOM_TIMEOUT"`
}

func TestLoad_DefaultValues(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "patterns.yaml", cfg.Path)
	assert.Equal(t, 100*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_OVERRIDE_PATH", "/etc/formrules/patterns.json")
	t.Setenv("TEST_OVERRIDE_TIMEOUT", "2s")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "/etc/formrules/patterns.json", cfg.Path)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value should be returned")

	var reloaded cachedConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[defaultsConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("missing required value", func(t *testing.T) {
		os.Unsetenv("TEST_REQUIRED_VALUE")
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("TEST_INVALID_TIMEOUT", "soon")
		var cfg invalidConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("must load panics", func(t *testing.T) {
		os.Unsetenv("TEST_REQUIRED_VALUE")
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	for _, key := range []string{"TEST_CUSTOM_STRING", "TEST_CUSTOM_INT", "TEST_CUSTOM_ENGINE", "TEST_CUSTOM_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg customFileConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom_value", cfg.String)
	assert.Equal(t, 1234, cfg.Int)
	assert.Equal(t, "re2", cfg.Engine)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
}
