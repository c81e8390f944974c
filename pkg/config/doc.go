// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing:
//
//	type Config struct {
//	    Path    string        `env:"FORMRULES_CATALOG_PATH" envDefault:"patterns.yaml"`
//	    Timeout time.Duration `env:"FORMRULES_MATCH_TIMEOUT" envDefault:"100ms"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// The default .env file is read on first use when present; LoadEnv reads
// additional files explicitly. Already-set variables always win.
//
// Every configuration type is parsed once and cached by type. ForceReload
// and ResetCache drop cached values, which is mostly useful in tests.
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
