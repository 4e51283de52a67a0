// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It combines `github.com/joho/godotenv`, which applies `.env` files to the
// process environment, with `github.com/caarlos0/env/v11`, which parses the
// environment into a struct using `env` and `envDefault` field tags.
//
// # Usage
//
//	type Config struct {
//	    Rules  string `env:"VALCHECK_RULES,required"`
//	    List   string `env:"VALCHECK_LIST"`
//	    Region string `env:"VALCHECK_PHONE_REGION" envDefault:"US"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, "./config/.env"); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Real environment variables take precedence over `.env` values. Missing
// files are skipped, so the same binary runs with or without one.
//
// Each config type is parsed once and cached. Tests that change the
// environment between loads call Reset.
//
// # Error Handling
//
//   - ErrNilPointer        nil target.
//   - ErrInvalidConfigType target is not a struct.
//   - ErrLoadingEnvFile    env file exists but cannot be parsed.
//   - ErrParsingConfig     env.Parse failed, e.g. a required variable is unset.
package config
