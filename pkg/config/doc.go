// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. Load
// reads an optional .env file from the working directory once per process,
// loads any files passed with WithEnvFiles, then parses the environment into
// a struct annotated with `env` tags:
//
//	type Config struct {
//	    LogLevel string   `env:"LOG_LEVEL" envDefault:"info"`
//	    Locales  []string `env:"PHONE_LOCALES" envSeparator:","`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("VALIDKIT_")); err != nil {
//	    log.Fatal(err)
//	}
//
// Successful results are cached per type and prefix, so later calls do not
// re-read the environment. ResetCache clears the cache in tests.
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be matched with errors.Is.
package config
