package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads the given .env files into the process environment, in order.
// Values from later files override earlier ones, so callers can layer a base
// file with local overrides. With no arguments the default ./.env is loaded
// if present; a missing default file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		_ = godotenv.Load()
		return nil
	}
	for _, path := range paths {
		if err := godotenv.Overload(path); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("file %q: %w", path, err))
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure. Use it for env files
// the process cannot start without.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load populates the configuration struct from environment variables based
// on its `env` field tags.
//
// Example:
//
//	type Config struct {
//		DefaultLocale string `env:"LOCALE_DEFAULT" envDefault:"en_US"`
//		Path          string `env:"LOCALE_PATH,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if parsing fails. Useful for
// configuration the application cannot run without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
