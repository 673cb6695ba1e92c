// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// LoadEnv layers one or more .env files into the process environment (later
// files override earlier ones), and Load parses the environment into any
// struct annotated with `env` tags. Must* variants panic for configuration
// the process cannot start without.
//
// # Usage
//
//	type AppConfig struct {
//	    DefaultLocale string `env:"LOCALE_DEFAULT" envDefault:"en_US"`
//	    Path          string `env:"LOCALE_PATH" envDefault:"translations"`
//	}
//
//	func main() {
//	    config.MustLoadEnv() // optional ./.env
//	    var cfg AppConfig
//	    config.MustLoad(&cfg)
//	    // cfg is populated
//	}
//
// # Error Handling
//
// Sentinel errors comparable with errors.Is:
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – a named .env file could not be read.
//   - ErrNilPointer – nil pointer passed to Load.
package config
