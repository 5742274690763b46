// Package config loads application configuration from environment variables
// into tagged structs using github.com/caarlos0/env/v11, after reading an
// optional .env file with github.com/joho/godotenv.
//
// Each configuration type is parsed once and cached, so Load can be called
// from any package that needs the values without re-reading the environment.
// Reset clears the cache, which is mostly useful in tests.
//
//	type AppConfig struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg, config.WithPrefix("UACLASS_"))
//
// Parsing failures are returned joined with ErrParsingConfig so callers can
// match them with errors.Is.
package config
