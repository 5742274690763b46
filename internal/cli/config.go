package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/uaclass/internal/api"
	"github.com/dmitrymomot/uaclass/pkg/config"
	"github.com/dmitrymomot/uaclass/pkg/httpserver"
	"github.com/dmitrymomot/uaclass/pkg/logger"
	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

const serviceName = "uaclass"

// AppConfig is read from the environment (and an optional .env file).
type AppConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	HTTP      httpserver.Config
}

func loadConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. LOG_LEVEL and LOG_FORMAT override the
// environment defaults when set.
func newLogger(cfg AppConfig, w io.Writer) (*slog.Logger, error) {
	format := logger.Format(cfg.LogFormat)
	switch format {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithContextExtractors(
			api.RequestIDExtractor(),
			useragent.LoggerExtractor(),
		),
	), nil
}
