package devserver

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls the development server.
type Config struct {
	Addr            string        `env:"DATAFLOW_ADDR" envDefault:":8080"`
	WebDir          string        `env:"DATAFLOW_WEB_DIR" envDefault:"web"`
	LogLevel        string        `env:"DATAFLOW_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"DATAFLOW_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a production zap logger at the configured level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
