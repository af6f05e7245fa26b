package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ExportPath string `env:"FINANCE_EXPORT_PATH" envDefault:"expenses.csv" validate:"required"`
	Currency   string `env:"FINANCE_CURRENCY" envDefault:"Taka" validate:"required"`
	ChartWidth int    `env:"FINANCE_CHART_WIDTH" envDefault:"40" validate:"min=10,max=200"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=trace debug info warn error fatal panic"`
}

// Load reads the environment, after filling it from the given dotenv files (.env by default).
// Missing dotenv files are skipped, variables already set are never overridden.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logrus.Debugf("config skipped %s: %v", file, err)
				continue
			}
			return Config{}, fmt.Errorf("config couldn't load %s: %w", file, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config couldn't parse environment: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config is invalid: %w", err)
	}
	return cfg, nil
}

// Level is the parsed LogLevel
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
