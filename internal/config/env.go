package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig holds overrides read from the environment.
type EnvConfig struct {
	Dict     string `env:"TUIBEE_DICT"`
	DB       string `env:"TUIBEE_DB"`
	LogLevel string `env:"TUIBEE_LOG_LEVEL"`
	Date     string `env:"TUIBEE_DATE"`
	Theme    string `env:"TUIBEE_THEME"`
}

// LoadEnv loads dotenv files (missing files are skipped) and parses
// TUIBEE_* variables. Without files, ./.env is tried.
func LoadEnv(files ...string) (EnvConfig, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return EnvConfig{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
