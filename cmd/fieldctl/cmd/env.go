package cmd

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Env is the environment configuration shared by all commands.
type Env struct {
	// Style is the style file used when a command gets no --style flag.
	Style string `env:"FIELDCTL_STYLE"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"FIELDCTL_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv reads Env from the process environment, after loading a .env file
// from the working directory if there is one.
func LoadEnv() (Env, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("FIELDCTL_LOG_LEVEL: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "fieldctl",
	}), nil
}
