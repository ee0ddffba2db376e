package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds deployment settings read from the environment.
// They provide the defaults for the CLI flags.
type Env struct {
	DBPath      string `env:"MYSTERIES_DB" envDefault:"~/.mysteries/journal.db"`
	LogPath     string `env:"MYSTERIES_LOG"`
	ContentPath string `env:"MYSTERIES_CONTENT"`
	FPS         int    `env:"MYSTERIES_FPS" envDefault:"30"`
}

// LoadEnv reads an optional .env file, then the process environment.
// Variables already set in the environment win over the .env file.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}
