package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// TMDBAPIKey selects which TMDB account is billed and rate-limited.
	TMDBAPIKey string `env:"TMDB_API_KEY,required" json:"-"`
	// SessionSecret signs the session cookie carrying form tokens.
	SessionSecret string `env:"SESSION_SECRET,required" json:"-"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"movies.db"`
	ServerPort    string `env:"PORT" envDefault:"5003"`
	Environment   string `env:"ENV" envDefault:"development"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return cfg, nil
}
