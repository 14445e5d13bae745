package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reelist/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TMDB_API_KEY", "key-from-env")
	t.Setenv("SESSION_SECRET", "secret-from-env")

	cfg, err := config.Load()
	rq.NoError(err)
	rq.Equal("key-from-env", cfg.TMDBAPIKey)
	rq.Equal("secret-from-env", cfg.SessionSecret)
	rq.Equal("movies.db", cfg.DatabasePath)
	rq.Equal("5003", cfg.ServerPort)
	rq.Equal("development", cfg.Environment)
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("TMDB_API_KEY", "k")
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("DATABASE_PATH", "/data/movies.db")
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")

	cfg, err := config.Load()
	rq.NoError(err)
	rq.Equal("/data/movies.db", cfg.DatabasePath)
	rq.Equal("8080", cfg.ServerPort)
	rq.Equal("production", cfg.Environment)
}
