package main

import (
	"log/slog"
	"net/http"
	"os"

	"reelist/config"
	"reelist/database"
	"reelist/handlers"
	"reelist/logger"
	"reelist/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(cfg.Environment)

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := database.NewMovieStore(db)
	tmdb := services.NewTMDBClient(cfg.TMDBAPIKey)

	app, err := handlers.New(store, tmdb, cfg)
	if err != nil {
		slog.Error("failed to initialize handlers", "error", err)
		os.Exit(1)
	}

	addr := ":" + cfg.ServerPort
	slog.Info("starting server", "addr", addr, "database", cfg.DatabasePath)
	if err := http.ListenAndServe(addr, app.Routes()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
