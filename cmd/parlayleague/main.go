package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/mconley/parlayleague/internal/config"
	"github.com/mconley/parlayleague/internal/handler/v1handler"
	"github.com/mconley/parlayleague/internal/scores"
	"github.com/mconley/parlayleague/internal/store"
)

func main() {
	// A local .env holds developer settings such as ODDS_API_KEY; absence is
	// fine in deployed environments where real env vars are set.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	st, err := store.NewSQLite()
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	provider, err := newProvider(cfg)
	if err != nil {
		slog.Error("failed to configure scores provider", "error", err)
		os.Exit(1)
	}

	h := v1handler.New(cfg, st, provider)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Http.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
		AllowCredentials: true,
	})

	slog.Info("listening", "port", cfg.Http.Port, "provider", cfg.Scores.Provider)
	if err := http.ListenAndServe(":"+cfg.Http.Port, c.Handler(h)); err != nil {
		slog.Error("server closed", "error", err)
		os.Exit(1)
	}
}

func newProvider(cfg *config.Config) (scores.Provider, error) {
	switch cfg.Scores.Provider {
	case "oddsapi":
		if cfg.Scores.APIKey == "" {
			return nil, errors.New("ODDS_API_KEY is required when SCORES_PROVIDER=oddsapi")
		}
		return scores.NewOddsAPI(cfg.Scores.BaseURL, cfg.Scores.APIKey, cfg.Scores.DaysFrom), nil
	case "espn":
		return scores.NewESPN(cfg.Scores.BaseURL), nil
	}
	return nil, fmt.Errorf("unknown scores provider %q", cfg.Scores.Provider)
}
