package main

import (
	"context"
	"fmt"
	"os"

	"shelfspot/internal/client"
	"shelfspot/internal/config"
	"shelfspot/internal/logging"
	"shelfspot/internal/search"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	logger := logging.New("catalogctl")
	defer func() { _ = logger.Sync() }()

	var ranker search.Ranker
	if cfg.GeminiAPIKey != "" {
		gemini, err := search.NewGeminiRanker(context.Background(), search.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			logger.Warn("smart search disabled", zap.Error(err))
		} else {
			ranker = search.NewBreakerRanker("gemini", gemini, logger)
		}
	}

	a := &app{
		catalog: client.NewCatalog(client.New(cfg.CatalogAPIURL, cfg.Timeout)),
		filter:  search.NewFilter(ranker, logger),
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
