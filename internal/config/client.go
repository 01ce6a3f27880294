package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultCatalogAPIURL = "http://localhost:3001"
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultClientTimeout = 5 * time.Second
)

// Client configures catalogctl. An empty GeminiAPIKey means keyword search only.
type Client struct {
	CatalogAPIURL string
	GeminiAPIKey  string
	GeminiModel   string
	Timeout       time.Duration
}

func LoadClient() (Client, error) {
	v := newEnv(map[string]any{
		"CATALOG_API_URL": defaultCatalogAPIURL,
		"GEMINI_MODEL":    defaultGeminiModel,
		"CLIENT_TIMEOUT":  defaultClientTimeout,
	})

	cfg := Client{
		CatalogAPIURL: v.GetString("CATALOG_API_URL"),
		GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		Timeout:       v.GetDuration("CLIENT_TIMEOUT"),
	}

	u, err := url.Parse(cfg.CatalogAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Client{}, fmt.Errorf("CATALOG_API_URL must be an absolute URL, got %q", cfg.CatalogAPIURL)
	}
	if cfg.Timeout <= 0 {
		return Client{}, fmt.Errorf("CLIENT_TIMEOUT must be positive")
	}

	return cfg, nil
}
