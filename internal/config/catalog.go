package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/spf13/cast"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	defaultHTTPAddr       = ":3001"
	defaultMigrationsPath = "migrations/catalog"
	defaultCacheTTL       = time.Minute
	defaultDBPort         = "5432"
	defaultDBSSLMode      = "disable"

	defaultDBMaxOpenConns    = 25
	defaultDBMaxIdleConns    = 5
	defaultDBConnMaxLifetime = 5 * time.Minute
	defaultDBPingTimeout     = 5 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

type Catalog struct {
	Store              string
	DatabaseURL        string
	RabbitMQURL        string
	RedisURL           string
	CacheTTL           time.Duration
	HTTPAddr           string
	MigrationsPath     string
	CORSAllowedOrigins []string
	SeedDemo           bool
	ShutdownTimeout    time.Duration
	DBMaxOpenConns     int
	DBMaxIdleConns     int
	DBConnMaxLifetime  time.Duration
	DBPingTimeout      time.Duration
	ReadHeaderTimeout  time.Duration
}

func LoadCatalog() (Catalog, error) {
	v := newEnv(map[string]any{
		"STORE":             StorePostgres,
		"MIGRATIONS_PATH":   defaultMigrationsPath,
		"CACHE_TTL":         defaultCacheTTL,
		"DB_PORT":           defaultDBPort,
		"DB_SSLMODE":        defaultDBSSLMode,
		"DB_MAX_OPEN_CONNS": defaultDBMaxOpenConns,
		"DB_MAX_IDLE_CONNS": defaultDBMaxIdleConns,
	})

	cfg := Catalog{
		Store:              v.GetString("STORE"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		RabbitMQURL:        v.GetString("RABBITMQ_URL"),
		RedisURL:           v.GetString("REDIS_URL"),
		CacheTTL:           v.GetDuration("CACHE_TTL"),
		HTTPAddr:           httpAddr(v.GetString("HTTP_ADDR"), v.GetString("PORT")),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		SeedDemo:           v.GetBool("SEED_DEMO"),
		ShutdownTimeout:    defaultShutdownTimeout,
		DBConnMaxLifetime:  defaultDBConnMaxLifetime,
		DBPingTimeout:      defaultDBPingTimeout,
		ReadHeaderTimeout:  defaultReadHeaderTimeout,
	}

	if cfg.DatabaseURL == "" && v.GetString("DB_HOST") != "" {
		cfg.DatabaseURL = postgresURL(
			v.GetString("DB_HOST"),
			v.GetString("DB_PORT"),
			v.GetString("DB_USER"),
			v.GetString("DB_PASSWORD"),
			v.GetString("DB_NAME"),
			v.GetString("DB_SSLMODE"),
		)
	}

	switch cfg.Store {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Catalog{}, fmt.Errorf("DATABASE_URL is required")
		}
	case StoreMemory:
	default:
		return Catalog{}, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, cfg.Store)
	}
	if cfg.CacheTTL <= 0 {
		return Catalog{}, fmt.Errorf("CACHE_TTL must be positive")
	}

	maxOpen, err := cast.ToIntE(v.Get("DB_MAX_OPEN_CONNS"))
	if err != nil || maxOpen <= 0 {
		return Catalog{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be a positive integer")
	}
	maxIdle, err := cast.ToIntE(v.Get("DB_MAX_IDLE_CONNS"))
	if err != nil || maxIdle < 0 {
		return Catalog{}, fmt.Errorf("DB_MAX_IDLE_CONNS must be a non-negative integer")
	}
	cfg.DBMaxOpenConns = maxOpen
	cfg.DBMaxIdleConns = maxIdle

	return cfg, nil
}

func httpAddr(addr, port string) string {
	switch {
	case addr != "":
		return addr
	case port != "":
		return ":" + port
	default:
		return defaultHTTPAddr
	}
}

func postgresURL(host, port, user, password, name, sslmode string) string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": []string{sslmode}}.Encode(),
	}
	if user != "" {
		u.User = url.UserPassword(user, password)
	}
	return u.String()
}
