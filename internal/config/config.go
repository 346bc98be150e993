package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	ServerURL       string
	PingInterval    time.Duration
	ContactEndpoint string
	ContactTimeout  time.Duration
	ChartCacheSize  int
	CatalogDir      string
}

// New reads the environment, after loading .env when one is present.
func New() (*Config, error) {
	_ = godotenv.Load()

	port := strings.TrimPrefix(strings.TrimSpace(os.Getenv("PORT")), ":")
	if port == "" {
		port = "1169" // Default port if not set
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "production"
	}

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	switch logLevel {
	case "":
		logLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", logLevel)
	}

	contactEndpoint := strings.TrimSpace(os.Getenv("CONTACT_FORM_ENDPOINT"))
	if contactEndpoint == "" {
		return nil, fmt.Errorf("CONTACT_FORM_ENDPOINT is not set in the environment variables")
	}

	contactTimeout, err := durationEnv("CONTACT_SUBMIT_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	pingInterval, err := durationEnv("PING_INTERVAL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	cacheSize := 128
	if raw := strings.TrimSpace(os.Getenv("CHART_CACHE_SIZE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("CHART_CACHE_SIZE must be a positive integer, got %q", raw)
		}
		cacheSize = n
	}

	return &Config{
		Port:            port,
		Env:             env,
		LogLevel:        logLevel,
		ServerURL:       strings.TrimSpace(os.Getenv("SERVER_URL")),
		PingInterval:    pingInterval,
		ContactEndpoint: contactEndpoint,
		ContactTimeout:  contactTimeout,
		ChartCacheSize:  cacheSize,
		CatalogDir:      strings.TrimSpace(os.Getenv("CATALOG_DIR")),
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) Development() bool {
	return strings.EqualFold(c.Env, "development")
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}
