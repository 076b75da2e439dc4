// Package config loads widgetlab settings from environment variables.
package config

import (
	"os"
	"strings"
	"time"

	"widgetlab/internal/news"
	"widgetlab/internal/telemetry"
)

// Environment variables read by Load.
const (
	NewsURLEnv      = "WIDGETLAB_NEWS_URL"
	FetchTimeoutEnv = "WIDGETLAB_FETCH_TIMEOUT"
	LogFileEnv      = "WIDGETLAB_LOG_FILE"
	StartScreenEnv  = "WIDGETLAB_START_SCREEN"
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv  = "OTEL_SERVICE_NAME"
)

// DefaultStartScreen is the screen shown at startup.
const DefaultStartScreen = "news"

// Config holds runtime settings.
type Config struct {
	NewsURL      string
	FetchTimeout time.Duration
	LogFile      string // empty disables logging
	StartScreen  string
	Telemetry    telemetry.Config
}

// Load reads the configuration from the environment.
// Unset or invalid values fall back to defaults.
func Load() Config {
	cfg := Config{
		NewsURL:      news.DefaultURL,
		FetchTimeout: news.DefaultTimeout,
		StartScreen:  DefaultStartScreen,
		Telemetry: telemetry.Config{
			ServiceName: telemetry.DefaultServiceName,
		},
	}

	if v := strings.TrimSpace(os.Getenv(NewsURLEnv)); v != "" {
		cfg.NewsURL = v
	}
	if v := os.Getenv(FetchTimeoutEnv); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	cfg.LogFile = os.Getenv(LogFileEnv)
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(StartScreenEnv))); v != "" {
		cfg.StartScreen = v
	}
	cfg.Telemetry.Endpoint = os.Getenv(OTLPEndpointEnv)
	if v := os.Getenv(ServiceNameEnv); v != "" {
		cfg.Telemetry.ServiceName = v
	}
	return cfg
}
