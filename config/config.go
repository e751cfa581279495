// Package config loads environment-driven configuration for the export
// core, in the teacher's own LOG_LEVEL-from-environment idiom
// (cmd/root.go's setupLogger), generalized to the rest of this service's
// required and optional settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds every environment-driven setting the export core needs at
// startup. There is no file-based configuration layer: every pack repo
// that configures itself does so from the environment alone.
type Config struct {
	// SenderEmail is required: every ONIX/CrossRef Header names a sender
	// email, and there is no safe default to fall back to.
	SenderEmail string
	SenderName  string

	DataStoreURL string
	CacheURL     string
	ExportAPIBase string

	HTTPAddr      string
	CacheCapacity int

	LogLevel slog.Level
}

// Load reads Config from the environment, applying defaults for optional
// settings and failing fast (returning an error, never a zero value) when
// a required setting is missing.
func Load(getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	senderEmail := strings.TrimSpace(getenv("SENDER_EMAIL"))
	if senderEmail == "" {
		return nil, fmt.Errorf("config: SENDER_EMAIL is required")
	}

	senderName := getenv("SENDER_NAME")
	if senderName == "" {
		senderName = "Export Core"
	}

	httpAddr := getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	cacheCapacity := 1024
	if raw := getenv("CACHE_CAPACITY"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: CACHE_CAPACITY must be a positive integer, got %q", raw)
		}
		cacheCapacity = n
	}

	return &Config{
		SenderEmail:   senderEmail,
		SenderName:    senderName,
		DataStoreURL:  getenv("DATA_STORE_URL"),
		CacheURL:      getenv("CACHE_URL"),
		ExportAPIBase: getenv("EXPORT_API_BASE"),
		HTTPAddr:      httpAddr,
		CacheCapacity: cacheCapacity,
		LogLevel:      parseLogLevel(getenv("LOG_LEVEL")),
	}, nil
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToUpper(raw) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger installs a text-handler slog.Logger at the Config's level as
// the process default, matching cmd/root.go's setupLogger exactly, minus
// its direct os.Getenv read (Config already parsed LOG_LEVEL).
func (c *Config) SetupLogger() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel})
	slog.SetDefault(slog.New(handler))
}
