package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port         string
	DevMode      bool
	StaticDir    string
	ResumeWindow time.Duration
	LogLevel     slog.Level

	// Startup credentials. They seed the matching credential fields once per
	// page instance and are never re-read afterwards.
	PublicAPIKey string
	RuntimeURL   string
}

func Load() Config {
	cfg := Config{
		Port:         getenv("PORT", "3000"),
		DevMode:      os.Getenv("VANGO_DEV") == "1",
		StaticDir:    getenv("STATIC_DIR", "public"),
		ResumeWindow: time.Duration(getenvInt("RESUME_WINDOW_SECONDS", 30)) * time.Second,
		LogLevel:     getenvLevel("LOG_LEVEL", slog.LevelInfo),
		PublicAPIKey: strings.TrimSpace(os.Getenv("CKC_PUBLIC_API_KEY")),
		RuntimeURL:   strings.TrimSpace(os.Getenv("CKC_RUNTIME_URL")),
	}

	if cfg.ResumeWindow <= 0 {
		cfg.ResumeWindow = 30 * time.Second
	}
	if cfg.DevMode && os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = slog.LevelDebug
	}

	return cfg
}

func getenv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func getenvInt(name string, fallback int) int {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvLevel(name string, fallback slog.Level) slog.Level {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return fallback
	}
	return level
}
