// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	defaultPort     = 8080
	defaultDocsPath = "/api-docs"
)

// ErrInvalidPort is returned when PORT is not a number in 1..65535.
var ErrInvalidPort = errors.New("invalid port")

// Config holds server settings.
type Config struct {
	Port        int
	ProjectID   string
	Credentials string
	DocsPath    string
	LogLevel    zapcore.Level
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads the given .env files (".env" when none are named) and then
// parses the environment. Missing files are ignored; variables already set
// in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:        defaultPort,
		ProjectID:   firstNonEmpty(getenv("FIREBASE_PROJECT_ID"), getenv("GOOGLE_CLOUD_PROJECT")),
		Credentials: getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		DocsPath:    defaultDocsPath,
		LogLevel:    zapcore.InfoLevel,
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidPort, v)
		}
		cfg.Port = port
	}

	if v := strings.TrimSpace(getenv("API_DOCS_PATH")); v != "" {
		if !strings.HasPrefix(v, "/") {
			v = "/" + v
		}
		cfg.DocsPath = v
	}

	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("log level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
