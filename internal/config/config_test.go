package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected addr :8080, got %s", cfg.Addr())
	}
	if cfg.DocsPath != "/api-docs" {
		t.Fatalf("expected /api-docs, got %s", cfg.DocsPath)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Fatalf("expected info level, got %s", cfg.LogLevel)
	}
	if cfg.ProjectID != "" {
		t.Fatalf("expected empty project, got %s", cfg.ProjectID)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":                           "9090",
		"GOOGLE_CLOUD_PROJECT":           "fallback-project",
		"GOOGLE_APPLICATION_CREDENTIALS": "/secrets/sa.json",
		"API_DOCS_PATH":                  "docs",
		"LOG_LEVEL":                      "debug",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.ProjectID != "fallback-project" {
		t.Fatalf("expected fallback-project, got %s", cfg.ProjectID)
	}
	if cfg.Credentials != "/secrets/sa.json" {
		t.Fatalf("unexpected credentials path %s", cfg.Credentials)
	}
	if cfg.DocsPath != "/docs" {
		t.Fatalf("expected /docs, got %s", cfg.DocsPath)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Fatalf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestFromEnvFirebaseProjectWins(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"FIREBASE_PROJECT_ID":  "firebase-project",
		"GOOGLE_CLOUD_PROJECT": "cloud-project",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectID != "firebase-project" {
		t.Fatalf("expected firebase-project, got %s", cfg.ProjectID)
	}
}

func TestFromEnvInvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "65536", "-1"} {
		t.Run(port, func(t *testing.T) {
			_, err := FromEnv(envMap(map[string]string{"PORT": port}))
			if !errors.Is(err, ErrInvalidPort) {
				t.Fatalf("expected ErrInvalidPort, got %v", err)
			}
		})
	}
}

func TestFromEnvInvalidLogLevel(t *testing.T) {
	if _, err := FromEnv(envMap(map[string]string{"LOG_LEVEL": "loud"})); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("API_DOCS_PATH", "")
	os.Unsetenv("API_DOCS_PATH")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=7070\nAPI_DOCS_PATH=/reference\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("API_DOCS_PATH")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Fatalf("expected port 7070, got %d", cfg.Port)
	}
	if cfg.DocsPath != "/reference" {
		t.Fatalf("expected /reference, got %s", cfg.DocsPath)
	}
}

func TestLoadIgnoresMissingFile(t *testing.T) {
	t.Setenv("PORT", "8181")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8181 {
		t.Fatalf("expected port 8181, got %d", cfg.Port)
	}
}
