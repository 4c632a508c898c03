package firebase

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestInitializeClientsRequiresProject(t *testing.T) {
	_, err := InitializeClients(context.Background(), Config{})
	if !errors.Is(err, ErrNoProject) {
		t.Fatalf("expected ErrNoProject, got %v", err)
	}
}

func TestInitializeClientsMissingCredentialsFile(t *testing.T) {
	cfg := Config{
		ProjectID:                    "test-project",
		GoogleApplicationCredentials: filepath.Join(t.TempDir(), "missing.json"),
	}

	_, err := InitializeClients(context.Background(), cfg)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
