package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom", "events.db")
	t.Setenv("AURA_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath returned error: %v", err)
	}
	if got != want {
		t.Errorf("path = %s, want %s", got, want)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}

func TestDefaultDBPath_XDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("AURA_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath returned error: %v", err)
	}
	want := filepath.Join(dataHome, "learnaura", "aura.db")
	if got != want {
		t.Errorf("path = %s, want %s", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("stat parent: %v", err)
	}
	if !info.IsDir() {
		t.Error("parent is not a directory")
	}
}
