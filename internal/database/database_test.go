package database

import (
	"path/filepath"
	"testing"
)

func TestDefaultPath_Override(t *testing.T) {
	want := filepath.Join(t.TempDir(), "skm.db")
	SetPath(want)
	t.Cleanup(ResetPath)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "skm.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}
