package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListUpMigrationsSortsAndFilters(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"0002_b.up.sql", "0001_a.up.sql", "0001_a.down.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	files, err := listUpMigrations(root)
	if err != nil {
		t.Fatalf("list migrations: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 up migrations, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "0001_a.up.sql" || filepath.Base(files[1]) != "0002_b.up.sql" {
		t.Fatalf("unexpected order: %v", files)
	}
}

func TestListUpMigrationsMissingDir(t *testing.T) {
	if _, err := listUpMigrations(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
