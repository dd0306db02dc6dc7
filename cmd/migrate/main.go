package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lutefd/skyblock-facade/internal/config"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if cfg.Postgres.DSN == "" {
		slog.Error("no database configured, set DATABASE_URL or postgres.dsn")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		slog.Error("connect db", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	files, err := listUpMigrations("migrations")
	if err != nil {
		slog.Error("list migrations", "error", err)
		os.Exit(1)
	}

	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		slog.Error("create migrations table", "error", err)
		os.Exit(1)
	}

	for _, file := range files {
		applied, err := apply(ctx, pool, file)
		if err != nil {
			slog.Error("apply migration", "file", file, "error", err)
			os.Exit(1)
		}
		if applied {
			slog.Info("applied migration", "file", file)
		}
	}
}

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	name TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// apply runs one migration file in a transaction and records it. Files that
// are already recorded are skipped.
func apply(ctx context.Context, pool *pgxpool.Pool, file string) (bool, error) {
	name := filepath.Base(file)
	applied := false
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}

func listUpMigrations(root string) ([]string, error) {
	files := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".up.sql") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
