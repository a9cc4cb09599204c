package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"enrollment-assistant/internal/conversation/repository"
	pkgLog "enrollment-assistant/pkg/log"

	_ "modernc.org/sqlite"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// Open creates (if needed) and opens the SQLite file at path.
func Open(path string, l pkgLog.Logger) (*implRepository, error) {
	p := filepath.Clean(strings.TrimSpace(path))
	if p == "" || p == "." {
		return nil, errors.New("sqlite db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection so the per-connection pragmas below hold for every query.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	l.Infof(context.Background(), "conversation storage opened at %s", p)
	return &implRepository{db: db, l: l}, nil
}

// Close closes the database handle.
func (r *implRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

var _ repository.Repository = (*implRepository)(nil)
