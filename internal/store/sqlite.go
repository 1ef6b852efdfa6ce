package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"cgt-returns/internal/model"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS draft_returns (
		return_id  TEXT PRIMARY KEY,
		snapshot   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the store at path. ":memory:" gives an in-memory
// store. Sets WAL mode, enables foreign keys, and runs migrations.
func Open(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration %d: %w", i, err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Create(ctx context.Context, draft *model.DraftReturn) error {
	snapshot, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO draft_returns (return_id, snapshot, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		draft.ReturnID, string(snapshot), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting draft return %s: %w", draft.ReturnID, err)
	}
	return nil
}

func (s *SQLiteStore) Fetch(ctx context.Context, key string) (*model.DraftReturn, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM draft_returns WHERE return_id = ?`, key)

	var snapshot string
	if err := row.Scan(&snapshot); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("draft return %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning draft return %s: %w", key, err)
	}

	var draft model.DraftReturn
	if err := json.Unmarshal([]byte(snapshot), &draft); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", key, err)
	}
	return &draft, nil
}

// Update applies mutate to the stored snapshot for key inside a single
// transaction, serializing concurrent writers on the same return.
func (s *SQLiteStore) Update(ctx context.Context, key string, mutate func(model.DraftReturn) model.DraftReturn) (*model.DraftReturn, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var snapshot string
	if err := tx.QueryRowContext(ctx,
		`SELECT snapshot FROM draft_returns WHERE return_id = ?`, key).Scan(&snapshot); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("draft return %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning draft return %s: %w", key, err)
	}

	var current model.DraftReturn
	if err := json.Unmarshal([]byte(snapshot), &current); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", key, err)
	}

	updated := mutate(current)

	encoded, err := json.Marshal(&updated)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot %s: %w", key, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx,
		`UPDATE draft_returns SET snapshot = ?, updated_at = ? WHERE return_id = ?`,
		string(encoded), now, key); err != nil {
		return nil, fmt.Errorf("updating draft return %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing update for %s: %w", key, err)
	}
	committed = true

	return &updated, nil
}
