package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"alkhair/pkg/types"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS state (
	bucket TEXT PRIMARY KEY,
	payload BLOB NOT NULL
)`

// SQLiteStorage keeps one row per collection in a local SQLite file.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("failed to create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	s, err := NewSQLiteStorage(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStorage wraps an open database and creates the state table.
func NewSQLiteStorage(ctx context.Context, db *sql.DB) (*SQLiteStorage, error) {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Load(ctx context.Context) (*types.AppData, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return nil, fmt.Errorf("failed to select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	data := new(types.AppData)
	for rows.Next() {
		var (
			bucket  string
			payload []byte
		)
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		if err := decodeBucket(data, bucket, payload); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	data.Normalize()
	return data, nil
}

// Save upserts every collection in one transaction.
func (s *SQLiteStorage) Save(ctx context.Context, data *types.AppData) (retErr error) {
	payloads, err := encodeBuckets(data)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin state transaction: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, b := range payloads {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO state(bucket, payload) VALUES(?, ?) ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
			b.name, b.payload,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert %s: %w", b.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
