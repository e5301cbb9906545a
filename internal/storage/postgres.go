package storage

import (
	"context"
	"fmt"
	"time"

	"alkhair/internal/utils"
	"alkhair/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotTableName = "alkhair.snapshots"

const postgresSchema = `
CREATE SCHEMA IF NOT EXISTS alkhair;
CREATE TABLE IF NOT EXISTS alkhair.snapshots (
	bucket TEXT PRIMARY KEY,
	payload JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type snapshotRow struct {
	Bucket    string    `db:"bucket"`
	Payload   []byte    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

var snapshotColumns = utils.Columns(snapshotRow{})

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// PostgresStorage keeps one jsonb row per collection.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

// Migrate creates the schema and table when missing.
func (s *PostgresStorage) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresSchema)
	return utils.Wrap(err, "failed to migrate snapshot table")
}

func (s *PostgresStorage) Load(ctx context.Context) (*types.AppData, error) {
	query, args, err := psql().Select(snapshotColumns...).From(snapshotTableName).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate snapshot query: %w", err)
	}

	var rows = make([]*snapshotRow, 0, len(buckets))
	if err := pgxscan.Select(ctx, s.pool, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch snapshots: %w", err)
	}

	data := new(types.AppData)
	for _, row := range rows {
		if err := decodeBucket(data, row.Bucket, row.Payload); err != nil {
			return nil, err
		}
	}

	data.Normalize()
	return data, nil
}

func (s *PostgresStorage) Save(ctx context.Context, data *types.AppData) error {
	payloads, err := encodeBuckets(data)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	now := time.Now()
	for _, b := range payloads {
		query, args, err := upsertSnapshotQuery(&snapshotRow{Bucket: b.name, Payload: b.payload, UpdatedAt: now})
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to upsert %s snapshot: %w", b.name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}
	return nil
}

func upsertSnapshotQuery(row *snapshotRow) (string, []any, error) {
	query, args, err := psql().
		Insert(snapshotTableName).
		SetMap(utils.ColumnValues(row)).
		Suffix("ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate snapshot upsert query: %w", err)
	}
	return query, args, nil
}
