package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotColumns(t *testing.T) {
	assert.Equal(t, []string{"bucket", "payload", "updated_at"}, snapshotColumns)
}

func TestUpsertSnapshotQuery(t *testing.T) {
	now := time.Now()
	query, args, err := upsertSnapshotQuery(&snapshotRow{Bucket: "cases", Payload: []byte("[]"), UpdatedAt: now})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO alkhair.snapshots")
	assert.Contains(t, query, "$3")
	assert.NotContains(t, query, "?")
	assert.Contains(t, query, "ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload")
	require.Len(t, args, 3)
	assert.Equal(t, "cases", args[0])
	assert.Equal(t, []byte("[]"), args[1])
	assert.Equal(t, now, args[2])
}

// Runs against a real database when ALKHAIR_TEST_DATABASE_URL is set.
func TestPostgresStorageRoundTrip(t *testing.T) {
	url := os.Getenv("ALKHAIR_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("ALKHAIR_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := NewPostgresStorage(pool)
	require.NoError(t, s.Migrate(ctx))
	_, err = pool.Exec(ctx, "TRUNCATE alkhair.snapshots")
	require.NoError(t, err)

	roundTrip(t, s)
}
