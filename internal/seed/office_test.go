package seed

import (
	"context"
	"testing"

	"alkhair/internal/records"
	"alkhair/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	store := records.New(nil)
	ctx := context.Background()

	res, err := Demo(ctx, store)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 3, res.Cases)
	assert.Equal(t, 4, res.Donations)
	assert.Equal(t, 4, res.Expenses)

	data := store.Snapshot()
	assert.Len(t, data.Cases, 3)
	assert.Len(t, data.Donations, 4)
	assert.Len(t, data.Expenses, 4)
	assert.Len(t, data.Volunteers, 1)
	assert.Len(t, data.Affidavits, 1)

	// the normalized name still reaches the case
	saeed := store.ListCases(records.CaseFilter{Query: "سعيد"})
	require.Len(t, saeed, 1)
	assert.Len(t, saeed[0].AidHistory, 1)

	assert.Equal(t, "3100", store.TotalDonations().String())

	again, err := Demo(ctx, store)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	assert.Len(t, store.Snapshot().Cases, 3)
}

func TestDemoLeavesExistingOfficeAlone(t *testing.T) {
	store := records.New(nil)
	_, err := store.AddCase(context.Background(), types.CaseInput{Name: "حالة"})
	require.NoError(t, err)

	res, err := Demo(context.Background(), store)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Len(t, store.Snapshot().Cases, 1)
}
