package storage

import (
	"context"
	"encoding/json"
	"testing"

	"alkhair/pkg/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func sampleData() *types.AppData {
	return &types.AppData{
		Cases: []types.Case{{
			ID:     1700000000001,
			Name:   "أحمد علي",
			Type:   types.Tags{"الصدقات", "زكاة مال"},
			Status: types.DefaultCaseStatus,
			Amount: "300",
			AidHistory: []types.Expense{
				{ID: 1700000000003, Beneficiary: "أحمد علي", Amount: "300", Category: "الصدقات"},
			},
		}},
		Donations: []types.Donation{{
			ID:     1700000000002,
			Donor:  "محسن",
			Amount: decimal.RequireFromString("1500.5"),
			Type:   types.Tags{"زكاة مال"},
		}},
		Expenses: []types.Expense{
			{ID: 1700000000003, Beneficiary: "أحمد علي", Amount: "300", Category: "الصدقات"},
		},
		Volunteers: []types.Volunteer{{ID: 1700000000004, Name: "سعاد"}},
		Affidavits: []types.Affidavit{{ID: 1700000000005, HusName: "خالد", WifeName: "منى"}},
	}
}

func requireSameData(t *testing.T, want, got *types.AppData) {
	t.Helper()
	w, err := json.Marshal(want)
	require.NoError(t, err)
	g, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t, string(w), string(g))
}

func roundTrip(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	empty, err := b.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty.Cases)
	require.Empty(t, empty.Cases)

	want := sampleData()
	require.NoError(t, b.Save(ctx, want))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	requireSameData(t, want, got)

	// a second save replaces rather than appends
	want.Volunteers = append(want.Volunteers, types.Volunteer{ID: 1700000000006, Name: "منى"})
	require.NoError(t, b.Save(ctx, want))

	got, err = b.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Volunteers, 2)
	requireSameData(t, want, got)
}
