package records

import (
	"context"
	"testing"

	"alkhair/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDisbursementPrefersNationalID(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAddCase(t, s, types.CaseInput{Name: "أحمد علي", NationalID: "111"})
	b := mustAddCase(t, s, types.CaseInput{Name: "محمود", NationalID: "222"})

	res, err := s.RecordDisbursement(context.Background(), types.DisbursementInput{
		Beneficiary: "محمود",
		NationalID:  "111",
		Amount:      "200",
		Category:    "الصدقات",
	})
	require.NoError(t, err)
	assert.Equal(t, a.ID, res.CaseID)
	assert.Equal(t, 1, res.Candidates)

	got, err := s.Case(a.ID)
	require.NoError(t, err)
	require.Len(t, got.AidHistory, 1)
	assert.Equal(t, res.Expense, got.AidHistory[0])
	assert.Equal(t, "200", got.Amount)
	assert.Equal(t, "الصدقات", got.Source)

	other, err := s.Case(b.ID)
	require.NoError(t, err)
	assert.Empty(t, other.AidHistory)
}

func TestRecordDisbursementFallsBackToNormalizedName(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAddCase(t, s, types.CaseInput{Name: "أحمد عليّ", NationalID: "111"})

	res, err := s.RecordDisbursement(context.Background(), types.DisbursementInput{
		Beneficiary: " احمد علي ",
		NationalID:  "999",
		Amount:      "2 كرتونة",
	})
	require.NoError(t, err)
	assert.Equal(t, a.ID, res.CaseID)
	assert.Equal(t, "احمد علي", res.Expense.Beneficiary)

	got, err := s.Case(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 كرتونة", got.Amount)
}

func TestRecordDisbursementWithoutMatchingCase(t *testing.T) {
	s, _ := newTestStore(t)
	mustAddCase(t, s, types.CaseInput{Name: "أحمد"})

	res, err := s.RecordDisbursement(context.Background(), types.DisbursementInput{
		Beneficiary: "أحمد علي",
		Amount:      "100",
	})
	require.NoError(t, err)
	assert.Zero(t, res.CaseID)
	assert.Zero(t, res.Candidates)
	assert.Equal(t, "2026-01-20", res.Expense.Date)
	assert.Len(t, s.ListExpenses(""), 1)
}

func TestRecordDisbursementAmbiguousNameUsesFirstCase(t *testing.T) {
	s, _ := newTestStore(t)
	first := mustAddCase(t, s, types.CaseInput{Name: "فاطمة"})
	second := mustAddCase(t, s, types.CaseInput{Name: "فاطمه"})

	res, err := s.RecordDisbursement(context.Background(), types.DisbursementInput{
		Beneficiary: "فاطمة",
		Amount:      "75",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, res.CaseID)
	assert.Equal(t, 2, res.Candidates)

	got, err := s.Case(second.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AidHistory)
}

func TestRecordDisbursementEditUpdatesHistoryInPlace(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	a := mustAddCase(t, s, types.CaseInput{Name: "أحمد", NationalID: "111"})

	res, err := s.RecordDisbursement(ctx, types.DisbursementInput{
		Beneficiary: "أحمد",
		NationalID:  "111",
		Amount:      "100",
		Category:    "الصدقات",
		Date:        "2026-01-02",
	})
	require.NoError(t, err)

	edited, err := s.RecordDisbursement(ctx, types.DisbursementInput{
		ID:          res.Expense.ID,
		Beneficiary: "أحمد",
		NationalID:  "111",
		Amount:      "150",
		Category:    "زكاة مال",
	})
	require.NoError(t, err)
	assert.Equal(t, res.Expense.ID, edited.Expense.ID)
	assert.Equal(t, "2026-01-02", edited.Expense.Date)

	got, err := s.Case(a.ID)
	require.NoError(t, err)
	require.Len(t, got.AidHistory, 1)
	assert.Equal(t, "150", got.AidHistory[0].Amount)
	assert.Equal(t, "150", got.Amount)
	assert.Equal(t, "زكاة مال", got.Source)

	expenses := s.ListExpenses("")
	require.Len(t, expenses, 1)
	assert.Equal(t, "150", expenses[0].Amount)

	_, err = s.RecordDisbursement(ctx, types.DisbursementInput{ID: 7, Beneficiary: "أحمد", Amount: "1"})
	assert.ErrorIs(t, err, types.ErrExpenseNotFound)
}

func TestCaseAmountTracksLatestPayment(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	a := mustAddCase(t, s, types.CaseInput{Name: "أحمد", Amount: "300"})

	for _, amount := range []string{"100", "250"} {
		_, err := s.RecordDisbursement(ctx, types.DisbursementInput{Beneficiary: "أحمد", Amount: amount})
		require.NoError(t, err)
	}

	got, err := s.Case(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "250", got.Amount)
	assert.Len(t, got.AidHistory, 2)
}

func TestRecordDisbursementValidation(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordDisbursement(ctx, types.DisbursementInput{Amount: "10"})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = s.RecordDisbursement(ctx, types.DisbursementInput{Beneficiary: "أحمد", Amount: "  "})
	assert.ErrorIs(t, err, types.ErrValidation)

	assert.Equal(t, 0, p.saves)
}

func TestDeleteDisbursementPurgesHistories(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	a := mustAddCase(t, s, types.CaseInput{Name: "أحمد"})

	res, err := s.RecordDisbursement(ctx, types.DisbursementInput{Beneficiary: "أحمد", Amount: "100"})
	require.NoError(t, err)
	keep, err := s.RecordDisbursement(ctx, types.DisbursementInput{Beneficiary: "أحمد", Amount: "40"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteDisbursement(ctx, res.Expense.ID))

	expenses := s.ListExpenses("")
	require.Len(t, expenses, 1)
	assert.Equal(t, keep.Expense.ID, expenses[0].ID)

	got, err := s.Case(a.ID)
	require.NoError(t, err)
	require.Len(t, got.AidHistory, 1)
	assert.Equal(t, keep.Expense.ID, got.AidHistory[0].ID)

	_, err = s.Expense(res.Expense.ID)
	assert.ErrorIs(t, err, types.ErrExpenseNotFound)
	assert.ErrorIs(t, s.DeleteDisbursement(ctx, res.Expense.ID), types.ErrExpenseNotFound)
}

func TestDeleteDisbursementRemovesOrphanedHistoryCopy(t *testing.T) {
	p := &memPersister{loaded: &types.AppData{
		Cases: []types.Case{{ID: 1, Name: "أحمد", AidHistory: []types.Expense{{ID: 5, Amount: "10"}}}},
	}}
	s, err := Open(context.Background(), p)
	require.NoError(t, err)

	require.NoError(t, s.DeleteDisbursement(context.Background(), 5))

	got, err := s.Case(1)
	require.NoError(t, err)
	assert.Empty(t, got.AidHistory)
}
