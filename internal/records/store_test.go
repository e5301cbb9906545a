package records

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"alkhair/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.January, 20, 10, 0, 0, 0, time.UTC)

type memPersister struct {
	mu     sync.Mutex
	loaded *types.AppData
	saved  *types.AppData
	saves  int
	err    error
}

func (p *memPersister) Load(ctx context.Context) (*types.AppData, error) {
	return p.loaded, nil
}

func (p *memPersister) Save(ctx context.Context, data *types.AppData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves++
	if p.err != nil {
		return p.err
	}
	p.saved = data.Clone()
	return nil
}

func newTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	s, err := Open(context.Background(), p, WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	return s, p
}

func mustAddCase(t *testing.T, s *Store, in types.CaseInput) types.Case {
	t.Helper()
	c, err := s.AddCase(context.Background(), in)
	require.NoError(t, err)
	return c
}

func TestOpenNormalizesLoadedData(t *testing.T) {
	p := &memPersister{loaded: &types.AppData{
		Cases: []types.Case{{ID: 500, Name: "أحمد", AidHistory: []types.Expense{{ID: 900}}}},
	}}
	s, err := Open(context.Background(), p, WithClock(func() time.Time { return time.UnixMilli(100) }))
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.NotNil(t, snap.Donations)
	assert.NotNil(t, snap.Expenses)
	assert.NotNil(t, snap.Volunteers)
	assert.NotNil(t, snap.Affidavits)

	// ids continue past the largest one on file, history copies included
	v, err := s.AddVolunteer(context.Background(), types.VolunteerInput{Name: "سعاد"})
	require.NoError(t, err)
	assert.Equal(t, int64(901), v.ID)
}

func TestOpenWithoutPersister(t *testing.T) {
	s, err := Open(context.Background(), nil)
	require.NoError(t, err)

	_, err = s.AddVolunteer(context.Background(), types.VolunteerInput{Name: "سعاد"})
	require.NoError(t, err)
	assert.Len(t, s.ListVolunteers(""), 1)
}

func TestIDsAreUniqueAndIncreasing(t *testing.T) {
	s, _ := newTestStore(t)

	var last int64
	for i := 0; i < 5; i++ {
		c := mustAddCase(t, s, types.CaseInput{Name: "حالة"})
		assert.Greater(t, c.ID, last)
		last = c.ID
	}
	assert.Equal(t, testNow.UnixMilli()+4, last)
}

func TestEveryMutationSavesWholeAggregate(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()

	c := mustAddCase(t, s, types.CaseInput{Name: "أحمد"})
	_, err := s.RecordDonation(ctx, types.DonationInput{Donor: "محسن", Amount: dec("100")})
	require.NoError(t, err)
	_, err = s.RecordDisbursement(ctx, types.DisbursementInput{Beneficiary: "أحمد", Amount: "50"})
	require.NoError(t, err)

	assert.Equal(t, 3, p.saves)
	require.NotNil(t, p.saved)
	assert.Len(t, p.saved.Cases, 1)
	assert.Len(t, p.saved.Donations, 1)
	assert.Len(t, p.saved.Expenses, 1)
	assert.Len(t, p.saved.Cases[0].AidHistory, 1)
	assert.Equal(t, c.ID, p.saved.Cases[0].ID)
}

func TestFailedSaveKeepsChangeInMemory(t *testing.T) {
	s, p := newTestStore(t)
	p.err = errors.New("disk full")

	c, err := s.AddCase(context.Background(), types.CaseInput{Name: "أحمد"})
	require.Error(t, err)

	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "add_case", saveErr.Op)
	assert.ErrorIs(t, err, p.err)

	got, err := s.Case(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "أحمد", got.Name)
}

func TestValidationFailureWritesNothing(t *testing.T) {
	s, p := newTestStore(t)

	_, err := s.AddCase(context.Background(), types.CaseInput{Name: "   "})
	require.ErrorIs(t, err, types.ErrValidation)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Fields)

	assert.Equal(t, 0, p.saves)
	assert.Empty(t, s.ListCases(CaseFilter{}))
}

func TestReplace(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()

	err := s.Replace(ctx, &types.AppData{
		Volunteers: []types.Volunteer{{ID: testNow.UnixMilli() + 50, Name: "سعاد"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.saves)
	assert.NotNil(t, p.saved.Cases)

	v, err := s.AddVolunteer(ctx, types.VolunteerInput{Name: "منى"})
	require.NoError(t, err)
	assert.Equal(t, testNow.UnixMilli()+51, v.ID)

	require.ErrorIs(t, s.Replace(ctx, nil), types.ErrValidation)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestStore(t)
	mustAddCase(t, s, types.CaseInput{Name: "أحمد", Types: []string{"الصدقات"}})

	snap := s.Snapshot()
	snap.Cases[0].Name = "تغيير"
	snap.Cases[0].Type[0] = "تغيير"

	got := s.ListCases(CaseFilter{})
	require.Len(t, got, 1)
	assert.Equal(t, "أحمد", got[0].Name)
	assert.Equal(t, types.Tags{"الصدقات"}, got[0].Type)
}

func TestConcurrentMutations(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RecordDonation(ctx, types.DonationInput{Donor: "محسن", Amount: dec("10")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	donations := s.ListDonations("")
	assert.Len(t, donations, 20)
	assert.Equal(t, 20, p.saves)
	assert.Equal(t, "200", s.TotalDonations().String())

	seen := map[int64]bool{}
	for _, d := range donations {
		assert.False(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true
	}
}
