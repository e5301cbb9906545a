package records

import (
	"context"
	"fmt"
	"testing"

	"alkhair/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesEmptyInput(t *testing.T) {
	s, _ := newTestStore(t)
	mustAddCase(t, s, types.CaseInput{Name: "أحمد"})

	assert.Empty(t, s.FindMatches(types.ScopeCase, types.FieldName, ""))
	assert.Empty(t, s.FindMatches(types.ScopeCase, types.FieldName, "   "))
	assert.Empty(t, s.FindMatches(types.ScopeCase, types.MatchField("address"), "أحمد"))
}

func TestFindMatchesNormalizesNames(t *testing.T) {
	s, _ := newTestStore(t)
	c := mustAddCase(t, s, types.CaseInput{Name: "محمود سعيد", SpouseName: "فاطمة أحمد"})

	got := s.FindMatches(types.ScopeCase, types.FieldName, "فاطمه احمد")
	require.Len(t, got, 1)
	assert.Equal(t, types.SourceCases, got[0].Source)
	assert.Equal(t, "حالة مسجلة", got[0].Label)
	assert.Equal(t, "فاطمة أحمد", got[0].DisplayName)
	assert.Equal(t, types.RoleSpouse, got[0].Role)
	assert.Equal(t, c.ID, got[0].EntityID)

	record, ok := got[0].Record.(types.Case)
	require.True(t, ok)
	assert.Equal(t, "محمود سعيد", record.Name)

	// the spouse box checks the primary side too
	got = s.FindMatches(types.ScopeCase, types.FieldSpouseName, "محمود")
	require.Len(t, got, 1)
	assert.Equal(t, types.RolePrimary, got[0].Role)
}

func TestFindMatchesIDsUseRawSubstring(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	mustAddCase(t, s, types.CaseInput{Name: "أحمد", NationalID: "29001011234567"})
	_, err := s.RecordDisbursement(ctx, types.DisbursementInput{Beneficiary: "غريب", NationalID: "29001011234567", Amount: "1"})
	require.NoError(t, err)

	got := s.FindMatches(types.ScopeCase, types.FieldSpouseID, "0101123")
	require.Len(t, got, 1)
	assert.Equal(t, types.SourceCases, got[0].Source)
	assert.Equal(t, "أحمد", got[0].DisplayName)

	assert.Empty(t, s.FindMatches(types.ScopeCase, types.FieldNationalID, "٢٩٠٠"))
}

func TestFindMatchesDonorsAndBeneficiariesOnlyForNames(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	_, err := s.RecordDonation(ctx, types.DonationInput{Donor: "سامي", Phone: "0100555", Amount: dec("5")})
	require.NoError(t, err)

	assert.Len(t, s.FindMatches(types.ScopeGlobal, types.FieldName, "سامي"), 1)
	assert.Empty(t, s.FindMatches(types.ScopeGlobal, types.FieldPhone, "0100555"))
}

func TestFindMatchesScanOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddAffidavit(ctx, types.AffidavitInput{HusName: "خالد يوسف", WifeName: "منى"})
	require.NoError(t, err)
	_, err = s.RecordDisbursement(ctx, types.DisbursementInput{Beneficiary: "خالد حسن", Amount: "1"})
	require.NoError(t, err)
	_, err = s.RecordDonation(ctx, types.DonationInput{Donor: "خالد عمر", Amount: dec("1")})
	require.NoError(t, err)
	mustAddCase(t, s, types.CaseInput{Name: "خالد محمد"})

	got := s.FindMatches(types.ScopeGlobal, types.FieldName, "خالد")
	require.Len(t, got, 4)
	assert.Equal(t, types.SourceCases, got[0].Source)
	assert.Equal(t, types.SourceDonations, got[1].Source)
	assert.Equal(t, "متبرع", got[1].Label)
	assert.Equal(t, types.SourceExpenses, got[2].Source)
	assert.Equal(t, "مستفيد مساعدات", got[2].Label)
	assert.Equal(t, types.SourceAffidavits, got[3].Source)
	assert.Equal(t, "إقرار سابق", got[3].Label)
	assert.Equal(t, types.RoleHusband, got[3].Role)
}

func TestFindMatchesDeduplicatesRepeatedBeneficiary(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := s.RecordDisbursement(ctx, types.DisbursementInput{Beneficiary: "أم محمد", Amount: "10"})
		require.NoError(t, err)
	}

	got := s.FindMatches(types.ScopeCase, types.FieldName, "ام محمد")
	require.Len(t, got, 1)
	assert.Equal(t, types.SourceExpenses, got[0].Source)
}

func TestFindMatchesCapsByScope(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 20; i++ {
		mustAddCase(t, s, types.CaseInput{Name: fmt.Sprintf("سعيد %d", i)})
	}

	assert.Len(t, s.FindMatches(types.ScopeAffidavit, types.FieldName, "سعيد"), 5)
	assert.Len(t, s.FindMatches(types.ScopeCase, types.FieldName, "سعيد"), 10)
	assert.Len(t, s.FindMatches(types.ScopeGlobal, types.FieldName, "سعيد"), 15)

	got := s.FindMatches(types.ScopeCase, types.FieldName, "سعيد")
	assert.Equal(t, "سعيد 0", got[0].DisplayName)
	assert.Equal(t, "سعيد 9", got[9].DisplayName)
}

func TestFindMatchesIsReadOnly(t *testing.T) {
	s, p := newTestStore(t)
	mustAddCase(t, s, types.CaseInput{Name: "أحمد"})
	before := p.saves

	got := s.FindMatches(types.ScopeCase, types.FieldName, "احمد")
	require.Len(t, got, 1)
	record := got[0].Record.(types.Case)
	record.Name = "تغيير"

	assert.Equal(t, before, p.saves)
	assert.Len(t, s.ListCases(CaseFilter{Query: "أحمد"}), 1)
}
