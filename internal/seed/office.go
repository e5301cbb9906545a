// Package seed fills an empty office with demo records so a fresh install
// has something to look at.
package seed

import (
	"context"
	"fmt"

	"alkhair/internal/records"
	"alkhair/pkg/types"

	"github.com/shopspring/decimal"
)

// Result counts what was written.
type Result struct {
	Cases      int
	Donations  int
	Expenses   int
	Volunteers int
	Affidavits int
	Skipped    bool
}

// Demo writes the sample office through the store's own operations, so
// everything it adds is validated and linked exactly like hand-entered data.
// An office that already has cases is left alone.
//
// To reset: delete the data file (or the snapshot rows) and run `alkhair seed`.
func Demo(ctx context.Context, store *records.Store) (Result, error) {
	var res Result
	if store.Summary().CaseCount > 0 {
		res.Skipped = true
		return res, nil
	}

	// compile-time safe - if CaseInput changes, this won't compile
	cases := []types.CaseInput{
		{
			Name:          "أحمد محمود علي",
			NationalID:    "28503151234567",
			Phone:         "01001234567",
			Address:       "شارع المدرسة",
			SpouseName:    "فاطمة حسن",
			SpouseID:      "28807221234561",
			FamilyMembers: "4",
			Types:         []string{"الصدقات", "مستفيدي كرتونة"},
			SocialStatus:  "متزوج",
			Status:        "مقبولة",
			Amount:        "300",
		},
		{
			Name:         "أم محمد السيد",
			NationalID:   "26001011234562",
			Phone:        "01117654321",
			Types:        []string{"زكاة مال"},
			OtherType:    "أيتام",
			SocialStatus: "أرملة",
			Amount:       "500",
		},
		{
			Name:         "سعيد إبراهيم",
			NationalID:   "29510101234565",
			Job:          "عامل يومية",
			Types:        []string{"لحوم صكوك"},
			SocialStatus: "أعزب",
		},
	}

	ids := make([]int64, 0, len(cases))
	for _, in := range cases {
		c, err := store.AddCase(ctx, in)
		if err != nil {
			return res, fmt.Errorf("failed to seed case %s: %w", in.Name, err)
		}
		ids = append(ids, c.ID)
		res.Cases++
	}

	if _, err := store.AddMember(ctx, ids[0], types.MemberInput{Name: "محمد أحمد", Relation: "ابن", Age: "12"}); err != nil {
		return res, fmt.Errorf("failed to seed family member: %w", err)
	}

	donations := []types.DonationInput{
		{Donor: "فاعل خير", Amount: decimal.NewFromInt(1000), Categories: []string{"الصدقات"}},
		{Donor: "الحاج مصطفى", Phone: "01229876543", Amount: decimal.NewFromInt(1500), Categories: []string{"زكاة مال", "لحوم صكوك"}},
	}
	for _, in := range donations {
		rows, err := store.RecordDonation(ctx, in)
		if err != nil {
			return res, fmt.Errorf("failed to seed donation from %s: %w", in.Donor, err)
		}
		res.Donations += len(rows)
	}

	sponsorship, err := store.RecordSponsorship(ctx, types.SponsorshipInput{
		Donor:   "الحاج مصطفى",
		Amount:  decimal.NewFromInt(600),
		CaseIDs: ids[:2],
	})
	if err != nil {
		return res, fmt.Errorf("failed to seed sponsorship: %w", err)
	}
	res.Donations++
	res.Expenses += len(sponsorship.Expenses)

	disbursements := []types.DisbursementInput{
		{Beneficiary: "سعيد ابراهيم", Amount: "2 كرتونة", Category: "مستفيدي كرتونة", Responsible: "لجنة التوزيع"},
		{Beneficiary: "أحمد محمود علي", NationalID: "28503151234567", Amount: "300", Category: "الصدقات"},
	}
	for _, in := range disbursements {
		if _, err := store.RecordDisbursement(ctx, in); err != nil {
			return res, fmt.Errorf("failed to seed aid for %s: %w", in.Beneficiary, err)
		}
		res.Expenses++
	}

	if _, err := store.AddVolunteer(ctx, types.VolunteerInput{Name: "منى عبد الله", Phone: "01098765432", Note: "توزيع يوم الجمعة"}); err != nil {
		return res, fmt.Errorf("failed to seed volunteer: %w", err)
	}
	res.Volunteers++

	if _, err := store.AddAffidavit(ctx, types.AffidavitInput{HusName: "خالد يوسف", HusID: "29002021234563", WifeName: "هدى سامي"}); err != nil {
		return res, fmt.Errorf("failed to seed affidavit: %w", err)
	}
	res.Affidavits++

	return res, nil
}
