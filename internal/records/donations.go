package records

import (
	"context"
	"fmt"
	"strings"

	"alkhair/internal/money"
	"alkhair/pkg/types"
)

// RecordDonation stores money received. With no category the row is typed
// as general; with several categories the amount is split into one row per
// category.
func (s *Store) RecordDonation(ctx context.Context, in types.DonationInput) ([]types.Donation, error) {
	trim(&in.Donor, &in.Phone, &in.OtherCategory, &in.Date)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := requirePositive("amount", in.Amount); err != nil {
		return nil, err
	}

	categories := types.NewTags(append(append([]string{}, in.Categories...), in.OtherCategory)...)
	if len(categories) == 0 {
		categories = types.Tags{types.DefaultDonationType}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date := in.Date
	if date == "" {
		date = s.today()
	}

	shares := money.Split(in.Amount, len(categories))
	out := make([]types.Donation, 0, len(categories))
	for i, category := range categories {
		d := types.Donation{
			ID:     s.nextID(),
			Date:   date,
			Donor:  in.Donor,
			Phone:  in.Phone,
			Amount: shares[i],
			Type:   types.Tags{category},
		}
		s.data.Donations = append(s.data.Donations, d)
		out = append(out, d.Clone())
	}

	return out, s.commit(ctx, "record_donation")
}

// SponsorshipResult is the donation row and the aid rows written for one
// sponsorship.
type SponsorshipResult struct {
	Donation types.Donation  `json:"donation"`
	Expenses []types.Expense `json:"expenses"`
}

// RecordSponsorship books one payment earmarked for specific cases. The
// donation keeps the full amount; each case gets an equal share as an aid
// row in the expense list and in its own history. Every case id is
// resolved before anything is written.
func (s *Store) RecordSponsorship(ctx context.Context, in types.SponsorshipInput) (SponsorshipResult, error) {
	trim(&in.Donor, &in.Phone, &in.Date)
	if err := validateInput(in); err != nil {
		return SponsorshipResult{}, err
	}
	if err := requirePositive("amount", in.Amount); err != nil {
		return SponsorshipResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := uniqueIDs(in.CaseIDs)
	indexes := make([]int, 0, len(ids))
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		i := s.caseIndex(id)
		if i < 0 {
			return SponsorshipResult{}, fmt.Errorf("case %d: %w", id, types.ErrCaseNotFound)
		}
		indexes = append(indexes, i)
		names = append(names, s.data.Cases[i].Name)
	}

	now := s.now()
	date := in.Date
	if date == "" {
		date = now.Format(dateLayout)
	}
	month := monthLabel(date, now)

	donation := types.Donation{
		ID:     s.nextID(),
		Date:   date,
		Donor:  in.Donor,
		Phone:  in.Phone,
		Amount: in.Amount,
		Type:   types.ParseTags(types.SponsorshipTypePrefix + strings.Join(names, types.TagSeparator)),
	}
	s.data.Donations = append(s.data.Donations, donation)

	result := SponsorshipResult{Donation: donation.Clone()}
	category := types.SponsorshipCategoryPrefix + in.Donor
	shares := money.Split(in.Amount, len(indexes))
	for n, i := range indexes {
		c := &s.data.Cases[i]
		e := types.Expense{
			ID:          s.nextID(),
			Date:        date,
			Beneficiary: c.Name,
			NationalID:  c.NationalID,
			Amount:      shares[n].String(),
			Category:    category,
			Month:       month,
			Responsible: types.SponsorshipResponsible,
			Signature:   sponsorshipNote(donation.ID),
		}

		s.data.Expenses = append(s.data.Expenses, e)
		c.AidHistory = append(c.AidHistory, e)
		c.Amount = e.Amount
		c.Source = category

		result.Expenses = append(result.Expenses, e)
	}

	return result, s.commit(ctx, "record_sponsorship")
}

// UpdateDonation edits a donation in place. Blank categories keep the
// current type and a blank date keeps the current date.
func (s *Store) UpdateDonation(ctx context.Context, id int64, in types.DonationUpdate) (types.Donation, error) {
	trim(&in.Donor, &in.Phone, &in.Date)
	if err := validateInput(in); err != nil {
		return types.Donation{}, err
	}
	if err := requirePositive("amount", in.Amount); err != nil {
		return types.Donation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.donationIndex(id)
	if i < 0 {
		return types.Donation{}, fmt.Errorf("donation %d: %w", id, types.ErrDonationNotFound)
	}

	d := &s.data.Donations[i]
	d.Donor = in.Donor
	d.Phone = in.Phone
	d.Amount = in.Amount
	if in.Date != "" {
		d.Date = in.Date
	}
	if tags := types.NewTags(in.Categories...); len(tags) > 0 {
		d.Type = tags
	}

	return d.Clone(), s.commit(ctx, "update_donation")
}

// DeleteDonation removes the donation row only. Aid rows written by a
// sponsorship stay where they are.
func (s *Store) DeleteDonation(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.donationIndex(id)
	if i < 0 {
		return fmt.Errorf("donation %d: %w", id, types.ErrDonationNotFound)
	}

	s.data.Donations = append(s.data.Donations[:i], s.data.Donations[i+1:]...)

	return s.commit(ctx, "delete_donation")
}

func (s *Store) Donation(id int64) (types.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.donationIndex(id)
	if i < 0 {
		return types.Donation{}, fmt.Errorf("donation %d: %w", id, types.ErrDonationNotFound)
	}
	return s.data.Donations[i].Clone(), nil
}

func (s *Store) ListDonations(query string) []types.Donation {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := newQuery(query)
	out := make([]types.Donation, 0)
	for _, d := range s.data.Donations {
		if q.matchesDonation(d) {
			out = append(out, d.Clone())
		}
	}
	return out
}

func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func sponsorshipNote(donationID int64) string {
	return fmt.Sprintf("تسجيل تلقائي من الكفالة رقم %d", donationID)
}
