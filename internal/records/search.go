package records

import (
	"strings"

	"alkhair/internal/nationalid"
	"alkhair/internal/normalize"
	"alkhair/pkg/types"
)

// query is a free-text filter. A field matches when its normalized form
// contains the normalized query, or its raw text contains the raw query
// (digits are compared without folding). An empty query matches all.
type query struct {
	raw  string
	norm string
}

func newQuery(text string) query {
	text = strings.TrimSpace(text)
	return query{raw: text, norm: normalize.Normalize(text)}
}

func (q query) empty() bool {
	return q.raw == ""
}

func (q query) matches(fields ...string) bool {
	if q.empty() {
		return true
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(f, q.raw) {
			return true
		}
		if q.norm != "" && strings.Contains(normalize.Normalize(f), q.norm) {
			return true
		}
	}
	return false
}

func (q query) matchesCase(c types.Case) bool {
	return q.matches(c.Name, c.NationalID, c.SpouseName, c.SpouseID)
}

func (q query) matchesDonation(d types.Donation) bool {
	return q.matches(d.Donor, d.Phone, d.Type.String())
}

func (q query) matchesExpense(e types.Expense) bool {
	return q.matches(e.Beneficiary, e.NationalID, e.Category)
}

func (q query) matchesAffidavit(a types.Affidavit) bool {
	return q.matches(a.HusName, a.HusID, a.WifeName, a.WifeID)
}

// Search looks for text in every collection at once, archived cases
// included. When the text reads as a national id the holder's age is
// estimated as well.
func (s *Store) Search(text string) types.SearchResults {
	q := newQuery(text)
	out := types.SearchResults{
		Query:      q.raw,
		Cases:      []types.Case{},
		Donations:  []types.Donation{},
		Expenses:   []types.Expense{},
		Volunteers: []types.Volunteer{},
		Affidavits: []types.Affidavit{},
	}
	if q.empty() {
		return out
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if age, ok := nationalid.Age(normalize.Digits(q.raw), s.now()); ok {
		out.EstimatedAge = &age
	}

	for _, c := range s.data.Cases {
		if q.matches(c.Name, c.NationalID, c.SpouseName, c.SpouseID, c.Phone, c.SpousePhone, c.SearchNumber) {
			out.Cases = append(out.Cases, c.Clone())
		}
	}
	for _, d := range s.data.Donations {
		if q.matchesDonation(d) {
			out.Donations = append(out.Donations, d.Clone())
		}
	}
	for _, e := range s.data.Expenses {
		if q.matchesExpense(e) {
			out.Expenses = append(out.Expenses, e)
		}
	}
	for _, v := range s.data.Volunteers {
		if q.matches(v.Name, v.Phone) {
			out.Volunteers = append(out.Volunteers, v)
		}
	}
	for _, a := range s.data.Affidavits {
		if q.matches(a.HusName, a.HusID, a.HusPhone, a.WifeName, a.WifeID, a.WifePhone) {
			out.Affidavits = append(out.Affidavits, a)
		}
	}
	return out
}
