package records

import (
	"alkhair/internal/money"
	"alkhair/pkg/types"

	"github.com/shopspring/decimal"
)

// Totals and breakdowns are recomputed from the records on every call.

func (s *Store) TotalDonations() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalDonations()
}

// TotalDisbursed sums aid amounts. Quantities and other text that does not
// start with a number count as zero.
func (s *Store) TotalDisbursed() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalDisbursed()
}

func (s *Store) NetBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalDonations().Sub(s.totalDisbursed())
}

// CategoryBreakdown reports donated, disbursed and balance per category.
// A donation counts toward every category its joined type text contains;
// an aid row counts only toward the category it names exactly.
func (s *Store) CategoryBreakdown() types.Breakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoryBreakdown()
}

// Summary is the dashboard view.
func (s *Store) Summary() types.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	donated, disbursed := s.totalDonations(), s.totalDisbursed()
	out := types.Summary{
		TotalDonations:      donated,
		TotalDisbursed:      disbursed,
		NetBalance:          donated.Sub(disbursed),
		CaseCount:           len(s.data.Cases),
		ScheduledMonthlyAid: decimal.Zero,
		Categories:          s.categoryBreakdown(),
	}
	for _, c := range s.data.Cases {
		if c.Hidden {
			out.HiddenCaseCount++
		}
		out.ScheduledMonthlyAid = out.ScheduledMonthlyAid.Add(money.Parse(c.Amount))
	}
	return out
}

func (s *Store) totalDonations() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.data.Donations {
		total = total.Add(d.Amount)
	}
	return total
}

func (s *Store) totalDisbursed() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.data.Expenses {
		total = total.Add(money.Parse(e.Amount))
	}
	return total
}

func (s *Store) categories() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(values ...string) {
		for _, v := range values {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}

	for _, d := range s.data.Donations {
		add(d.Type...)
	}
	for _, c := range s.data.Cases {
		add(c.Source)
	}
	for _, c := range s.data.Cases {
		add(c.Type...)
	}
	for _, e := range s.data.Expenses {
		add(e.Category)
	}

	if len(out) == 0 {
		out = append(out, types.DefaultCategories...)
	}
	return out
}

func (s *Store) categoryBreakdown() types.Breakdown {
	cats := s.categories()
	out := make(types.Breakdown, 0, len(cats))
	for _, cat := range cats {
		stats := types.CategoryStats{
			Category:  cat,
			Donated:   decimal.Zero,
			Disbursed: decimal.Zero,
		}
		for _, d := range s.data.Donations {
			if d.Type.Mentions(cat) {
				stats.Donated = stats.Donated.Add(d.Amount)
			}
		}
		for _, e := range s.data.Expenses {
			if e.Category == cat {
				stats.Disbursed = stats.Disbursed.Add(money.Parse(e.Amount))
			}
		}
		stats.Balance = stats.Donated.Sub(stats.Disbursed)
		out = append(out, stats)
	}
	return out
}
