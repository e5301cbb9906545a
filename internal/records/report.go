package records

import (
	"alkhair/internal/money"
	"alkhair/pkg/types"

	"github.com/shopspring/decimal"
)

// ReportRange bounds a printed report. Both ends are inclusive ISO dates.
type ReportRange struct {
	Kind types.ReportKind `form:"kind" json:"kind" validate:"required"`
	From string           `form:"from" json:"from" validate:"required,datetime=2006-01-02"`
	To   string           `form:"to" json:"to" validate:"required,datetime=2006-01-02"`
}

// Report lists the donations or aid rows dated within the range and their
// total. Dates compare as text, which orders ISO dates correctly.
func (s *Store) Report(r ReportRange) (types.Report, error) {
	trim(&r.From, &r.To)
	if err := validateInput(r); err != nil {
		return types.Report{}, err
	}
	if !r.Kind.Valid() {
		return types.Report{}, &types.ValidationError{Fields: []string{"kind"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := types.Report{Kind: r.Kind, From: r.From, To: r.To, Total: decimal.Zero}
	inRange := func(date string) bool {
		return date >= r.From && date <= r.To
	}

	switch r.Kind {
	case types.ReportDonations:
		out.Donations = []types.Donation{}
		for _, d := range s.data.Donations {
			if inRange(d.Date) {
				out.Donations = append(out.Donations, d.Clone())
				out.Total = out.Total.Add(d.Amount)
			}
		}
	case types.ReportAid:
		out.Expenses = []types.Expense{}
		for _, e := range s.data.Expenses {
			if inRange(e.Date) {
				out.Expenses = append(out.Expenses, e)
				out.Total = out.Total.Add(money.Parse(e.Amount))
			}
		}
	}
	return out, nil
}
