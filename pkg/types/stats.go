package types

import "github.com/shopspring/decimal"

// DefaultCategories is shown when no category has been used yet.
var DefaultCategories = []string{"الصدقات", "زكاة مال", "مستفيدي كرتونة", "لحوم صكوك"}

type CategoryStats struct {
	Category  string          `json:"category"`
	Donated   decimal.Decimal `json:"donated"`
	Disbursed decimal.Decimal `json:"disbursed"`
	Balance   decimal.Decimal `json:"balance"`
}

// Breakdown is ordered by the first time each category was seen.
type Breakdown []CategoryStats

func (b Breakdown) Get(category string) (CategoryStats, bool) {
	for _, s := range b {
		if s.Category == category {
			return s, true
		}
	}
	return CategoryStats{}, false
}

type Summary struct {
	TotalDonations      decimal.Decimal `json:"totalDonations"`
	TotalDisbursed      decimal.Decimal `json:"totalDisbursed"`
	NetBalance          decimal.Decimal `json:"netBalance"`
	CaseCount           int             `json:"caseCount"`
	HiddenCaseCount     int             `json:"hiddenCaseCount"`
	ScheduledMonthlyAid decimal.Decimal `json:"scheduledMonthlyAid"`
	Categories          Breakdown       `json:"categories"`
}

type ReportKind string

const (
	ReportDonations ReportKind = "donations"
	ReportAid       ReportKind = "aid"
)

func (k ReportKind) Valid() bool {
	return k == ReportDonations || k == ReportAid
}

// Report lists records dated within [From, To] and their total.
type Report struct {
	Kind      ReportKind      `json:"kind"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Donations []Donation      `json:"donations,omitempty"`
	Expenses  []Expense       `json:"expenses,omitempty"`
	Total     decimal.Decimal `json:"total"`
}
