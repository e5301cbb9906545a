package records

import (
	"context"
	"fmt"

	"alkhair/internal/normalize"
	"alkhair/pkg/types"

	"github.com/sirupsen/logrus"
)

// DisbursementResult reports where an aid row landed. CaseID is zero when
// no case matched; Candidates counts every case that could have matched,
// the first of which was used.
type DisbursementResult struct {
	Expense    types.Expense `json:"expense"`
	CaseID     int64         `json:"caseId,omitempty"`
	Candidates int           `json:"candidates"`
}

// RecordDisbursement writes or edits an aid payment and copies it into the
// matching case's history. The case's last amount and source are
// overwritten with this payment's values.
func (s *Store) RecordDisbursement(ctx context.Context, in types.DisbursementInput) (DisbursementResult, error) {
	trim(
		&in.Date, &in.Beneficiary, &in.NationalID, &in.Amount,
		&in.Category, &in.Month, &in.Responsible, &in.Signature,
	)
	if err := validateInput(in); err != nil {
		return DisbursementResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		e  *types.Expense
		op = "record_disbursement"
	)
	if in.ID != 0 {
		i := s.expenseIndex(in.ID)
		if i < 0 {
			return DisbursementResult{}, fmt.Errorf("expense %d: %w", in.ID, types.ErrExpenseNotFound)
		}
		e = &s.data.Expenses[i]
		op = "update_disbursement"
	} else {
		s.data.Expenses = append(s.data.Expenses, types.Expense{ID: s.nextID(), Date: s.today()})
		e = &s.data.Expenses[len(s.data.Expenses)-1]
	}

	if in.Date != "" {
		e.Date = in.Date
	}
	e.Beneficiary = in.Beneficiary
	e.NationalID = in.NationalID
	e.Amount = in.Amount
	e.Category = in.Category
	e.Month = in.Month
	e.Responsible = in.Responsible
	e.Signature = in.Signature

	result := DisbursementResult{Expense: *e}

	i, candidates := s.resolveCase(e.Beneficiary, e.NationalID)
	result.Candidates = candidates
	if i >= 0 {
		c := &s.data.Cases[i]
		upsertHistory(c, *e)
		c.Amount = e.Amount
		c.Source = e.Category
		result.CaseID = c.ID

		s.logger.WithFields(logrus.Fields{
			"expense_id": e.ID,
			"case_id":    c.ID,
			"candidates": candidates,
		}).Debug("aid linked to case")
	}

	return result, s.commit(ctx, op)
}

// DeleteDisbursement removes an aid row from the expense list and from
// every case history holding a copy.
func (s *Store) DeleteDisbursement(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	if i := s.expenseIndex(id); i >= 0 {
		s.data.Expenses = append(s.data.Expenses[:i], s.data.Expenses[i+1:]...)
		found = true
	}

	for i := range s.data.Cases {
		c := &s.data.Cases[i]
		kept := c.AidHistory[:0]
		for _, h := range c.AidHistory {
			if h.ID == id {
				found = true
				continue
			}
			kept = append(kept, h)
		}
		c.AidHistory = kept
	}

	if !found {
		return fmt.Errorf("expense %d: %w", id, types.ErrExpenseNotFound)
	}

	return s.commit(ctx, "delete_disbursement")
}

func (s *Store) Expense(id int64) (types.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.expenseIndex(id)
	if i < 0 {
		return types.Expense{}, fmt.Errorf("expense %d: %w", id, types.ErrExpenseNotFound)
	}
	return s.data.Expenses[i], nil
}

func (s *Store) ListExpenses(query string) []types.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := newQuery(query)
	out := make([]types.Expense, 0)
	for _, e := range s.data.Expenses {
		if q.matchesExpense(e) {
			out = append(out, e)
		}
	}
	return out
}

// resolveCase finds the case an aid row belongs to. A non-empty national
// id is tried first by exact equality, then the normalized name. The first
// case in list order wins; the second return value counts all candidates
// for the rule that matched. Returns -1 when nothing matches.
func (s *Store) resolveCase(name, nationalID string) (int, int) {
	first, count := -1, 0
	if nationalID != "" {
		for i, c := range s.data.Cases {
			if c.NationalID == nationalID {
				if first < 0 {
					first = i
				}
				count++
			}
		}
		if first >= 0 {
			return first, count
		}
	}

	for i, c := range s.data.Cases {
		if normalize.Equal(c.Name, name) {
			if first < 0 {
				first = i
			}
			count++
		}
	}
	return first, count
}

func upsertHistory(c *types.Case, e types.Expense) {
	for i := range c.AidHistory {
		if c.AidHistory[i].ID == e.ID {
			c.AidHistory[i] = e
			return
		}
	}
	c.AidHistory = append(c.AidHistory, e)
}
