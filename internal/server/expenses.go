package server

import (
	"net/http"

	"alkhair/pkg/types"
)

func (s *Service) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := decodeQuery(r, &q); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.store.ListExpenses(q.Q))
}

func (s *Service) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	e, err := s.store.Expense(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, e)
}

func (s *Service) handleRecordDisbursement(w http.ResponseWriter, r *http.Request) {
	var in types.DisbursementInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	// edits go through PUT
	in.ID = 0

	s.recordDisbursement(w, r, in, http.StatusCreated)
}

func (s *Service) handleUpdateDisbursement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in types.DisbursementInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	in.ID = id

	s.recordDisbursement(w, r, in, http.StatusOK)
}

func (s *Service) recordDisbursement(w http.ResponseWriter, r *http.Request, in types.DisbursementInput, status int) {
	ctx, cancel := mutationContext(r)
	defer cancel()

	res, err := s.store.RecordDisbursement(ctx, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, status, res)
}

func (s *Service) handleDeleteDisbursement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := s.store.DeleteDisbursement(ctx, id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
