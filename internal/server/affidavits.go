package server

import (
	"net/http"

	"alkhair/pkg/types"
)

func (s *Service) handleListAffidavits(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := decodeQuery(r, &q); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.store.ListAffidavits(q.Q))
}

// handleAddAffidavit answers 409 when either party is already a case.
func (s *Service) handleAddAffidavit(w http.ResponseWriter, r *http.Request) {
	var in types.AffidavitInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	a, err := s.store.AddAffidavit(ctx, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, a)
}

func (s *Service) handleDeleteAffidavit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := s.store.DeleteAffidavit(ctx, id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
