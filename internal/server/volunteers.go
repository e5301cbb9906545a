package server

import (
	"net/http"

	"alkhair/pkg/types"
)

func (s *Service) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := decodeQuery(r, &q); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.store.ListVolunteers(q.Q))
}

func (s *Service) handleAddVolunteer(w http.ResponseWriter, r *http.Request) {
	var in types.VolunteerInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	v, err := s.store.AddVolunteer(ctx, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, v)
}

func (s *Service) handleUpdateVolunteer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in types.VolunteerInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	v, err := s.store.UpdateVolunteer(ctx, id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, v)
}

func (s *Service) handleDeleteVolunteer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := s.store.DeleteVolunteer(ctx, id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
