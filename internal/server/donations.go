package server

import (
	"net/http"

	"alkhair/pkg/types"
)

func (s *Service) handleListDonations(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := decodeQuery(r, &q); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.store.ListDonations(q.Q))
}

func (s *Service) handleGetDonation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	d, err := s.store.Donation(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, d)
}

// handleRecordDonation answers with every row written, one per category.
func (s *Service) handleRecordDonation(w http.ResponseWriter, r *http.Request) {
	var in types.DonationInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	rows, err := s.store.RecordDonation(ctx, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, rows)
}

func (s *Service) handleRecordSponsorship(w http.ResponseWriter, r *http.Request) {
	var in types.SponsorshipInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	res, err := s.store.RecordSponsorship(ctx, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, res)
}

func (s *Service) handleUpdateDonation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in types.DonationUpdate
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	d, err := s.store.UpdateDonation(ctx, id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, d)
}

func (s *Service) handleDeleteDonation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := s.store.DeleteDonation(ctx, id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
