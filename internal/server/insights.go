package server

import (
	"net/http"

	"alkhair/internal/records"
)

// handleFindMatches backs the "possible duplicate" hints shown while a
// form is being filled in.
func (s *Service) handleFindMatches(w http.ResponseWriter, r *http.Request) {
	var q matchQuery
	if err := decodeQuery(r, &q); err != nil {
		s.writeError(w, r, err)
		return
	}

	matches := s.store.FindMatches(q.Scope, q.Field, q.Value)
	if matches == nil {
		s.writeJSON(w, http.StatusOK, []any{})
		return
	}

	s.writeJSON(w, http.StatusOK, matches)
}

func (s *Service) handleSearch(w http.ResponseWriter, r *http.Request) {
	var q listQuery
	if err := decodeQuery(r, &q); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.store.Search(q.Q))
}

func (s *Service) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Summary())
}

func (s *Service) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.CategoryBreakdown())
}

func (s *Service) handleReport(w http.ResponseWriter, r *http.Request) {
	var rng records.ReportRange
	if err := decodeQuery(r, &rng); err != nil {
		s.writeError(w, r, err)
		return
	}

	report, err := s.store.Report(rng)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}
