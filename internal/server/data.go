package server

import (
	"net/http"

	"alkhair/pkg/types"
)

const maxImportBody = 64 << 20

// handleExport returns the whole office file in the same shape it is
// stored, so it can be imported again elsewhere.
func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="alkhair_data.json"`)
	s.writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// handleImport replaces everything with the uploaded file.
func (s *Service) handleImport(w http.ResponseWriter, r *http.Request) {
	data := types.NewAppData()
	if err := decodeJSONLimit(w, r, data, maxImportBody); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := s.store.Replace(ctx, data); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.store.Summary())
}
