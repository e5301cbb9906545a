package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"alkhair/internal/media"
	"alkhair/internal/records"
	"alkhair/pkg/types"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
	// Applied is set when the change took effect in memory but could not
	// be written to storage.
	Applied bool `json:"applied,omitempty"`

	Party  string `json:"party,omitempty"`
	CaseID int64  `json:"caseId,omitempty"`
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// writeError maps store errors onto status codes.
func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr     *types.ValidationError
		saveErr  *records.SaveError
		conflict *types.AffidavitConflictError
	)

	switch {
	case errors.As(err, &verr):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, types.ErrValidation):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case types.IsNotFound(err):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: conflict.Error(), Party: conflict.Party, CaseID: conflict.CaseID})
	case errors.Is(err, media.ErrTooLarge):
		s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
	case errors.As(err, &saveErr):
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("change kept in memory but not saved")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save office data", Applied: true})
	default:
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return decodeJSONLimit(w, r, dst, maxJSONBody)
}

func decodeJSONLimit(w http.ResponseWriter, r *http.Request, dst any, limit int64) error {
	body := http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return &types.ValidationError{Reason: "invalid JSON body: " + err.Error()}
	}
	return nil
}
