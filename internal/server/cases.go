package server

import (
	"errors"
	"net/http"

	"alkhair/internal/media"
	"alkhair/internal/records"
	"alkhair/pkg/types"
)

func (s *Service) handleListCases(w http.ResponseWriter, r *http.Request) {
	var filter records.CaseFilter
	if err := decodeQuery(r, &filter); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, s.store.ListCases(filter))
}

func (s *Service) handleGetCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	c, err := s.store.Case(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, c)
}

func (s *Service) handleAddCase(w http.ResponseWriter, r *http.Request) {
	var in types.CaseInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := s.store.AddCase(ctx, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, c)
}

func (s *Service) handleUpdateCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in types.CaseInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := s.store.UpdateCase(ctx, id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, c)
}

func (s *Service) handleDeleteCase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	if err := s.store.DeleteCase(ctx, id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleAddMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in types.MemberInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := s.store.AddMember(ctx, id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, c)
}

func (s *Service) handleHideCase(w http.ResponseWriter, r *http.Request) {
	s.toggleCase(w, r, s.store.HideCase)
}

func (s *Service) handleRestoreCase(w http.ResponseWriter, r *http.Request) {
	s.toggleCase(w, r, s.store.RestoreCase)
}

func (s *Service) toggleCase(w http.ResponseWriter, r *http.Request, op caseOp) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := op(ctx, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, c)
}

// handleSetCaseMedia stores a reference the client already has: a URL, a
// data URI or a file name.
func (s *Service) handleSetCaseMedia(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var in mediaRef
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := s.store.SetCaseMedia(ctx, id, mediaKind(r), in.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, c)
}

// handleUploadCaseMedia takes a multipart "file" field, stores it through
// the configured uploader and saves the returned reference on the case.
func (s *Service) handleUploadCaseMedia(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	kind := mediaKind(r)
	if !kind.Valid() {
		s.writeError(w, r, &types.ValidationError{Fields: []string{"kind"}})
		return
	}

	ref, err := s.uploadFile(w, r, id, media.Slot(kind))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := s.store.SetCaseMedia(ctx, id, kind, ref)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, c)
}

func (s *Service) handleClearCaseMedia(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := s.store.ClearCaseMedia(ctx, id, mediaKind(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, c)
}

// handleAddCaseDoc accepts either a multipart upload or a JSON reference.
func (s *Service) handleAddCaseDoc(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var ref string
	if isMultipart(r) {
		ref, err = s.uploadFile(w, r, id, media.SlotDoc)
	} else {
		var in mediaRef
		err = decodeJSON(w, r, &in)
		ref = in.URL
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := s.store.AddCaseDoc(ctx, id, ref)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, c)
}

func (s *Service) handleRemoveCaseDoc(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	index, err := pathID(r, "index")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx, cancel := mutationContext(r)
	defer cancel()

	c, err := s.store.RemoveCaseDoc(ctx, id, int(index))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, c)
}

func (s *Service) uploadFile(w http.ResponseWriter, r *http.Request, caseID int64, slot media.Slot) (string, error) {
	if _, err := s.store.Case(caseID); err != nil {
		return "", err
	}

	limit := int64(s.config.MaxUploadBytes)
	r.Body = http.MaxBytesReader(w, r.Body, limit+(1<<20))
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", media.ErrTooLarge
		}
		return "", &types.ValidationError{Fields: []string{"file"}, Reason: err.Error()}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", &types.ValidationError{Fields: []string{"file"}}
	}
	defer file.Close()

	return s.uploader.Upload(r.Context(), media.Upload{
		CaseID:      caseID,
		Slot:        slot,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
}
