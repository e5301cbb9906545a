package records

import (
	"context"
	"fmt"

	"alkhair/pkg/types"
)

func (s *Store) AddCase(ctx context.Context, in types.CaseInput) (types.Case, error) {
	trimCaseInput(&in)
	if err := validateInput(in); err != nil {
		return types.Case{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := types.Case{ID: s.nextID()}
	applyCaseInput(&c, in)
	if c.Status == "" {
		c.Status = types.DefaultCaseStatus
	}
	if c.Date == "" {
		c.Date = s.today()
	}

	s.data.Cases = append(s.data.Cases, c)

	return c.Clone(), s.commit(ctx, "add_case")
}

// UpdateCase rewrites the editable fields of a case. Members, aid history,
// media and the archive flag are left alone.
func (s *Store) UpdateCase(ctx context.Context, id int64, in types.CaseInput) (types.Case, error) {
	trimCaseInput(&in)
	if err := validateInput(in); err != nil {
		return types.Case{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.caseIndex(id)
	if i < 0 {
		return types.Case{}, fmt.Errorf("case %d: %w", id, types.ErrCaseNotFound)
	}

	c := &s.data.Cases[i]
	status, date := c.Status, c.Date
	applyCaseInput(c, in)
	if c.Status == "" {
		c.Status = status
	}
	if c.Date == "" {
		c.Date = date
	}

	return c.Clone(), s.commit(ctx, "update_case")
}

// DeleteCase removes a case permanently.
func (s *Store) DeleteCase(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.caseIndex(id)
	if i < 0 {
		return fmt.Errorf("case %d: %w", id, types.ErrCaseNotFound)
	}

	s.data.Cases = append(s.data.Cases[:i], s.data.Cases[i+1:]...)

	return s.commit(ctx, "delete_case")
}

func (s *Store) Case(id int64) (types.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.caseIndex(id)
	if i < 0 {
		return types.Case{}, fmt.Errorf("case %d: %w", id, types.ErrCaseNotFound)
	}
	return s.data.Cases[i].Clone(), nil
}

// CaseFilter selects either the active list or the archive, optionally
// narrowed by free text.
type CaseFilter struct {
	Query  string `form:"q"`
	Hidden bool   `form:"hidden"`
}

func (s *Store) ListCases(filter CaseFilter) []types.Case {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := newQuery(filter.Query)
	out := make([]types.Case, 0)
	for _, c := range s.data.Cases {
		if c.Hidden != filter.Hidden {
			continue
		}
		if !q.matchesCase(c) {
			continue
		}
		out = append(out, c.Clone())
	}
	return out
}

func (s *Store) AddMember(ctx context.Context, caseID int64, in types.MemberInput) (types.Case, error) {
	trim(&in.Name, &in.IDNo, &in.Relation, &in.Age, &in.Job)
	if err := validateInput(in); err != nil {
		return types.Case{}, err
	}

	return s.mutateCase(ctx, caseID, "add_member", func(c *types.Case) error {
		c.Members = append(c.Members, types.FamilyMember{
			Name:     in.Name,
			IDNo:     in.IDNo,
			Relation: in.Relation,
			Age:      in.Age,
			Job:      in.Job,
		})
		return nil
	})
}

// HideCase moves a case to the archive. Archived cases still count in
// lookups and reports.
func (s *Store) HideCase(ctx context.Context, id int64) (types.Case, error) {
	return s.mutateCase(ctx, id, "hide_case", func(c *types.Case) error {
		c.Hidden = true
		return nil
	})
}

func (s *Store) RestoreCase(ctx context.Context, id int64) (types.Case, error) {
	return s.mutateCase(ctx, id, "restore_case", func(c *types.Case) error {
		c.Hidden = false
		return nil
	})
}

// SetCaseMedia stores a photo or ID card reference: a data URI, an upload
// URL or a file name typed by hand. The value is not checked.
func (s *Store) SetCaseMedia(ctx context.Context, id int64, kind types.MediaKind, ref string) (types.Case, error) {
	if !kind.Valid() {
		return types.Case{}, &types.ValidationError{Fields: []string{"kind"}}
	}
	if ref == "" {
		return types.Case{}, &types.ValidationError{Fields: []string{"url"}}
	}

	return s.mutateCase(ctx, id, "set_case_media", func(c *types.Case) error {
		switch kind {
		case types.MediaPhoto:
			c.PhotoURL = ref
		case types.MediaIDCard:
			c.IDCardURL = ref
		}
		return nil
	})
}

func (s *Store) ClearCaseMedia(ctx context.Context, id int64, kind types.MediaKind) (types.Case, error) {
	if !kind.Valid() {
		return types.Case{}, &types.ValidationError{Fields: []string{"kind"}}
	}

	return s.mutateCase(ctx, id, "clear_case_media", func(c *types.Case) error {
		switch kind {
		case types.MediaPhoto:
			c.PhotoURL = ""
		case types.MediaIDCard:
			c.IDCardURL = ""
		}
		return nil
	})
}

func (s *Store) AddCaseDoc(ctx context.Context, id int64, ref string) (types.Case, error) {
	if ref == "" {
		return types.Case{}, &types.ValidationError{Fields: []string{"url"}}
	}

	return s.mutateCase(ctx, id, "add_case_doc", func(c *types.Case) error {
		c.Docs = append(c.Docs, ref)
		return nil
	})
}

func (s *Store) RemoveCaseDoc(ctx context.Context, id int64, index int) (types.Case, error) {
	return s.mutateCase(ctx, id, "remove_case_doc", func(c *types.Case) error {
		if index < 0 || index >= len(c.Docs) {
			return fmt.Errorf("case %d doc %d: %w", id, index, types.ErrDocNotFound)
		}
		c.Docs = append(c.Docs[:index], c.Docs[index+1:]...)
		return nil
	})
}

// mutateCase applies fn to the case and saves. Nothing is saved when fn
// fails.
func (s *Store) mutateCase(ctx context.Context, id int64, op string, fn func(c *types.Case) error) (types.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.caseIndex(id)
	if i < 0 {
		return types.Case{}, fmt.Errorf("case %d: %w", id, types.ErrCaseNotFound)
	}

	c := &s.data.Cases[i]
	if err := fn(c); err != nil {
		return types.Case{}, err
	}

	return c.Clone(), s.commit(ctx, op)
}

func trimCaseInput(in *types.CaseInput) {
	trim(
		&in.SearchNumber, &in.Center,
		&in.Name, &in.NationalID, &in.Job, &in.Phone, &in.Address, &in.Note,
		&in.SpouseName, &in.SpouseID, &in.SpousePhone,
		&in.FamilyMembers, &in.OtherType, &in.Source, &in.SocialStatus,
		&in.Status, &in.Date, &in.Amount,
	)
}

func applyCaseInput(c *types.Case, in types.CaseInput) {
	c.SearchNumber = in.SearchNumber
	c.Center = in.Center
	c.Name = in.Name
	c.NationalID = in.NationalID
	c.Job = in.Job
	c.Phone = in.Phone
	c.Address = in.Address
	c.Note = in.Note
	c.SpouseName = in.SpouseName
	c.SpouseID = in.SpouseID
	c.SpousePhone = in.SpousePhone
	c.FamilyMembers = in.FamilyMembers
	c.Type = types.DeriveCaseType(in.Types, in.OtherType)
	c.Source = in.Source
	c.SocialStatus = in.SocialStatus
	c.Status = in.Status
	c.Date = in.Date
	c.Amount = in.Amount
}
