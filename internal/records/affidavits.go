package records

import (
	"context"
	"fmt"

	"alkhair/pkg/types"
)

// AddAffidavit records a no-other-aid declaration. It is refused when the
// husband or wife is already on file as a case, by exact name or national
// id, as either the primary or the spouse.
func (s *Store) AddAffidavit(ctx context.Context, in types.AffidavitInput) (types.Affidavit, error) {
	trim(&in.Date, &in.HusName, &in.HusID, &in.HusPhone, &in.WifeName, &in.WifeID, &in.WifePhone)
	if err := validateInput(in); err != nil {
		return types.Affidavit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parties := []struct {
		label, name, id string
	}{
		{"husband", in.HusName, in.HusID},
		{"wife", in.WifeName, in.WifeID},
	}
	for _, p := range parties {
		if c, ok := s.registeredCase(p.name, p.id); ok {
			return types.Affidavit{}, &types.AffidavitConflictError{
				Party:    p.label,
				CaseID:   c.ID,
				CaseName: c.Name,
			}
		}
	}

	a := types.Affidavit{
		ID:        s.nextID(),
		Date:      in.Date,
		HusName:   in.HusName,
		HusID:     in.HusID,
		HusPhone:  in.HusPhone,
		WifeName:  in.WifeName,
		WifeID:    in.WifeID,
		WifePhone: in.WifePhone,
	}
	if a.Date == "" {
		a.Date = s.today()
	}
	s.data.Affidavits = append(s.data.Affidavits, a)

	return a, s.commit(ctx, "add_affidavit")
}

func (s *Store) DeleteAffidavit(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.affidavitIndex(id)
	if i < 0 {
		return fmt.Errorf("affidavit %d: %w", id, types.ErrAffidavitNotFound)
	}

	s.data.Affidavits = append(s.data.Affidavits[:i], s.data.Affidavits[i+1:]...)

	return s.commit(ctx, "delete_affidavit")
}

func (s *Store) ListAffidavits(query string) []types.Affidavit {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := newQuery(query)
	out := make([]types.Affidavit, 0)
	for _, a := range s.data.Affidavits {
		if q.matchesAffidavit(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) registeredCase(name, nationalID string) (types.Case, bool) {
	for _, c := range s.data.Cases {
		if name != "" && (c.Name == name || c.SpouseName == name) {
			return c, true
		}
		if nationalID != "" && (c.NationalID == nationalID || c.SpouseID == nationalID) {
			return c, true
		}
	}
	return types.Case{}, false
}
