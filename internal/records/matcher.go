package records

import (
	"strings"

	"alkhair/internal/normalize"
	"alkhair/pkg/types"
)

// person is one side of a record as seen by the duplicate check.
type person struct {
	role                types.MatchRole
	name, id, phone     string
	fallbackDisplayName string
}

func (p person) value(kind types.FieldKind) string {
	switch kind {
	case types.KindName:
		return p.name
	case types.KindNationalID:
		return p.id
	case types.KindPhone:
		return p.phone
	}
	return ""
}

func (p person) displayName() string {
	if p.name != "" {
		return p.name
	}
	return p.fallbackDisplayName
}

// FindMatches warns about possible duplicates while a form is being typed.
// Both sides of a case or affidavit are checked whichever box the value
// came from. Names compare after normalization; ids and phones compare as
// raw text. Donor and beneficiary names are only checked for name boxes.
// Hits are deduplicated by label and display name and capped per scope.
func (s *Store) FindMatches(scope types.MatchScope, field types.MatchField, value string) []types.Match {
	value = strings.TrimSpace(value)
	kind := field.Kind()
	if value == "" || kind == types.KindUnknown {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hit := func(candidate string) bool {
		if candidate == "" {
			return false
		}
		if kind == types.KindName {
			return normalize.Contains(candidate, value)
		}
		return strings.Contains(candidate, value)
	}

	limit := scope.Limit()
	out := make([]types.Match, 0, limit)
	seen := make(map[string]bool)
	add := func(m types.Match) bool {
		key := m.Label + "\x00" + m.DisplayName
		if seen[key] {
			return len(out) < limit
		}
		seen[key] = true
		out = append(out, m)
		return len(out) < limit
	}

	for _, c := range s.data.Cases {
		sides := []person{
			{role: types.RolePrimary, name: c.Name, id: c.NationalID, phone: c.Phone},
			{role: types.RoleSpouse, name: c.SpouseName, id: c.SpouseID, phone: c.SpousePhone, fallbackDisplayName: c.Name},
		}
		for _, p := range sides {
			if !hit(p.value(kind)) {
				continue
			}
			if !add(newMatch(types.SourceCases, p, c.ID, c.Clone())) {
				return out
			}
		}
	}

	if kind == types.KindName {
		for _, d := range s.data.Donations {
			if !hit(d.Donor) {
				continue
			}
			p := person{role: types.RolePrimary, name: d.Donor}
			if !add(newMatch(types.SourceDonations, p, d.ID, d.Clone())) {
				return out
			}
		}
		for _, e := range s.data.Expenses {
			if !hit(e.Beneficiary) {
				continue
			}
			p := person{role: types.RolePrimary, name: e.Beneficiary}
			if !add(newMatch(types.SourceExpenses, p, e.ID, e)) {
				return out
			}
		}
	}

	for _, a := range s.data.Affidavits {
		sides := []person{
			{role: types.RoleHusband, name: a.HusName, id: a.HusID, phone: a.HusPhone, fallbackDisplayName: a.WifeName},
			{role: types.RoleWife, name: a.WifeName, id: a.WifeID, phone: a.WifePhone, fallbackDisplayName: a.HusName},
		}
		for _, p := range sides {
			if !hit(p.value(kind)) {
				continue
			}
			if !add(newMatch(types.SourceAffidavits, p, a.ID, a)) {
				return out
			}
		}
	}

	return out
}

func newMatch(source types.MatchSource, p person, id int64, record any) types.Match {
	return types.Match{
		Source:      source,
		Label:       source.Label(),
		DisplayName: p.displayName(),
		EntityID:    id,
		Role:        p.role,
		Record:      record,
	}
}
