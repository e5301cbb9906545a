package records

import (
	"context"
	"fmt"

	"alkhair/pkg/types"
)

func (s *Store) AddVolunteer(ctx context.Context, in types.VolunteerInput) (types.Volunteer, error) {
	trim(&in.Name, &in.Phone, &in.Address, &in.Note)
	if err := validateInput(in); err != nil {
		return types.Volunteer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := types.Volunteer{
		ID:      s.nextID(),
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Note:    in.Note,
	}
	s.data.Volunteers = append(s.data.Volunteers, v)

	return v, s.commit(ctx, "add_volunteer")
}

func (s *Store) UpdateVolunteer(ctx context.Context, id int64, in types.VolunteerInput) (types.Volunteer, error) {
	trim(&in.Name, &in.Phone, &in.Address, &in.Note)
	if err := validateInput(in); err != nil {
		return types.Volunteer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.volunteerIndex(id)
	if i < 0 {
		return types.Volunteer{}, fmt.Errorf("volunteer %d: %w", id, types.ErrVolunteerNotFound)
	}

	v := &s.data.Volunteers[i]
	v.Name = in.Name
	v.Phone = in.Phone
	v.Address = in.Address
	v.Note = in.Note

	return *v, s.commit(ctx, "update_volunteer")
}

func (s *Store) DeleteVolunteer(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.volunteerIndex(id)
	if i < 0 {
		return fmt.Errorf("volunteer %d: %w", id, types.ErrVolunteerNotFound)
	}

	s.data.Volunteers = append(s.data.Volunteers[:i], s.data.Volunteers[i+1:]...)

	return s.commit(ctx, "delete_volunteer")
}

func (s *Store) ListVolunteers(query string) []types.Volunteer {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := newQuery(query)
	out := make([]types.Volunteer, 0)
	for _, v := range s.data.Volunteers {
		if q.matches(v.Name, v.Phone, v.Address, v.Note) {
			out = append(out, v)
		}
	}
	return out
}
