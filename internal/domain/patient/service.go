package patient

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/validate"
)

// Service validates patient input and persists it through a Repository.
type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// Create validates every field, inserts the patient, and returns it with the
// storage-assigned ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Patient, error) {
	first, err := validate.Name(in.FirstName)
	if err != nil {
		return nil, fmt.Errorf("first_name: %w", err)
	}
	last, err := validate.Name(in.LastName)
	if err != nil {
		return nil, fmt.Errorf("last_name: %w", err)
	}
	dob, err := validate.Date(in.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("date_of_birth: %w", err)
	}
	gender, err := validate.Gender(in.Gender)
	if err != nil {
		return nil, fmt.Errorf("gender: %w", err)
	}
	phone, err := validate.Phone(in.ContactNumber)
	if err != nil {
		return nil, fmt.Errorf("contact_number: %w", err)
	}
	email, err := validate.Email(in.Email)
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}

	p := &Patient{
		FirstName:     first,
		LastName:      last,
		DateOfBirth:   dob,
		Gender:        Gender(gender),
		ContactNumber: phone,
	}
	if email != "" {
		p.Email = &email
	}
	if in.Address != "" {
		addr := in.Address
		p.Address = &addr
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the patient or (nil, nil) when the id is unknown.
func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

// Search matches the term as a case-insensitive substring of the first or
// last name. An empty term matches every patient.
func (s *Service) Search(ctx context.Context, term string) ([]*Patient, error) {
	return s.patients.Search(ctx, term)
}

// Update applies a sparse patch. Returns (nil, nil) when the id is unknown.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	if patch.FirstName != nil {
		v, err := validate.Name(*patch.FirstName)
		if err != nil {
			return nil, fmt.Errorf("first_name: %w", err)
		}
		p.FirstName = v
	}
	if patch.LastName != nil {
		v, err := validate.Name(*patch.LastName)
		if err != nil {
			return nil, fmt.Errorf("last_name: %w", err)
		}
		p.LastName = v
	}
	if patch.DateOfBirth != nil {
		v, err := validate.Date(*patch.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("date_of_birth: %w", err)
		}
		p.DateOfBirth = v
	}
	if patch.Gender != nil {
		v, err := validate.Gender(*patch.Gender)
		if err != nil {
			return nil, fmt.Errorf("gender: %w", err)
		}
		p.Gender = Gender(v)
	}
	if patch.ContactNumber != nil {
		v, err := validate.Phone(*patch.ContactNumber)
		if err != nil {
			return nil, fmt.Errorf("contact_number: %w", err)
		}
		p.ContactNumber = v
	}
	if patch.Email != nil {
		v, err := validate.Email(*patch.Email)
		if err != nil {
			return nil, fmt.Errorf("email: %w", err)
		}
		if v == "" {
			p.Email = nil
		} else {
			p.Email = &v
		}
	}
	if patch.Address != nil {
		if *patch.Address == "" {
			p.Address = nil
		} else {
			addr := *patch.Address
			p.Address = &addr
		}
	}

	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the patient. Dependent appointments, records, and bills are
// never cascaded; the database rejects the delete if any still reference it.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.patients.Delete(ctx, id)
}
