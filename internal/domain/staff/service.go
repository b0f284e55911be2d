package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/hms/hms/internal/validate"
)

// Service validates staff input and persists it through a Repository.
type Service struct {
	staff Repository
}

func NewService(staff Repository) *Service {
	return &Service{staff: staff}
}

// Create validates every field, inserts the staff member, and returns it
// with the storage-assigned ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Staff, error) {
	first, err := validate.Name(in.FirstName)
	if err != nil {
		return nil, fmt.Errorf("first_name: %w", err)
	}
	last, err := validate.Name(in.LastName)
	if err != nil {
		return nil, fmt.Errorf("last_name: %w", err)
	}
	if in.Role == "" {
		return nil, validate.Errorf("role is required")
	}
	phone, err := validate.Phone(in.ContactNumber)
	if err != nil {
		return nil, fmt.Errorf("contact_number: %w", err)
	}
	email, err := validate.Email(in.Email)
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	var hired *time.Time
	if in.HireDate != "" {
		d, err := validate.Date(in.HireDate)
		if err != nil {
			return nil, fmt.Errorf("hire_date: %w", err)
		}
		hired = &d
	}

	st := &Staff{
		FirstName:     first,
		LastName:      last,
		Role:          in.Role,
		ContactNumber: phone,
		HireDate:      hired,
	}
	if email != "" {
		st.Email = &email
	}
	if in.Department != "" {
		dep := in.Department
		st.Department = &dep
	}
	if err := s.staff.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Get returns the staff member or (nil, nil) when the id is unknown.
func (s *Service) Get(ctx context.Context, id int64) (*Staff, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Staff, error) {
	return s.staff.List(ctx)
}

// Search matches the term as a case-insensitive substring of the first name,
// last name, or role. An empty term matches every staff member.
func (s *Service) Search(ctx context.Context, term string) ([]*Staff, error) {
	return s.staff.Search(ctx, term)
}

// Update applies a sparse patch. Returns (nil, nil) when the id is unknown.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Staff, error) {
	st, err := s.staff.GetByID(ctx, id)
	if err != nil || st == nil {
		return nil, err
	}

	if patch.FirstName != nil {
		v, err := validate.Name(*patch.FirstName)
		if err != nil {
			return nil, fmt.Errorf("first_name: %w", err)
		}
		st.FirstName = v
	}
	if patch.LastName != nil {
		v, err := validate.Name(*patch.LastName)
		if err != nil {
			return nil, fmt.Errorf("last_name: %w", err)
		}
		st.LastName = v
	}
	if patch.Role != nil {
		if *patch.Role == "" {
			return nil, validate.Errorf("role is required")
		}
		st.Role = *patch.Role
	}
	if patch.Department != nil {
		if *patch.Department == "" {
			st.Department = nil
		} else {
			dep := *patch.Department
			st.Department = &dep
		}
	}
	if patch.ContactNumber != nil {
		v, err := validate.Phone(*patch.ContactNumber)
		if err != nil {
			return nil, fmt.Errorf("contact_number: %w", err)
		}
		st.ContactNumber = v
	}
	if patch.Email != nil {
		v, err := validate.Email(*patch.Email)
		if err != nil {
			return nil, fmt.Errorf("email: %w", err)
		}
		if v == "" {
			st.Email = nil
		} else {
			st.Email = &v
		}
	}
	if patch.HireDate != nil {
		if *patch.HireDate == "" {
			st.HireDate = nil
		} else {
			d, err := validate.Date(*patch.HireDate)
			if err != nil {
				return nil, fmt.Errorf("hire_date: %w", err)
			}
			st.HireDate = &d
		}
	}

	if err := s.staff.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Delete removes the staff member; no cascade to appointments or records.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.staff.Delete(ctx, id)
}
