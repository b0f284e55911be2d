package billing

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/validate"
)

// Service validates bill input and persists it through a Repository.
type Service struct {
	bills Repository
}

func NewService(bills Repository) *Service {
	return &Service{bills: bills}
}

// Create validates the input, defaults status to Unpaid, inserts the bill,
// and returns it with the storage-assigned ID and issue date.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Bill, error) {
	if in.PatientID == 0 {
		return nil, validate.Errorf("patient_id is required")
	}
	amount, err := validate.PositiveNumber(in.Amount, "Amount")
	if err != nil {
		return nil, err
	}
	status := Status(in.Status)
	if in.Status == "" {
		status = StatusUnpaid
	}
	if !validStatuses[status] {
		return nil, validate.Errorf("invalid bill status: %s", in.Status)
	}

	b := &Bill{
		PatientID: in.PatientID,
		Amount:    amount,
		Status:    status,
	}
	if in.DateIssued != "" {
		d, err := validate.Date(in.DateIssued)
		if err != nil {
			return nil, fmt.Errorf("date_issued: %w", err)
		}
		b.DateIssued = d
	}
	if in.DueDate != "" {
		d, err := validate.Date(in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("due_date: %w", err)
		}
		b.DueDate = &d
	}
	if in.Description != "" {
		desc := in.Description
		b.Description = &desc
	}
	if err := s.bills.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Get returns the bill or (nil, nil) when the id is unknown.
func (s *Service) Get(ctx context.Context, id int64) (*Bill, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Bill, error) {
	return s.bills.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error) {
	return s.bills.ListByPatient(ctx, patientID)
}

func (s *Service) ListUnpaid(ctx context.Context) ([]*Bill, error) {
	return s.bills.ListUnpaid(ctx)
}

// Update applies a sparse patch. Returns (nil, nil) when the id is unknown.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Bill, error) {
	b, err := s.bills.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}

	if patch.Amount != nil {
		amount, err := validate.PositiveNumber(*patch.Amount, "Amount")
		if err != nil {
			return nil, err
		}
		b.Amount = amount
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			b.DueDate = nil
		} else {
			d, err := validate.Date(*patch.DueDate)
			if err != nil {
				return nil, fmt.Errorf("due_date: %w", err)
			}
			b.DueDate = &d
		}
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			b.Description = nil
		} else {
			desc := *patch.Description
			b.Description = &desc
		}
	}
	if patch.Status != nil {
		status := Status(*patch.Status)
		if !validStatuses[status] {
			return nil, validate.Errorf("invalid bill status: %s", *patch.Status)
		}
		b.Status = status
	}

	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarkPaid sets the bill's status to Paid, bypassing the status validator
// since it writes a fixed literal. Idempotent; returns (nil, nil) when the
// id is unknown.
func (s *Service) MarkPaid(ctx context.Context, id int64) (*Bill, error) {
	b, err := s.bills.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	b.Status = StatusPaid
	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes the bill. Returns false when the id is unknown.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.bills.Delete(ctx, id)
}
