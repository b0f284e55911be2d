package appointment

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/validate"
)

// Service validates appointment input and persists it through a Repository.
type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

// Create validates the input, defaults status to Scheduled, inserts the
// appointment, and returns it with the storage-assigned ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Appointment, error) {
	if in.PatientID == 0 {
		return nil, validate.Errorf("patient_id is required")
	}
	if in.StaffID == 0 {
		return nil, validate.Errorf("staff_id is required")
	}
	when, err := validate.DateTime(in.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("appointment_date: %w", err)
	}
	status := Status(in.Status)
	if in.Status == "" {
		status = StatusScheduled
	}
	if !validStatuses[status] {
		return nil, validate.Errorf("invalid appointment status: %s", in.Status)
	}

	a := &Appointment{
		PatientID:       in.PatientID,
		StaffID:         in.StaffID,
		AppointmentDate: when,
		Status:          status,
	}
	if in.Purpose != "" {
		purpose := in.Purpose
		a.Purpose = &purpose
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns the appointment or (nil, nil) when the id is unknown.
func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

func (s *Service) ListByStaff(ctx context.Context, staffID int64) ([]*Appointment, error) {
	return s.appointments.ListByStaff(ctx, staffID)
}

// Update applies a sparse patch. Returns (nil, nil) when the id is unknown.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}

	if patch.PatientID != nil {
		if *patch.PatientID == 0 {
			return nil, validate.Errorf("patient_id is required")
		}
		a.PatientID = *patch.PatientID
	}
	if patch.StaffID != nil {
		if *patch.StaffID == 0 {
			return nil, validate.Errorf("staff_id is required")
		}
		a.StaffID = *patch.StaffID
	}
	if patch.AppointmentDate != nil {
		when, err := validate.DateTime(*patch.AppointmentDate)
		if err != nil {
			return nil, fmt.Errorf("appointment_date: %w", err)
		}
		a.AppointmentDate = when
	}
	if patch.Purpose != nil {
		if *patch.Purpose == "" {
			a.Purpose = nil
		} else {
			purpose := *patch.Purpose
			a.Purpose = &purpose
		}
	}
	if patch.Status != nil {
		status := Status(*patch.Status)
		if !validStatuses[status] {
			return nil, validate.Errorf("invalid appointment status: %s", *patch.Status)
		}
		a.Status = status
	}

	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the appointment. Returns false when the id is unknown.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.appointments.Delete(ctx, id)
}
