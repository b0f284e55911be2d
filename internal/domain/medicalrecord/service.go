package medicalrecord

import (
	"context"
	"fmt"
	"time"

	"github.com/hms/hms/internal/validate"
)

// Service validates medical record input and persists it through a
// Repository. It owns the duration-of-stay derivation.
type Service struct {
	records Repository
}

func NewService(records Repository) *Service {
	return &Service{records: records}
}

// Create validates the input, derives duration of stay when both dates are
// given, inserts the record, and returns it with the storage-assigned ID.
func (s *Service) Create(ctx context.Context, in CreateInput) (*MedicalRecord, error) {
	if in.PatientID == 0 {
		return nil, validate.Errorf("patient_id is required")
	}
	if in.StaffID == 0 {
		return nil, validate.Errorf("staff_id is required")
	}
	if in.Diagnosis == "" {
		return nil, validate.Errorf("diagnosis is required")
	}

	rec := &MedicalRecord{
		PatientID: in.PatientID,
		StaffID:   in.StaffID,
		Diagnosis: in.Diagnosis,
	}
	if in.AdmissionDate != "" {
		d, err := validate.Date(in.AdmissionDate)
		if err != nil {
			return nil, fmt.Errorf("admission_date: %w", err)
		}
		rec.AdmissionDate = &d
	}
	if in.DischargeDate != "" {
		d, err := validate.Date(in.DischargeDate)
		if err != nil {
			return nil, fmt.Errorf("discharge_date: %w", err)
		}
		rec.DischargeDate = &d
	}
	setOptional(&rec.Treatment, in.Treatment)
	setOptional(&rec.Medications, in.Medications)
	setOptional(&rec.Notes, in.Notes)
	deriveDuration(rec)

	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the record or (nil, nil) when the id is unknown.
func (s *Service) Get(ctx context.Context, id int64) (*MedicalRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*MedicalRecord, error) {
	return s.records.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	return s.records.ListByPatient(ctx, patientID)
}

// Update applies a sparse patch and re-derives duration of stay from the
// post-merge state on every call, whether or not a date field was touched.
// The original system behaves this way, so a record whose dates are both set
// keeps its duration across unrelated updates, while a record missing either
// date has its duration wiped even by a notes-only update.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*MedicalRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}

	if patch.Diagnosis != nil {
		if *patch.Diagnosis == "" {
			return nil, validate.Errorf("diagnosis is required")
		}
		rec.Diagnosis = *patch.Diagnosis
	}
	if patch.Treatment != nil {
		setOptional(&rec.Treatment, *patch.Treatment)
	}
	if patch.Medications != nil {
		setOptional(&rec.Medications, *patch.Medications)
	}
	if patch.Notes != nil {
		setOptional(&rec.Notes, *patch.Notes)
	}
	if patch.AdmissionDate != nil {
		if *patch.AdmissionDate == "" {
			rec.AdmissionDate = nil
		} else {
			d, err := validate.Date(*patch.AdmissionDate)
			if err != nil {
				return nil, fmt.Errorf("admission_date: %w", err)
			}
			rec.AdmissionDate = &d
		}
	}
	if patch.DischargeDate != nil {
		if *patch.DischargeDate == "" {
			rec.DischargeDate = nil
		} else {
			d, err := validate.Date(*patch.DischargeDate)
			if err != nil {
				return nil, fmt.Errorf("discharge_date: %w", err)
			}
			rec.DischargeDate = &d
		}
	}
	deriveDuration(rec)

	if err := s.records.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the record. Returns false when the id is unknown.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.records.Delete(ctx, id)
}

// deriveDuration sets duration of stay to the whole-day difference between
// discharge and admission, or clears it unless both dates are set.
func deriveDuration(rec *MedicalRecord) {
	if rec.AdmissionDate != nil && rec.DischargeDate != nil {
		days := int(rec.DischargeDate.Sub(*rec.AdmissionDate) / (24 * time.Hour))
		rec.DurationOfStay = &days
		return
	}
	rec.DurationOfStay = nil
}

func setOptional(dst **string, v string) {
	if v == "" {
		*dst = nil
		return
	}
	s := v
	*dst = &s
}
