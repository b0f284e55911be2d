package medicalrecord

import (
	"time"
)

// MedicalRecord maps to the medical_records table. DurationOfStay is derived:
// whole days between admission and discharge, present only when both dates
// are set.
type MedicalRecord struct {
	ID             int64      `db:"id" json:"id"`
	PatientID      int64      `db:"patient_id" json:"patient_id"`
	StaffID        int64      `db:"staff_id" json:"staff_id"`
	Diagnosis      string     `db:"diagnosis" json:"diagnosis"`
	Treatment      *string    `db:"treatment" json:"treatment,omitempty"`
	AdmissionDate  *time.Time `db:"admission_date" json:"admission_date,omitempty"`
	DischargeDate  *time.Time `db:"discharge_date" json:"discharge_date,omitempty"`
	DurationOfStay *int       `db:"duration_of_stay" json:"duration_of_stay,omitempty"`
	Medications    *string    `db:"medications" json:"medications,omitempty"`
	Notes          *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// CreateInput carries the raw field values for a new medical record.
// Only PatientID, StaffID, and Diagnosis are required.
type CreateInput struct {
	PatientID     int64
	StaffID       int64
	Diagnosis     string
	Treatment     string
	AdmissionDate string
	DischargeDate string
	Medications   string
	Notes         string
}

// Patch is a sparse update: nil fields keep their stored value. An empty
// optional field clears the stored value; an empty date unsets it.
type Patch struct {
	Diagnosis     *string
	Treatment     *string
	AdmissionDate *string
	DischargeDate *string
	Medications   *string
	Notes         *string
}
