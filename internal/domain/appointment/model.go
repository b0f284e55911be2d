package appointment

import (
	"time"
)

// Status is the closed set of appointment statuses.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var validStatuses = map[Status]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// Appointment maps to the appointments table.
type Appointment struct {
	ID              int64     `db:"id" json:"id"`
	PatientID       int64     `db:"patient_id" json:"patient_id"`
	StaffID         int64     `db:"staff_id" json:"staff_id"`
	AppointmentDate time.Time `db:"appointment_date" json:"appointment_date"`
	Purpose         *string   `db:"purpose" json:"purpose,omitempty"`
	Status          Status    `db:"status" json:"status"`
}

// CreateInput carries the raw field values for scheduling an appointment.
// Status may be empty; it defaults to Scheduled.
type CreateInput struct {
	PatientID       int64
	StaffID         int64
	AppointmentDate string
	Purpose         string
	Status          string
}

// Patch is a sparse update: nil fields keep their stored value. An empty
// Purpose clears the stored value.
type Patch struct {
	PatientID       *int64
	StaffID         *int64
	AppointmentDate *string
	Purpose         *string
	Status          *string
}
