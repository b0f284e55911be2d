package patient

import (
	"time"
)

// Gender is the closed set of accepted gender values.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Patient maps to the patients table.
type Patient struct {
	ID            int64     `db:"id" json:"id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	DateOfBirth   time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender        Gender    `db:"gender" json:"gender"`
	ContactNumber string    `db:"contact_number" json:"contact_number"`
	Email         *string   `db:"email" json:"email,omitempty"`
	Address       *string   `db:"address" json:"address,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// FullName returns "First Last" for display.
func (p *Patient) FullName() string { return p.FirstName + " " + p.LastName }

// CreateInput carries the raw field values for registering a patient.
// Email and Address may be empty.
type CreateInput struct {
	FirstName     string
	LastName      string
	DateOfBirth   string
	Gender        string
	ContactNumber string
	Email         string
	Address       string
}

// Patch is a sparse update: nil fields keep their stored value, non-nil
// fields are validated and overwrite. An empty Email or Address clears the
// stored value.
type Patch struct {
	FirstName     *string
	LastName      *string
	DateOfBirth   *string
	Gender        *string
	ContactNumber *string
	Email         *string
	Address       *string
}
