package staff

import (
	"time"
)

// Staff maps to the staff table. Role is free text (Doctor, Nurse, Admin...).
type Staff struct {
	ID            int64      `db:"id" json:"id"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	Role          string     `db:"role" json:"role"`
	Department    *string    `db:"department" json:"department,omitempty"`
	ContactNumber string     `db:"contact_number" json:"contact_number"`
	Email         *string    `db:"email" json:"email,omitempty"`
	HireDate      *time.Time `db:"hire_date" json:"hire_date,omitempty"`
}

// FullName returns "First Last" for display.
func (s *Staff) FullName() string { return s.FirstName + " " + s.LastName }

// CreateInput carries the raw field values for registering a staff member.
type CreateInput struct {
	FirstName     string
	LastName      string
	Role          string
	Department    string
	ContactNumber string
	Email         string
	HireDate      string
}

// Patch is a sparse update: nil fields keep their stored value. An empty
// Department, Email, or HireDate clears the stored value.
type Patch struct {
	FirstName     *string
	LastName      *string
	Role          *string
	Department    *string
	ContactNumber *string
	Email         *string
	HireDate      *string
}
