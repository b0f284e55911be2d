package billing

import (
	"time"
)

// Status is the closed set of bill statuses.
type Status string

const (
	StatusPaid   Status = "Paid"
	StatusUnpaid Status = "Unpaid"
)

var validStatuses = map[Status]bool{
	StatusPaid:   true,
	StatusUnpaid: true,
}

// Bill maps to the bills table.
type Bill struct {
	ID          int64      `db:"id" json:"id"`
	PatientID   int64      `db:"patient_id" json:"patient_id"`
	Amount      float64    `db:"amount" json:"amount"`
	DateIssued  time.Time  `db:"date_issued" json:"date_issued"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
	Status      Status     `db:"status" json:"status"`
	Description *string    `db:"description" json:"description,omitempty"`
}

// CreateInput carries the raw field values for a new bill. Amount is the raw
// operator input and must parse as a positive number. DateIssued may be
// empty, in which case storage assigns the current date. Status defaults to
// Unpaid.
type CreateInput struct {
	PatientID   int64
	Amount      string
	DateIssued  string
	DueDate     string
	Description string
	Status      string
}

// Overdue reports whether the bill is unpaid and past its due date at the
// given time.
func (b *Bill) Overdue(now time.Time) bool {
	return b.Status == StatusUnpaid && b.DueDate != nil && b.DueDate.Before(now)
}

// Patch is a sparse update: nil fields keep their stored value. An empty
// DueDate or Description clears the stored value.
type Patch struct {
	Amount      *string
	DueDate     *string
	Description *string
	Status      *string
}
