package appointment

import (
	"context"
)

// Repository is the storage contract for appointments. GetByID reports a
// missing row as (nil, nil); Delete reports it as (false, nil).
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error)
	ListByStaff(ctx context.Context, staffID int64) ([]*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id int64) (bool, error)
}
