package billing

import (
	"context"
)

// Repository is the storage contract for bills. GetByID reports a missing
// row as (nil, nil); Delete reports it as (false, nil).
type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id int64) (*Bill, error)
	List(ctx context.Context) ([]*Bill, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error)
	ListUnpaid(ctx context.Context) ([]*Bill, error)
	Update(ctx context.Context, b *Bill) error
	Delete(ctx context.Context, id int64) (bool, error)
}
