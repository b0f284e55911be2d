package patient

import (
	"context"
)

// Repository is the storage contract for patients. GetByID reports a missing
// row as (nil, nil); Delete reports it as (false, nil).
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Search(ctx context.Context, term string) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int64) (bool, error)
}
