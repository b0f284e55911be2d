package staff

import (
	"context"
)

// Repository is the storage contract for staff. GetByID reports a missing
// row as (nil, nil); Delete reports it as (false, nil).
type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id int64) (*Staff, error)
	List(ctx context.Context) ([]*Staff, error)
	Search(ctx context.Context, term string) ([]*Staff, error)
	Update(ctx context.Context, s *Staff) error
	Delete(ctx context.Context, id int64) (bool, error)
}
