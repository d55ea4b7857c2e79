package favorites

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shopeasy/internal/domain"
)

// Table is the persistence backend behind a Store. Every write is a single
// atomic row operation.
type Table interface {
	Upsert(ctx context.Context, fav domain.Favorite) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, id int64) (int, error)
	List(ctx context.Context) ([]domain.Favorite, error)
}
