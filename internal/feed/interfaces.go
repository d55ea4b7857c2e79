package feed

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shopeasy/internal/domain"
	"shopeasy/internal/favorites"
)

type Source interface {
	GetAllFavorites(ctx context.Context) <-chan favorites.Snapshot
}

type Publisher interface {
	PublishFavorites(ctx context.Context, favs []domain.Favorite) error
}
