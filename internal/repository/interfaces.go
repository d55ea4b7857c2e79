package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"shopeasy/internal/domain"
	"shopeasy/internal/favorites"
	"shopeasy/internal/source/fakestore"
)

type CatalogSource interface {
	FetchUsers(ctx context.Context) ([]fakestore.UserDTO, error)
	FetchProducts(ctx context.Context) ([]fakestore.ProductDTO, error)
	FetchProduct(ctx context.Context, id int64) (fakestore.ProductDTO, error)
}

type FavoritesStore interface {
	ObserveAll(ctx context.Context) <-chan favorites.Snapshot
	Upsert(ctx context.Context, fav domain.Favorite) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, id int64) (int, error)
}

// CatalogRepository serves remote catalog data in domain shape. Faults from
// the remote side are returned unchanged.
type CatalogRepository interface {
	GetUsers(ctx context.Context) ([]domain.User, error)
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
}

// FavoritesRepository is the storage-agnostic view of the local favorites.
type FavoritesRepository interface {
	GetAllFavorites(ctx context.Context) <-chan favorites.Snapshot
	SaveFavorite(ctx context.Context, fav domain.Favorite) error
	DeleteFavorite(ctx context.Context, id int64) error
	IsFavorite(ctx context.Context, id int64) (bool, error)
}
