package repository

import (
	"context"

	"shopeasy/internal/domain"
	"shopeasy/internal/favorites"
)

// Favorites forwards every call to the favorites store unchanged.
type Favorites struct {
	store FavoritesStore
}

func NewFavorites(store FavoritesStore) *Favorites {
	return &Favorites{store: store}
}

func (f *Favorites) GetAllFavorites(ctx context.Context) <-chan favorites.Snapshot {
	return f.store.ObserveAll(ctx)
}

func (f *Favorites) SaveFavorite(ctx context.Context, fav domain.Favorite) error {
	return f.store.Upsert(ctx, fav)
}

func (f *Favorites) DeleteFavorite(ctx context.Context, id int64) error {
	return f.store.Delete(ctx, id)
}

func (f *Favorites) IsFavorite(ctx context.Context, id int64) (bool, error) {
	n, err := f.store.Count(ctx, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
