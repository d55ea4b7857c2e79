package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"shopeasy/internal/domain"
)

// FavoriteStore keeps favorites in process memory. It implements the same
// table contract as the postgres store and is the default backend.
type FavoriteStore struct {
	mu   sync.RWMutex
	rows map[int64]domain.Favorite
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{rows: make(map[int64]domain.Favorite)}
}

// Upsert inserts fav or replaces the row with the same id.
func (s *FavoriteStore) Upsert(ctx context.Context, fav domain.Favorite) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[fav.ID] = clone(fav)
	return nil
}

// Delete removes the row with id and reports whether one existed.
func (s *FavoriteStore) Delete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

func (s *FavoriteStore) Count(ctx context.Context, id int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.rows[id]; ok {
		return 1, nil
	}
	return 0, nil
}

// List returns every favorite, most recently saved first. Equal timestamps
// are ordered by id.
func (s *FavoriteStore) List(ctx context.Context) ([]domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	favs := make([]domain.Favorite, 0, len(s.rows))
	for _, fav := range s.rows {
		favs = append(favs, clone(fav))
	}
	s.mu.RUnlock()

	slices.SortFunc(favs, func(a, b domain.Favorite) int {
		if c := b.SavedAt.Compare(a.SavedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return favs, nil
}

// clone copies the optional strings so rows never share memory with callers.
func clone(fav domain.Favorite) domain.Favorite {
	fav.Description = cloneString(fav.Description)
	fav.Category = cloneString(fav.Category)
	return fav
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
