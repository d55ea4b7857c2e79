package viewstate

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"shopeasy/internal/domain"
	"shopeasy/internal/repository"
)

type FavoritesState struct {
	Loading bool
	// Favorites is the whole stored list, newest first.
	Favorites []domain.Product
	Query     string
	// Visible is Favorites narrowed down by Query.
	Visible []domain.Product
	Error   string
	// Revision increments each time a changed list is applied.
	Revision uint64
}

// FavoritesIntent is implemented by Filter and DeleteFavorite.
type FavoritesIntent interface {
	favoritesIntent()
}

// Filter narrows the visible favorites to those whose title or category
// contains Query, ignoring case. An empty Query shows everything.
type Filter struct {
	Query string
}

type DeleteFavorite struct {
	ID int64
}

func (Filter) favoritesIntent()         {}
func (DeleteFavorite) favoritesIntent() {}

// Favorites backs the favorites screen. Its list follows the favorites
// stream for the whole session; there is no load intent.
type Favorites struct {
	*session
	favorites repository.FavoritesRepository

	mu    sync.Mutex
	state FavoritesState
	last  []domain.Favorite
}

func NewFavorites(ctx context.Context, favorites repository.FavoritesRepository, logger *slog.Logger) *Favorites {
	f := &Favorites{
		session:   newSession(ctx, logger.With("component", "favorites")),
		favorites: favorites,
		state:     FavoritesState{Loading: true},
	}
	f.spawn(f.collect)
	return f
}

func (f *Favorites) State() FavoritesState {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.state
	st.Favorites = slices.Clone(f.state.Favorites)
	st.Visible = slices.Clone(f.state.Visible)
	return st
}

func (f *Favorites) Dispatch(intent FavoritesIntent) {
	switch in := intent.(type) {
	case Filter:
		f.mu.Lock()
		f.state.Query = in.Query
		f.state.Visible = filterProducts(f.state.Favorites, in.Query)
		f.mu.Unlock()
	case DeleteFavorite:
		f.spawn(func(ctx context.Context) {
			if err := f.favorites.DeleteFavorite(ctx, in.ID); err != nil {
				f.logger.Error("failed to delete favorite", "id", in.ID, "error", err)
				f.notes.emit(ctx, msgRemoveFavoriteFailed, f.now())
			}
		})
	}
}

func (f *Favorites) collect(ctx context.Context) {
	for snap := range f.favorites.GetAllFavorites(ctx) {
		if snap.Err != nil {
			f.logger.Error("favorites stream failed", "error", snap.Err)
			f.mu.Lock()
			f.state.Loading = false
			f.state.Error = errorMessage(snap.Err)
			f.mu.Unlock()
			return
		}
		f.apply(snap.Favorites)
	}
}

// apply ignores a snapshot equal to the last applied one.
func (f *Favorites) apply(favs []domain.Favorite) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.Loading && slices.EqualFunc(f.last, favs, domain.Favorite.Equal) {
		return
	}
	f.last = favs
	f.state.Revision++

	products := make([]domain.Product, len(favs))
	for i, fav := range favs {
		products[i] = fav.Product()
	}
	f.state.Loading = false
	f.state.Favorites = products
	f.state.Visible = filterProducts(products, f.state.Query)
}

func filterProducts(products []domain.Product, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return slices.Clone(products)
	}

	var out []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			(p.Category != nil && strings.Contains(strings.ToLower(*p.Category), query)) {
			out = append(out, p)
		}
	}
	return out
}
