package viewstate

import (
	"context"
	"log/slog"
	"sync"

	"shopeasy/internal/domain"
	"shopeasy/internal/repository"
)

type DetailState struct {
	Loading    bool
	Product    *domain.Product
	IsFavorite bool
	Error      string
}

// DetailIntent is implemented by LoadProductDetails and AddToFavorites.
type DetailIntent interface {
	detailIntent()
}

type LoadProductDetails struct {
	ID int64
}

func (LoadProductDetails) detailIntent() {}
func (AddToFavorites) detailIntent()     {}

// ProductDetail backs the single product screen.
type ProductDetail struct {
	*session
	catalog   repository.CatalogRepository
	favorites repository.FavoritesRepository

	mu    sync.Mutex
	state DetailState
}

func NewProductDetail(ctx context.Context, catalog repository.CatalogRepository, favorites repository.FavoritesRepository, logger *slog.Logger) *ProductDetail {
	return &ProductDetail{
		session:   newSession(ctx, logger.With("component", "product_detail")),
		catalog:   catalog,
		favorites: favorites,
	}
}

func (d *ProductDetail) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := d.state
	if d.state.Product != nil {
		product := *d.state.Product
		st.Product = &product
	}
	return st
}

func (d *ProductDetail) Dispatch(intent DetailIntent) {
	switch in := intent.(type) {
	case LoadProductDetails:
		d.spawn(func(ctx context.Context) {
			d.load(ctx, in.ID)
		})
	case AddToFavorites:
		d.spawn(func(ctx context.Context) {
			if d.addToFavorites(ctx, d.favorites, in.Product) {
				d.update(func(st *DetailState) {
					if st.Product != nil && st.Product.ID == in.Product.ID {
						st.IsFavorite = true
					}
				})
			}
		})
	}
}

func (d *ProductDetail) load(ctx context.Context, id int64) {
	d.update(func(st *DetailState) {
		st.Loading = true
		st.Error = ""
	})

	product, err := d.catalog.GetProduct(ctx, id)
	if err != nil {
		d.logger.Warn("failed to load product", "id", id, "error", err)
		d.update(func(st *DetailState) {
			st.Loading = false
			st.Error = errorMessage(err)
		})
		return
	}

	// A failed lookup only hides the marker, the product is still shown.
	favorite, err := d.favorites.IsFavorite(ctx, id)
	if err != nil {
		d.logger.Warn("failed to check favorite", "id", id, "error", err)
	}

	d.update(func(st *DetailState) {
		st.Loading = false
		st.Product = &product
		st.IsFavorite = favorite
	})
}

func (d *ProductDetail) update(fn func(st *DetailState)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.state)
}
