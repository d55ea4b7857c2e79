package viewstate

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"shopeasy/internal/domain"
	"shopeasy/internal/repository"
)

type ProductsState struct {
	Loading  bool
	Products []domain.Product
	Error    string
}

// ProductsIntent is implemented by LoadProducts and AddToFavorites.
type ProductsIntent interface {
	productsIntent()
}

type LoadProducts struct{}

// AddToFavorites saves Product as a favorite. It is accepted by both the
// products list and the product detail containers.
type AddToFavorites struct {
	Product domain.Product
}

func (LoadProducts) productsIntent()   {}
func (AddToFavorites) productsIntent() {}

// Products backs the product list screen.
type Products struct {
	*session
	catalog   repository.CatalogRepository
	favorites repository.FavoritesRepository

	mu    sync.Mutex
	state ProductsState
}

func NewProducts(ctx context.Context, catalog repository.CatalogRepository, favorites repository.FavoritesRepository, logger *slog.Logger) *Products {
	return &Products{
		session:   newSession(ctx, logger.With("component", "products")),
		catalog:   catalog,
		favorites: favorites,
	}
}

func (p *Products) State() ProductsState {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := p.state
	st.Products = slices.Clone(p.state.Products)
	return st
}

func (p *Products) Dispatch(intent ProductsIntent) {
	switch in := intent.(type) {
	case LoadProducts:
		p.spawn(p.load)
	case AddToFavorites:
		p.spawn(func(ctx context.Context) {
			p.addToFavorites(ctx, p.favorites, in.Product)
		})
	}
}

// Refresh reloads the product list.
func (p *Products) Refresh() {
	p.Dispatch(LoadProducts{})
}

func (p *Products) load(ctx context.Context) {
	p.update(func(st *ProductsState) {
		st.Loading = true
		st.Error = ""
	})

	products, err := p.catalog.GetProducts(ctx)
	if err != nil {
		p.logger.Warn("failed to load products", "error", err)
		p.update(func(st *ProductsState) {
			st.Loading = false
			st.Error = errorMessage(err)
		})
		return
	}

	p.update(func(st *ProductsState) {
		st.Loading = false
		st.Products = products
	})
}

func (p *Products) update(fn func(st *ProductsState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.state)
}
