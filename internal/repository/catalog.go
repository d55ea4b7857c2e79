package repository

import (
	"context"
	"fmt"
	"log/slog"

	"shopeasy/internal/domain"
	"shopeasy/internal/source/fakestore"
)

// Catalog performs exactly one remote fetch per call. There is no caching
// and no retry.
type Catalog struct {
	source CatalogSource
	logger *slog.Logger
}

func NewCatalog(source CatalogSource, logger *slog.Logger) *Catalog {
	return &Catalog{
		source: source,
		logger: logger.With("component", "catalog_repository"),
	}
}

func (c *Catalog) GetUsers(ctx context.Context) ([]domain.User, error) {
	dtos, err := c.source.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(dtos))
	for i, dto := range dtos {
		users[i] = toUser(dto)
	}
	c.logger.Debug("users fetched", "count", len(users))
	return users, nil
}

func (c *Catalog) GetProducts(ctx context.Context) ([]domain.Product, error) {
	dtos, err := c.source.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(dtos))
	for i, dto := range dtos {
		products[i] = toProduct(dto)
	}
	c.logger.Debug("products fetched", "count", len(products))
	return products, nil
}

func (c *Catalog) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	dto, err := c.source.FetchProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return toProduct(dto), nil
}

func toProduct(dto fakestore.ProductDTO) domain.Product {
	return domain.Product{
		ID:          dto.ID,
		Title:       dto.Title,
		Price:       dto.Price,
		Description: dto.Description,
		Category:    dto.Category,
		Image:       dto.Image,
	}
}

func toUser(dto fakestore.UserDTO) domain.User {
	var first, last *string
	if dto.Name != nil {
		first, last = dto.Name.Firstname, dto.Name.Lastname
	}
	return domain.User{
		ID:       dto.ID,
		Username: dto.Username,
		Email:    dto.Email,
		Name:     fmt.Sprintf("%s %s", orNull(first), orNull(last)),
	}
}

// orNull renders a missing name part as "null", so a user without a name
// is shown as "null null".
func orNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
