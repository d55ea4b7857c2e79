package domain

import "time"

// Favorite is a product the user saved locally. ID is unique: saving a
// favorite with an existing ID replaces the stored one.
type Favorite struct {
	ID          int64
	Title       string
	Image       string
	Price       float64
	Description *string
	Category    *string
	SavedAt     time.Time
}

// NewFavorite maps a catalog product to a favorite stamped with savedAt.
func NewFavorite(p Product, savedAt time.Time) Favorite {
	return Favorite{
		ID:          p.ID,
		Title:       p.Title,
		Image:       p.Image,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		SavedAt:     savedAt,
	}
}

// Product converts the favorite back to its catalog shape.
func (f Favorite) Product() Product {
	return Product{
		ID:          f.ID,
		Title:       f.Title,
		Price:       f.Price,
		Description: f.Description,
		Category:    f.Category,
		Image:       f.Image,
	}
}

// Equal reports whether f and o hold the same values. SavedAt is compared
// as an instant.
func (f Favorite) Equal(o Favorite) bool {
	return f.ID == o.ID &&
		f.Title == o.Title &&
		f.Image == o.Image &&
		f.Price == o.Price &&
		equalPtr(f.Description, o.Description) &&
		equalPtr(f.Category, o.Category) &&
		f.SavedAt.Equal(o.SavedAt)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
