package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"shopeasy/internal/domain"
)

type FavoriteStore struct {
	db *sqlx.DB
}

func NewFavoriteStore(db *sqlx.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

type favoriteRow struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Image       string  `db:"image"`
	Price       float64 `db:"price"`
	Description *string `db:"description"`
	Category    *string `db:"category"`
	SavedAt     int64   `db:"saved_at"`
}

func (r favoriteRow) toDomain() domain.Favorite {
	return domain.Favorite{
		ID:          r.ID,
		Title:       r.Title,
		Image:       r.Image,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		SavedAt:     time.UnixMilli(r.SavedAt),
	}
}

// Upsert inserts fav or overwrites every column of the row with the same id.
func (s *FavoriteStore) Upsert(ctx context.Context, fav domain.Favorite) error {
	query := `
		INSERT INTO favorites (id, title, image, price, description, category, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			image = EXCLUDED.image,
			price = EXCLUDED.price,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			saved_at = EXCLUDED.saved_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		fav.ID,
		fav.Title,
		fav.Image,
		fav.Price,
		fav.Description,
		fav.Category,
		fav.SavedAt.UnixMilli(),
	)
	return err
}

// Delete removes the favorite with id and reports whether a row was removed.
func (s *FavoriteStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM favorites WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *FavoriteStore) Count(ctx context.Context, id int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM favorites WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *FavoriteStore) List(ctx context.Context) ([]domain.Favorite, error) {
	query := `
		SELECT id, title, image, price, description, category, saved_at
		FROM favorites
		ORDER BY saved_at DESC, id ASC`

	var rows []favoriteRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}

	favs := make([]domain.Favorite, len(rows))
	for i, r := range rows {
		favs[i] = r.toDomain()
	}
	return favs, nil
}
