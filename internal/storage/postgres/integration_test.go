//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"shopeasy/internal/domain"
	"shopeasy/internal/testutil"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	logger    *slog.Logger
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(NewMigrator(s.db, s.logger).Migrate(s.ctx))
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM favorites")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func favorite(id int64, title string, savedAtMillis int64) domain.Favorite {
	return domain.Favorite{
		ID:          id,
		Title:       title,
		Image:       fmt.Sprintf("https://img/%d.jpg", id),
		Price:       9.99,
		Description: testutil.Ptr("desc"),
		Category:    nil,
		SavedAt:     time.UnixMilli(savedAtMillis),
	}
}

func (s *PostgresIntegrationSuite) TestFavoriteStore_ListOrdersBySavedAtDesc() {
	store := NewFavoriteStore(s.db)

	s.NoError(store.Upsert(s.ctx, favorite(1, "a", 1000)))
	s.NoError(store.Upsert(s.ctx, favorite(2, "b", 5000)))
	s.NoError(store.Upsert(s.ctx, favorite(3, "c", 3000)))

	favs, err := store.List(s.ctx)
	s.NoError(err)
	s.Require().Len(favs, 3)
	s.Equal(int64(2), favs[0].ID)
	s.Equal(int64(3), favs[1].ID)
	s.Equal(int64(1), favs[2].ID)

	s.Equal("desc", *favs[0].Description)
	s.Nil(favs[0].Category)
	s.Equal(int64(5000), favs[0].SavedAt.UnixMilli())
}

func (s *PostgresIntegrationSuite) TestFavoriteStore_UpsertReplaces() {
	store := NewFavoriteStore(s.db)

	s.NoError(store.Upsert(s.ctx, favorite(1, "Old", 1000)))
	s.NoError(store.Upsert(s.ctx, favorite(1, "New", 2000)))

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM favorites"))
	s.Equal(1, count)

	favs, err := store.List(s.ctx)
	s.NoError(err)
	s.Equal("New", favs[0].Title)
	s.Equal(int64(2000), favs[0].SavedAt.UnixMilli())
}

func (s *PostgresIntegrationSuite) TestFavoriteStore_DeleteReportsRemoval() {
	store := NewFavoriteStore(s.db)
	s.NoError(store.Upsert(s.ctx, favorite(1, "a", 1000)))

	removed, err := store.Delete(s.ctx, 1)
	s.NoError(err)
	s.True(removed)

	removed, err = store.Delete(s.ctx, 1)
	s.NoError(err)
	s.False(removed)

	n, err := store.Count(s.ctx, 1)
	s.NoError(err)
	s.Equal(0, n)
}

func (s *PostgresIntegrationSuite) TestFavoriteStore_ConcurrentUpsertsDistinctIDs() {
	store := NewFavoriteStore(s.db)

	var wg sync.WaitGroup
	for i := int64(1); i <= 100; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.NoError(store.Upsert(s.ctx, favorite(id, "p", 1000+id)))
		}(i)
	}
	wg.Wait()

	favs, err := store.List(s.ctx)
	s.NoError(err)
	s.Len(favs, 100)
}

func (s *PostgresIntegrationSuite) TestMigrator_RecreatesOnVersionMismatch() {
	store := NewFavoriteStore(s.db)
	s.NoError(store.Upsert(s.ctx, favorite(1, "a", 1000)))

	_, err := s.db.ExecContext(s.ctx, "UPDATE schema_meta SET version = 0 WHERE id = 1")
	s.NoError(err)

	migrator := NewMigrator(s.db, s.logger)
	s.NoError(migrator.Migrate(s.ctx))

	version, err := migrator.Version(s.ctx)
	s.NoError(err)
	s.Equal(SchemaVersion, version)

	favs, err := store.List(s.ctx)
	s.NoError(err)
	s.Empty(favs)
}

func (s *PostgresIntegrationSuite) TestMigrator_KeepsDataWhenUpToDate() {
	store := NewFavoriteStore(s.db)
	s.NoError(store.Upsert(s.ctx, favorite(1, "a", 1000)))

	s.NoError(NewMigrator(s.db, s.logger).Migrate(s.ctx))

	n, err := store.Count(s.ctx, 1)
	s.NoError(err)
	s.Equal(1, n)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewFavoriteStore(s.db)
	s.NoError(store.Upsert(s.ctx, favorite(1, "pre-existing", 1000)))

	errBoom := errors.New("boom")
	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := store.Upsert(ctx, favorite(2, "rolled back", 2000)); err != nil {
			return err
		}
		if _, err := store.Delete(ctx, 1); err != nil {
			return err
		}
		return errBoom
	})
	s.ErrorIs(err, errBoom)

	favs, err := store.List(s.ctx)
	s.NoError(err)
	s.Require().Len(favs, 1)
	s.Equal(int64(1), favs[0].ID)
}
