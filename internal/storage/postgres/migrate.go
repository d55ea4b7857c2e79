package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SchemaVersion is bumped whenever the favorites table layout changes. There
// are no incremental migrations: a version mismatch drops and recreates it.
const SchemaVersion = 1

const undefinedTable pq.ErrorCode = "42P01"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS schema_meta (
		id INTEGER PRIMARY KEY,
		version INTEGER NOT NULL
	)`,
	`DROP TABLE IF EXISTS favorites`,
	`CREATE TABLE favorites (
		id BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		image TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		description TEXT,
		category TEXT,
		saved_at BIGINT NOT NULL
	)`,
	`CREATE INDEX favorites_saved_at_idx ON favorites (saved_at DESC)`,
}

type Migrator struct {
	db        *sqlx.DB
	txManager *TransactionManager
	logger    *slog.Logger
}

func NewMigrator(db *sqlx.DB, logger *slog.Logger) *Migrator {
	return &Migrator{
		db:        db,
		txManager: NewTransactionManager(db),
		logger:    logger,
	}
}

// Migrate brings the schema to SchemaVersion, destroying stored favorites
// when the recorded version differs.
func (m *Migrator) Migrate(ctx context.Context) error {
	current, err := m.Version(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if current == SchemaVersion {
		m.logger.Debug("schema up to date", "version", current)
		return nil
	}

	m.logger.Info("recreating favorites schema", "from_version", current, "to_version", SchemaVersion)

	return m.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, m.db)
		for _, stmt := range schemaStatements {
			if _, err := exec.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}

		_, err := exec.ExecContext(ctx, `
			INSERT INTO schema_meta (id, version) VALUES (1, $1)
			ON CONFLICT (id) DO UPDATE SET version = EXCLUDED.version`,
			SchemaVersion,
		)
		if err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	})
}

// Version returns the recorded schema version, 0 for an empty database.
func (m *Migrator) Version(ctx context.Context) (int, error) {
	var version int
	err := m.db.GetContext(ctx, &version, "SELECT version FROM schema_meta WHERE id = 1")

	var pqErr *pq.Error
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case errors.As(err, &pqErr) && pqErr.Code == undefinedTable:
		return 0, nil
	case err != nil:
		return 0, err
	}
	return version, nil
}
