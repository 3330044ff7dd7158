package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/platform/logger"
	"github.com/periodspal/periodspal-api/internal/store"
)

// PostgresCycleStore implements the store.CycleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCycleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCycleStore creates a new PostgreSQL implementation of the CycleStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCycleStore(db store.DBTX, logger *slog.Logger) *PostgresCycleStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCycleStore{
		db:     db,
		logger: logger.With(slog.String("component", "cycle_store")),
	}
}

// Ensure PostgresCycleStore implements store.CycleStore interface
var _ store.CycleStore = (*PostgresCycleStore)(nil)

// Create implements store.CycleStore.Create
// It appends one cycle record; prior records are never touched.
func (s *PostgresCycleStore) Create(ctx context.Context, record *domain.CycleRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("cycle record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	query := `
		INSERT INTO cycle_records (id, username, last_start, cycle_len, expected_next, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.Username,
		record.LastStart,
		record.CycleLen,
		record.ExpectedNext,
		record.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create cycle record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("username", record.Username))
		return MapError(err)
	}

	log.Info("cycle record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("username", record.Username),
		slog.Int("cycle_len", record.CycleLen))
	return nil
}

// ListByUsername implements store.CycleStore.ListByUsername
// Records come back newest-created-first, truncated to limit.
func (s *PostgresCycleStore) ListByUsername(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.CycleRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, last_start, cycle_len, expected_next, created_at
		FROM cycle_records
		WHERE username = $1
		ORDER BY created_at DESC
	`
	args := []any{username}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list cycle records",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]*domain.CycleRecord, 0)
	for rows.Next() {
		var record domain.CycleRecord
		err := rows.Scan(
			&record.ID,
			&record.Username,
			&record.LastStart,
			&record.CycleLen,
			&record.ExpectedNext,
			&record.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan cycle record row",
				slog.String("error", err.Error()),
				slog.String("username", username))
			return nil, MapError(err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("cycle records listed",
		slog.String("username", username),
		slog.Int("count", len(records)))
	return records, nil
}

// WithTx implements store.CycleStore.WithTx
// It returns a new CycleStore that uses the provided transaction.
func (s *PostgresCycleStore) WithTx(tx *sql.Tx) store.CycleStore {
	return &PostgresCycleStore{
		db:     tx,
		logger: s.logger,
	}
}
