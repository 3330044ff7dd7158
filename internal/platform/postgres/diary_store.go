package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/platform/logger"
	"github.com/periodspal/periodspal-api/internal/store"
)

// PostgresDiaryStore implements the store.DiaryStore interface
// using a PostgreSQL database as the storage backend.
//
// Symptoms are stored in their delimited string form ("Cramps|Headache")
// in canonical order, so the recovered set is independent of the order
// symptoms were originally selected in.
type PostgresDiaryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDiaryStore creates a new PostgreSQL implementation of the DiaryStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresDiaryStore(db store.DBTX, logger *slog.Logger) *PostgresDiaryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDiaryStore{
		db:     db,
		logger: logger.With(slog.String("component", "diary_store")),
	}
}

// Ensure PostgresDiaryStore implements store.DiaryStore interface
var _ store.DiaryStore = (*PostgresDiaryStore)(nil)

// Create implements store.DiaryStore.Create
func (s *PostgresDiaryStore) Create(ctx context.Context, entry *domain.DiaryEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("diary entry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	query := `
		INSERT INTO diary_entries (id, username, entry_date, symptoms, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.Username,
		entry.Date,
		domain.JoinSymptoms(entry.Symptoms),
		entry.Notes,
		entry.CreatedAt,
	)

	if err != nil {
		// Notes are private health data; log the ID, never the content.
		log.Error("failed to create diary entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()),
			slog.String("username", entry.Username))
		return MapError(err)
	}

	log.Info("diary entry created successfully",
		slog.String("entry_id", entry.ID.String()),
		slog.String("username", entry.Username))
	return nil
}

// ListByUsername implements store.DiaryStore.ListByUsername
// Entries come back newest-created-first, truncated to limit.
func (s *PostgresDiaryStore) ListByUsername(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.DiaryEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, entry_date, symptoms, notes, created_at
		FROM diary_entries
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
		log.Error("failed to list diary entries",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*domain.DiaryEntry, 0)
	for rows.Next() {
		var entry domain.DiaryEntry
		var rawSymptoms string
		err := rows.Scan(
			&entry.ID,
			&entry.Username,
			&entry.Date,
			&rawSymptoms,
			&entry.Notes,
			&entry.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan diary entry row",
				slog.String("error", err.Error()),
				slog.String("username", username))
			return nil, MapError(err)
		}

		entry.Symptoms, err = domain.ParseSymptoms(rawSymptoms)
		if err != nil {
			log.Error("stored symptoms failed to parse",
				slog.String("error", err.Error()),
				slog.String("entry_id", entry.ID.String()))
			return nil, err
		}

		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("diary entries listed",
		slog.String("username", username),
		slog.Int("count", len(entries)))
	return entries, nil
}

// WithTx implements store.DiaryStore.WithTx
// It returns a new DiaryStore that uses the provided transaction.
func (s *PostgresDiaryStore) WithTx(tx *sql.Tx) store.DiaryStore {
	return &PostgresDiaryStore{
		db:     tx,
		logger: s.logger,
	}
}
