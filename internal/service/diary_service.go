package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/store"
)

// DefaultDiaryHistoryLimit is the number of diary entries shown by default.
const DefaultDiaryHistoryLimit = 8

// DiaryService appends private diary entries and serves per-account history.
type DiaryService interface {
	// AddEntry appends a diary entry with the given date, symptom set and
	// notes. The symptom set may be empty; it is normalized so insertion
	// order does not matter.
	AddEntry(ctx context.Context, username string, date time.Time, symptoms []domain.Symptom, notes string) (*domain.DiaryEntry, error)

	// History returns the account's diary entries, newest first, truncated
	// to limit (DefaultDiaryHistoryLimit when limit <= 0). An account with
	// no entries gets an empty slice, not an error.
	History(ctx context.Context, username string, limit int) ([]*domain.DiaryEntry, error)
}

// DiaryServiceImpl implements the DiaryService interface
type DiaryServiceImpl struct {
	diaryStore store.DiaryStore
	db         *sql.DB
	logger     *slog.Logger
}

// NewDiaryService creates a new DiaryService.
// db may be nil, in which case writes go directly to the store instead of
// running inside a transaction.
func NewDiaryService(diaryStore store.DiaryStore, db *sql.DB, logger *slog.Logger) DiaryService {
	return &DiaryServiceImpl{
		diaryStore: diaryStore,
		db:         db,
		logger:     logger.With("component", "diary_service"),
	}
}

// AddEntry appends one private diary entry
func (s *DiaryServiceImpl) AddEntry(
	ctx context.Context,
	username string,
	date time.Time,
	symptoms []domain.Symptom,
	notes string,
) (*domain.DiaryEntry, error) {
	entry, err := domain.NewDiaryEntry(username, date, symptoms, notes)
	if err != nil {
		return nil, err
	}

	if err := s.createEntry(ctx, entry); err != nil {
		s.logger.Error("failed to add diary entry",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to add diary entry: %w", err)
	}

	s.logger.Debug("diary entry added",
		"entry_id", entry.ID,
		"username", username,
		"symptom_count", len(entry.Symptoms))
	return entry, nil
}

// createEntry appends the entry inside a transaction when a database
// handle is configured, directly otherwise.
func (s *DiaryServiceImpl) createEntry(ctx context.Context, entry *domain.DiaryEntry) error {
	if s.db == nil {
		return s.diaryStore.Create(ctx, entry)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.diaryStore.WithTx(tx).Create(ctx, entry)
	})
}

// History returns the account's diary entries, newest first
func (s *DiaryServiceImpl) History(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.DiaryEntry, error) {
	if limit <= 0 {
		limit = DefaultDiaryHistoryLimit
	}

	entries, err := s.diaryStore.ListByUsername(ctx, username, limit)
	if err != nil {
		s.logger.Error("failed to list diary history",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to list diary history: %w", err)
	}

	return entries, nil
}
