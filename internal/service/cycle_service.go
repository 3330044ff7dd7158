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

// DefaultCycleHistoryLimit is the number of cycle records shown by default.
const DefaultCycleHistoryLimit = 5

// CycleService records cycle predictions and serves per-account history.
type CycleService interface {
	// Record computes the expected next cycle date from the reported start
	// and cycle length, appends a record, and returns it. Repeated
	// identical submissions create repeated records; there is no
	// deduplication. The [20,45] day bound on cycleLen is a form
	// constraint enforced at the request boundary, not re-checked here.
	Record(ctx context.Context, username string, lastStart time.Time, cycleLen int) (*domain.CycleRecord, error)

	// History returns the account's cycle records, newest first, truncated
	// to limit (DefaultCycleHistoryLimit when limit <= 0). An account with
	// no records gets an empty slice, not an error.
	History(ctx context.Context, username string, limit int) ([]*domain.CycleRecord, error)
}

// CycleServiceImpl implements the CycleService interface
type CycleServiceImpl struct {
	cycleStore store.CycleStore
	db         *sql.DB
	logger     *slog.Logger
}

// NewCycleService creates a new CycleService.
// db may be nil, in which case writes go directly to the store instead of
// running inside a transaction.
func NewCycleService(cycleStore store.CycleStore, db *sql.DB, logger *slog.Logger) CycleService {
	return &CycleServiceImpl{
		cycleStore: cycleStore,
		db:         db,
		logger:     logger.With("component", "cycle_service"),
	}
}

// Record computes and persists one cycle prediction
func (s *CycleServiceImpl) Record(
	ctx context.Context,
	username string,
	lastStart time.Time,
	cycleLen int,
) (*domain.CycleRecord, error) {
	record, err := domain.NewCycleRecord(username, lastStart, cycleLen)
	if err != nil {
		return nil, err
	}

	if err := s.createRecord(ctx, record); err != nil {
		s.logger.Error("failed to record cycle",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to record cycle: %w", err)
	}

	s.logger.Debug("cycle recorded",
		"record_id", record.ID,
		"username", username,
		"expected_next", record.ExpectedNext.Format(time.DateOnly))
	return record, nil
}

// createRecord appends the record inside a transaction when a database
// handle is configured, directly otherwise.
func (s *CycleServiceImpl) createRecord(ctx context.Context, record *domain.CycleRecord) error {
	if s.db == nil {
		return s.cycleStore.Create(ctx, record)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.cycleStore.WithTx(tx).Create(ctx, record)
	})
}

// History returns the account's cycle records, newest first
func (s *CycleServiceImpl) History(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.CycleRecord, error) {
	if limit <= 0 {
		limit = DefaultCycleHistoryLimit
	}

	records, err := s.cycleStore.ListByUsername(ctx, username, limit)
	if err != nil {
		s.logger.Error("failed to list cycle history",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to list cycle history: %w", err)
	}

	return records, nil
}
