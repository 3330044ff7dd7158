package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/store"
)

// DefaultConsultationHistoryLimit is the number of requests shown by default.
const DefaultConsultationHistoryLimit = 5

// ConsultationService appends consultation requests and serves per-account
// history. Requests carry a snapshot of the account's demographics taken at
// request time; later profile edits do not change past requests. No
// operation transitions a request's status or writes a doctor reply - those
// fields are a reserved extension point for a clinician-facing collaborator.
type ConsultationService interface {
	// Request appends a consultation request for the given account,
	// snapshotting its current demographic fields.
	// Returns store.ErrAccountNotFound if the account does not exist.
	Request(ctx context.Context, username, problem string) (*domain.ConsultationRequest, error)

	// History returns the account's consultation requests, newest first,
	// truncated to limit (DefaultConsultationHistoryLimit when limit <= 0).
	// An account with no requests gets an empty slice, not an error.
	History(ctx context.Context, username string, limit int) ([]*domain.ConsultationRequest, error)
}

// ConsultationServiceImpl implements the ConsultationService interface
type ConsultationServiceImpl struct {
	consultationStore store.ConsultationStore
	accountStore      store.AccountStore
	db                *sql.DB
	logger            *slog.Logger
}

// NewConsultationService creates a new ConsultationService.
// db may be nil, in which case the snapshot read and the append run
// without a shared transaction.
func NewConsultationService(
	consultationStore store.ConsultationStore,
	accountStore store.AccountStore,
	db *sql.DB,
	logger *slog.Logger,
) ConsultationService {
	return &ConsultationServiceImpl{
		consultationStore: consultationStore,
		accountStore:      accountStore,
		db:                db,
		logger:            logger.With("component", "consultation_service"),
	}
}

// Request appends one consultation request with an account snapshot
func (s *ConsultationServiceImpl) Request(
	ctx context.Context,
	username, problem string,
) (*domain.ConsultationRequest, error) {
	var request *domain.ConsultationRequest

	// The snapshot read and the append share a transaction so the
	// persisted demographics are exactly the ones that were read.
	build := func(accounts store.AccountStore, consultations store.ConsultationStore) error {
		account, err := accounts.GetByUsername(ctx, username)
		if err != nil {
			s.logger.Error("failed to load account for consultation snapshot",
				"error", err,
				"username", username)
			return err
		}

		request, err = domain.NewConsultationRequest(account, problem)
		if err != nil {
			return err
		}

		return consultations.Create(ctx, request)
	}

	var err error
	if s.db == nil {
		err = build(s.accountStore, s.consultationStore)
	} else {
		err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			return build(s.accountStore.WithTx(tx), s.consultationStore.WithTx(tx))
		})
	}
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) || errors.Is(err, domain.ErrEmptyProblem) {
			return nil, err
		}
		s.logger.Error("failed to create consultation request",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create consultation request: %w", err)
	}

	s.logger.Info("consultation requested",
		"request_id", request.ID,
		"username", username)
	return request, nil
}

// History returns the account's consultation requests, newest first
func (s *ConsultationServiceImpl) History(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.ConsultationRequest, error) {
	if limit <= 0 {
		limit = DefaultConsultationHistoryLimit
	}

	requests, err := s.consultationStore.ListByUsername(ctx, username, limit)
	if err != nil {
		s.logger.Error("failed to list consultation history",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to list consultation history: %w", err)
	}

	return requests, nil
}
