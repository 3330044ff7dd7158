package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/platform/logger"
	"github.com/periodspal/periodspal-api/internal/store"
)

// PostgresConsultationStore implements the store.ConsultationStore interface
// using a PostgreSQL database as the storage backend.
//
// Rows are never updated: status and doctor_reply columns exist as an
// extension point for a clinician workflow that is not implemented.
type PostgresConsultationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresConsultationStore creates a new PostgreSQL implementation of the ConsultationStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresConsultationStore(db store.DBTX, logger *slog.Logger) *PostgresConsultationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresConsultationStore{
		db:     db,
		logger: logger.With(slog.String("component", "consultation_store")),
	}
}

// Ensure PostgresConsultationStore implements store.ConsultationStore interface
var _ store.ConsultationStore = (*PostgresConsultationStore)(nil)

// Create implements store.ConsultationStore.Create
func (s *PostgresConsultationStore) Create(ctx context.Context, request *domain.ConsultationRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := request.Validate(); err != nil {
		log.Warn("consultation request validation failed during create",
			slog.String("error", err.Error()),
			slog.String("request_id", request.ID.String()))
		return err
	}

	query := `
		INSERT INTO consultation_requests
			(id, username, name, age, height_cm, weight_kg, problem, status, requested_at, doctor_reply)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		request.ID,
		request.Username,
		request.Name,
		request.Age,
		request.HeightCm,
		request.WeightKg,
		request.Problem,
		request.Status,
		request.RequestedAt,
		request.DoctorReply,
	)

	if err != nil {
		// The problem text is private health data; log the ID, never the content.
		log.Error("failed to create consultation request",
			slog.String("error", err.Error()),
			slog.String("request_id", request.ID.String()),
			slog.String("username", request.Username))
		return MapError(err)
	}

	log.Info("consultation request created successfully",
		slog.String("request_id", request.ID.String()),
		slog.String("username", request.Username),
		slog.String("status", string(request.Status)))
	return nil
}

// ListByUsername implements store.ConsultationStore.ListByUsername
// Requests come back newest-requested-first, truncated to limit.
func (s *PostgresConsultationStore) ListByUsername(
	ctx context.Context,
	username string,
	limit int,
) ([]*domain.ConsultationRequest, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, name, age, height_cm, weight_kg, problem, status, requested_at, doctor_reply
		FROM consultation_requests
		WHERE username = $1
		ORDER BY requested_at DESC
	`
	args := []any{username}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list consultation requests",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	requests := make([]*domain.ConsultationRequest, 0)
	for rows.Next() {
		var request domain.ConsultationRequest
		var status string
		err := rows.Scan(
			&request.ID,
			&request.Username,
			&request.Name,
			&request.Age,
			&request.HeightCm,
			&request.WeightKg,
			&request.Problem,
			&status,
			&request.RequestedAt,
			&request.DoctorReply,
		)
		if err != nil {
			log.Error("failed to scan consultation request row",
				slog.String("error", err.Error()),
				slog.String("username", username))
			return nil, MapError(err)
		}
		request.Status = domain.ConsultationStatus(status)
		requests = append(requests, &request)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("consultation requests listed",
		slog.String("username", username),
		slog.Int("count", len(requests)))
	return requests, nil
}

// WithTx implements store.ConsultationStore.WithTx
// It returns a new ConsultationStore that uses the provided transaction.
func (s *PostgresConsultationStore) WithTx(tx *sql.Tx) store.ConsultationStore {
	return &PostgresConsultationStore{
		db:     tx,
		logger: s.logger,
	}
}
