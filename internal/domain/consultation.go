package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ConsultationStatus represents the review state of a consultation request.
type ConsultationStatus string

// Possible consultation status values. Every request is created as
// "requested"; the answered and closed states are reserved for a
// clinician-facing collaborator that does not exist yet. No operation
// in this codebase transitions a request away from "requested".
const (
	ConsultationStatusRequested ConsultationStatus = "requested"
	ConsultationStatusAnswered  ConsultationStatus = "answered"
	ConsultationStatusClosed    ConsultationStatus = "closed"
)

// Common validation errors for ConsultationRequest
var (
	ErrEmptyConsultationID       = errors.New("consultation request ID cannot be empty")
	ErrEmptyConsultationUsername = errors.New("consultation request username cannot be empty")
	ErrEmptyProblem              = errors.New("consultation problem cannot be empty")
	ErrInvalidConsultationStatus = errors.New("invalid consultation status")
)

// ConsultationRequest is an append-only request for clinician review.
// The demographic fields are a snapshot of the account at request time,
// not a live link: later profile edits do not change past requests.
type ConsultationRequest struct {
	ID          uuid.UUID          `json:"id"`
	Username    string             `json:"username"`
	Name        string             `json:"name"`
	Age         int                `json:"age"`
	HeightCm    int                `json:"height_cm"`
	WeightKg    int                `json:"weight_kg"`
	Problem     string             `json:"problem"`
	Status      ConsultationStatus `json:"status"`
	RequestedAt time.Time          `json:"requested_at"`
	DoctorReply string             `json:"doctor_reply"`
}

// NewConsultationRequest creates a new ConsultationRequest for the given
// account, copying the demographic fields from the account as it stands
// at call time. Status is always "requested" and the reply starts empty.
// Returns an error if validation fails.
func NewConsultationRequest(account *Account, problem string) (*ConsultationRequest, error) {
	request := &ConsultationRequest{
		ID:          uuid.New(),
		Username:    account.Username,
		Name:        account.Name,
		Age:         account.Age,
		HeightCm:    account.HeightCm,
		WeightKg:    account.WeightKg,
		Problem:     problem,
		Status:      ConsultationStatusRequested,
		RequestedAt: time.Now().UTC(),
		DoctorReply: "",
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	return request, nil
}

// Validate checks if the ConsultationRequest has valid data.
// Returns an error if any field fails validation.
func (c *ConsultationRequest) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyConsultationID
	}

	if c.Username == "" {
		return ErrEmptyConsultationUsername
	}

	if c.Problem == "" {
		return ErrEmptyProblem
	}

	if !isValidConsultationStatus(c.Status) {
		return ErrInvalidConsultationStatus
	}

	return nil
}

// isValidConsultationStatus checks if the given status is a valid ConsultationStatus.
func isValidConsultationStatus(status ConsultationStatus) bool {
	switch status {
	case ConsultationStatusRequested, ConsultationStatusAnswered, ConsultationStatusClosed:
		return true
	default:
		return false
	}
}
