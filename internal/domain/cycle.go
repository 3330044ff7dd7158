package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Cycle length bounds accepted by the tracker form. These are input
// constraints enforced at the request boundary; the domain deliberately
// does not re-check them so stored history is read back verbatim.
const (
	MinCycleLen = 20
	MaxCycleLen = 45
)

// Common validation errors for CycleRecord
var (
	ErrEmptyCycleID       = errors.New("cycle record ID cannot be empty")
	ErrEmptyCycleUsername = errors.New("cycle record username cannot be empty")
	ErrZeroCycleStart     = errors.New("cycle start date cannot be zero")
	ErrNonPositiveCycle   = errors.New("cycle length must be positive")
)

// CycleRecord captures one cycle prediction: the reported start date of
// the last period, the average cycle length in days, and the computed
// expected start of the next one. History is cumulative; identical
// repeated submissions create repeated rows.
type CycleRecord struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	LastStart    time.Time `json:"last_start"`
	CycleLen     int       `json:"cycle_len"`
	ExpectedNext time.Time `json:"expected_next"`
	CreatedAt    time.Time `json:"created_at"`
}

// PredictNext computes the expected start of the next cycle using plain
// calendar arithmetic: lastStart + cycleLen days. No timezone handling,
// no business-day logic.
func PredictNext(lastStart time.Time, cycleLen int) time.Time {
	return lastStart.AddDate(0, 0, cycleLen)
}

// NewCycleRecord creates a new CycleRecord for the given account.
// ExpectedNext is always derived via PredictNext and never set independently.
// Returns an error if validation fails.
func NewCycleRecord(username string, lastStart time.Time, cycleLen int) (*CycleRecord, error) {
	record := &CycleRecord{
		ID:           uuid.New(),
		Username:     username,
		LastStart:    lastStart,
		CycleLen:     cycleLen,
		ExpectedNext: PredictNext(lastStart, cycleLen),
		CreatedAt:    time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the CycleRecord has valid data.
// Returns an error if any field fails validation.
func (c *CycleRecord) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCycleID
	}

	if c.Username == "" {
		return ErrEmptyCycleUsername
	}

	if c.LastStart.IsZero() {
		return ErrZeroCycleStart
	}

	if c.CycleLen <= 0 {
		return ErrNonPositiveCycle
	}

	return nil
}
