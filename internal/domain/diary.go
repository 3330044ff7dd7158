package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Symptom is one of the enumerated tags a diary entry can carry.
type Symptom string

// The symptom tags offered by the diary form.
const (
	SymptomCramps    Symptom = "Cramps"
	SymptomHeadache  Symptom = "Headache"
	SymptomNausea    Symptom = "Nausea"
	SymptomMoodSwing Symptom = "Mood swing"
	SymptomHeavyFlow Symptom = "Heavy flow"
	SymptomNone      Symptom = "None"
)

// symptomOrder fixes the canonical storage order so that the serialized
// form is insensitive to the order symptoms were selected in.
var symptomOrder = []Symptom{
	SymptomCramps,
	SymptomHeadache,
	SymptomNausea,
	SymptomMoodSwing,
	SymptomHeavyFlow,
	SymptomNone,
}

// SymptomDelimiter separates symptoms in the stored string form.
const SymptomDelimiter = "|"

// Common validation errors for DiaryEntry
var (
	ErrEmptyDiaryID       = errors.New("diary entry ID cannot be empty")
	ErrEmptyDiaryUsername = errors.New("diary entry username cannot be empty")
	ErrZeroDiaryDate      = errors.New("diary entry date cannot be zero")
	ErrUnknownSymptom     = errors.New("unknown symptom tag")
)

// IsValidSymptom reports whether s is one of the enumerated tags.
func IsValidSymptom(s Symptom) bool {
	for _, known := range symptomOrder {
		if s == known {
			return true
		}
	}
	return false
}

// NormalizeSymptoms deduplicates the given symptoms and returns them in
// canonical order. Returns ErrUnknownSymptom if any tag is not enumerated.
func NormalizeSymptoms(symptoms []Symptom) ([]Symptom, error) {
	seen := make(map[Symptom]bool, len(symptoms))
	for _, s := range symptoms {
		if !IsValidSymptom(s) {
			return nil, ErrUnknownSymptom
		}
		seen[s] = true
	}

	normalized := make([]Symptom, 0, len(seen))
	for _, s := range symptomOrder {
		if seen[s] {
			normalized = append(normalized, s)
		}
	}
	return normalized, nil
}

// JoinSymptoms serializes symptoms into the delimited storage form.
// An empty set serializes to the empty string.
func JoinSymptoms(symptoms []Symptom) string {
	if len(symptoms) == 0 {
		return ""
	}
	parts := make([]string, len(symptoms))
	for i, s := range symptoms {
		parts[i] = string(s)
	}
	return strings.Join(parts, SymptomDelimiter)
}

// ParseSymptoms parses the delimited storage form back into a symptom set.
// The empty string parses to an empty set.
func ParseSymptoms(raw string) ([]Symptom, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, SymptomDelimiter)
	symptoms := make([]Symptom, len(parts))
	for i, p := range parts {
		symptoms[i] = Symptom(p)
	}
	return NormalizeSymptoms(symptoms)
}

// DiaryEntry is a private, append-only note for a single account:
// a date, an order-insignificant set of symptom tags, and free text.
type DiaryEntry struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Date      time.Time `json:"date"`
	Symptoms  []Symptom `json:"symptoms"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDiaryEntry creates a new DiaryEntry for the given account.
// Symptoms are normalized to canonical order; an empty set is allowed.
// Returns an error if validation fails.
func NewDiaryEntry(username string, date time.Time, symptoms []Symptom, notes string) (*DiaryEntry, error) {
	normalized, err := NormalizeSymptoms(symptoms)
	if err != nil {
		return nil, err
	}

	entry := &DiaryEntry{
		ID:        uuid.New(),
		Username:  username,
		Date:      date,
		Symptoms:  normalized,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the DiaryEntry has valid data.
// Returns an error if any field fails validation.
func (d *DiaryEntry) Validate() error {
	if d.ID == uuid.Nil {
		return ErrEmptyDiaryID
	}

	if d.Username == "" {
		return ErrEmptyDiaryUsername
	}

	if d.Date.IsZero() {
		return ErrZeroDiaryDate
	}

	for _, s := range d.Symptoms {
		if !IsValidSymptom(s) {
			return ErrUnknownSymptom
		}
	}

	return nil
}
