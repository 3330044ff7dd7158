package domain

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNormalizeSymptoms(t *testing.T) {
	// Insertion order must not matter
	a, err := NormalizeSymptoms([]Symptom{SymptomHeadache, SymptomCramps})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	b, err := NormalizeSymptoms([]Symptom{SymptomCramps, SymptomHeadache})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected order-insensitive normalization, got %v vs %v", a, b)
	}

	// Duplicates collapse
	c, err := NormalizeSymptoms([]Symptom{SymptomCramps, SymptomCramps})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(c) != 1 {
		t.Errorf("Expected duplicates to collapse, got %v", c)
	}

	// Unknown tag rejected
	if _, err := NormalizeSymptoms([]Symptom{"Sleepy"}); err != ErrUnknownSymptom {
		t.Errorf("Expected error %v, got %v", ErrUnknownSymptom, err)
	}
}

func TestSymptomsRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		symptoms []Symptom
		joined   string
	}{
		{
			name:     "two_tags_canonical_order",
			symptoms: []Symptom{SymptomHeadache, SymptomCramps},
			joined:   "Cramps|Headache",
		},
		{
			name:     "single_tag",
			symptoms: []Symptom{SymptomHeavyFlow},
			joined:   "Heavy flow",
		},
		{
			name:     "empty_set",
			symptoms: nil,
			joined:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := NormalizeSymptoms(tt.symptoms)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			joined := JoinSymptoms(normalized)
			if joined != tt.joined {
				t.Errorf("JoinSymptoms = %q, want %q", joined, tt.joined)
			}

			parsed, err := ParseSymptoms(joined)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !reflect.DeepEqual(parsed, normalized) {
				t.Errorf("Round trip mismatch: %v != %v", parsed, normalized)
			}
		})
	}
}

func TestNewDiaryEntry(t *testing.T) {
	day := date(2024, time.March, 5)
	entry, err := NewDiaryEntry("alice", day, []Symptom{SymptomHeadache, SymptomCramps}, "rough day")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if !reflect.DeepEqual(entry.Symptoms, []Symptom{SymptomCramps, SymptomHeadache}) {
		t.Errorf("Expected canonical symptom order, got %v", entry.Symptoms)
	}

	if entry.Notes != "rough day" {
		t.Errorf("Expected notes to be carried, got %q", entry.Notes)
	}

	if entry.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Empty symptom set is allowed
	entry, err = NewDiaryEntry("alice", day, nil, "")
	if err != nil {
		t.Fatalf("Expected no error for empty symptom set, got %v", err)
	}
	if len(entry.Symptoms) != 0 {
		t.Errorf("Expected empty symptom set, got %v", entry.Symptoms)
	}

	// Test empty username
	_, err = NewDiaryEntry("", day, nil, "")
	if err != ErrEmptyDiaryUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyDiaryUsername, err)
	}

	// Test zero date
	_, err = NewDiaryEntry("alice", time.Time{}, nil, "")
	if err != ErrZeroDiaryDate {
		t.Errorf("Expected error %v, got %v", ErrZeroDiaryDate, err)
	}

	// Test unknown symptom
	_, err = NewDiaryEntry("alice", day, []Symptom{"Sleepy"}, "")
	if err != ErrUnknownSymptom {
		t.Errorf("Expected error %v, got %v", ErrUnknownSymptom, err)
	}
}
