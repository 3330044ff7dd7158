package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/mocks"
	"github.com/periodspal/periodspal-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiaryService_AddEntry(t *testing.T) {
	logger := testLogger()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("entry with symptoms and notes", func(t *testing.T) {
		diaryStore := mocks.NewMockDiaryStore()
		svc := service.NewDiaryService(diaryStore, nil, logger)

		entry, err := svc.AddEntry(
			context.Background(),
			"alice",
			day,
			[]domain.Symptom{domain.SymptomHeadache, domain.SymptomCramps},
			"rough morning",
		)

		require.NoError(t, err)
		assert.Equal(t, "alice", entry.Username)
		assert.Equal(t, "rough morning", entry.Notes)
		// Symptoms come back in canonical order regardless of input order.
		assert.Equal(t, []domain.Symptom{domain.SymptomCramps, domain.SymptomHeadache}, entry.Symptoms)
		require.Len(t, diaryStore.Entries, 1)
	})

	t.Run("unknown symptom rejected", func(t *testing.T) {
		diaryStore := mocks.NewMockDiaryStore()
		svc := service.NewDiaryService(diaryStore, nil, logger)

		_, err := svc.AddEntry(context.Background(), "alice", day, []domain.Symptom{"Vertigo"}, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownSymptom))
		assert.Empty(t, diaryStore.Entries)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		diaryStore := mocks.NewMockDiaryStore()
		diaryStore.CreateError = errors.New("connection reset")
		svc := service.NewDiaryService(diaryStore, nil, logger)

		_, err := svc.AddEntry(context.Background(), "alice", day, []domain.Symptom{domain.SymptomNone}, "")
		require.Error(t, err)
	})
}

func TestDiaryService_History(t *testing.T) {
	logger := testLogger()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("default limit", func(t *testing.T) {
		diaryStore := mocks.NewMockDiaryStore()
		svc := service.NewDiaryService(diaryStore, nil, logger)

		for i := 0; i < service.DefaultDiaryHistoryLimit+3; i++ {
			_, err := svc.AddEntry(
				context.Background(),
				"alice",
				day.AddDate(0, 0, i),
				[]domain.Symptom{domain.SymptomNone},
				"",
			)
			require.NoError(t, err)
		}

		entries, err := svc.History(context.Background(), "alice", 0)
		require.NoError(t, err)
		assert.Len(t, entries, service.DefaultDiaryHistoryLimit)
	})

	t.Run("entries are private per account", func(t *testing.T) {
		diaryStore := mocks.NewMockDiaryStore()
		svc := service.NewDiaryService(diaryStore, nil, logger)

		_, err := svc.AddEntry(context.Background(), "alice", day, []domain.Symptom{domain.SymptomCramps}, "mine")
		require.NoError(t, err)
		_, err = svc.AddEntry(context.Background(), "bob", day, []domain.Symptom{domain.SymptomNausea}, "his")
		require.NoError(t, err)

		entries, err := svc.History(context.Background(), "alice", 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "mine", entries[0].Notes)
	})
}
