package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/periodspal/periodspal-api/internal/domain"
	"github.com/periodspal/periodspal-api/internal/mocks"
	"github.com/periodspal/periodspal-api/internal/service"
	"github.com/periodspal/periodspal-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredAccount(t *testing.T, username string) *domain.Account {
	t.Helper()
	account, err := domain.NewAccount(username, "s3cret", "Alice", 28, 165, 60)
	require.NoError(t, err)
	account.HashedPassword = "hashed:s3cret"
	account.Password = ""
	return account
}

func TestConsultationService_Request(t *testing.T) {
	logger := testLogger()

	t.Run("snapshots the account", func(t *testing.T) {
		accountStore := mocks.NewMockAccountStore()
		accountStore.Accounts["alice"] = newStoredAccount(t, "alice")
		consultationStore := mocks.NewMockConsultationStore()

		svc := service.NewConsultationService(consultationStore, accountStore, nil, logger)

		request, err := svc.Request(context.Background(), "alice", "persistent cramps")
		require.NoError(t, err)

		assert.Equal(t, "alice", request.Username)
		assert.Equal(t, "Alice", request.Name)
		assert.Equal(t, 28, request.Age)
		assert.Equal(t, 165, request.HeightCm)
		assert.Equal(t, 60, request.WeightKg)
		assert.Equal(t, "persistent cramps", request.Problem)
		assert.Equal(t, domain.ConsultationStatusRequested, request.Status)
		assert.Empty(t, request.DoctorReply)
		require.Len(t, consultationStore.Requests, 1)
	})

	t.Run("snapshot survives later profile edits", func(t *testing.T) {
		accountStore := mocks.NewMockAccountStore()
		account := newStoredAccount(t, "alice")
		accountStore.Accounts["alice"] = account
		consultationStore := mocks.NewMockConsultationStore()

		svc := service.NewConsultationService(consultationStore, accountStore, nil, logger)

		request, err := svc.Request(context.Background(), "alice", "persistent cramps")
		require.NoError(t, err)

		account.Name = "Alice B"
		account.Age = 35
		account.WeightKg = 70

		history, err := svc.History(context.Background(), "alice", 0)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, request.ID, history[0].ID)
		assert.Equal(t, "Alice", history[0].Name)
		assert.Equal(t, 28, history[0].Age)
		assert.Equal(t, 60, history[0].WeightKg)
	})

	t.Run("unknown account", func(t *testing.T) {
		accountStore := mocks.NewMockAccountStore()
		consultationStore := mocks.NewMockConsultationStore()

		svc := service.NewConsultationService(consultationStore, accountStore, nil, logger)

		_, err := svc.Request(context.Background(), "nobody", "anything")
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrAccountNotFound))
		assert.Empty(t, consultationStore.Requests)
	})

	t.Run("empty problem rejected", func(t *testing.T) {
		accountStore := mocks.NewMockAccountStore()
		accountStore.Accounts["alice"] = newStoredAccount(t, "alice")
		consultationStore := mocks.NewMockConsultationStore()

		svc := service.NewConsultationService(consultationStore, accountStore, nil, logger)

		_, err := svc.Request(context.Background(), "alice", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrEmptyProblem))
		assert.Empty(t, consultationStore.Requests)
	})
}

func TestConsultationService_History(t *testing.T) {
	logger := testLogger()

	t.Run("newest first with default limit", func(t *testing.T) {
		accountStore := mocks.NewMockAccountStore()
		accountStore.Accounts["alice"] = newStoredAccount(t, "alice")
		consultationStore := mocks.NewMockConsultationStore()

		svc := service.NewConsultationService(consultationStore, accountStore, nil, logger)

		problems := []string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh"}
		for _, p := range problems {
			_, err := svc.Request(context.Background(), "alice", p)
			require.NoError(t, err)
		}

		history, err := svc.History(context.Background(), "alice", 0)
		require.NoError(t, err)
		require.Len(t, history, service.DefaultConsultationHistoryLimit)
		assert.Equal(t, "seventh", history[0].Problem)
	})

	t.Run("empty history is an empty slice", func(t *testing.T) {
		accountStore := mocks.NewMockAccountStore()
		consultationStore := mocks.NewMockConsultationStore()

		svc := service.NewConsultationService(consultationStore, accountStore, nil, logger)

		history, err := svc.History(context.Background(), "alice", 0)
		require.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})
}
