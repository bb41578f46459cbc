package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "github.com/kindmeals/backend/internal/db/mocks"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/repository/postgresql"
)

func TestAcceptedDonationRepo_AssignVolunteerTx(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending row transitions to assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewAcceptedDonationRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Eq("acc-1"),
			gomock.Eq(repository.DeliveryAssigned),
			gomock.Eq("vol-1"), gomock.Eq("Rider"), gomock.Eq("333"), gomock.Eq(at),
			gomock.Eq(repository.DeliveryNeedsVolunteer),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		ok, err := repo.AssignVolunteerTx(ctx, mockTx, "acc-1", "vol-1", "Rider", "333", at)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("already assigned row is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewAcceptedDonationRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("UPDATE 0"), nil)

		ok, err := repo.AssignVolunteerTx(ctx, mockTx, "acc-1", "vol-2", "Other", "444", at)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAcceptedDonationRepo_MarkDeliveredTx(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned volunteer completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewAcceptedDonationRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Eq("acc-1"), gomock.Eq("vol-1"),
			gomock.Eq(repository.DeliveryDelivered),
			gomock.Eq(repository.DeliveryAssigned),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		ok, err := repo.MarkDeliveredTx(ctx, mockTx, "acc-1", "vol-1")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("someone else's assignment does not match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewAcceptedDonationRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("UPDATE 0"), nil)

		ok, err := repo.MarkDeliveredTx(ctx, mockTx, "acc-1", "vol-9")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestAcceptedDonationRepo_UpdateFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewAcceptedDonationRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Eq("missing"), gomock.Eq("tasty"),
		).Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateFeedback(ctx, "missing", "tasty")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestAcceptedDonationRepo_ListPending(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewAcceptedDonationRepo(mockDB)

	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(repository.DeliveryNeedsVolunteer)).
		Return(nil)

	donations, err := repo.ListPending(ctx)
	assert.NoError(t, err)
	assert.Empty(t, donations)
}
