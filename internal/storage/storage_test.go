package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "github.com/kindmeals/backend/internal/db/mocks"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
	storage_mocks "github.com/kindmeals/backend/internal/storage/mocks"
)

type storeMocks struct {
	db            *mock_database.MockDB
	live          *storage_mocks.MockLiveDonationRepository
	accepted      *storage_mocks.MockAcceptedDonationRepository
	expired       *storage_mocks.MockExpiredDonationRepository
	final         *storage_mocks.MockFinalDonationRepository
	donors        *storage_mocks.MockDonorRepository
	recipients    *storage_mocks.MockRecipientRepository
	volunteers    *storage_mocks.MockVolunteerRepository
	notifications *storage_mocks.MockNotificationRepository
	admins        *storage_mocks.MockAdminRepository
	outbox        *storage_mocks.MockOutboxTaskRepository
}

func newTestStorage(ctrl *gomock.Controller) (*storage.PostgresStorage, *storeMocks) {
	m := &storeMocks{
		db:            mock_database.NewMockDB(ctrl),
		live:          storage_mocks.NewMockLiveDonationRepository(ctrl),
		accepted:      storage_mocks.NewMockAcceptedDonationRepository(ctrl),
		expired:       storage_mocks.NewMockExpiredDonationRepository(ctrl),
		final:         storage_mocks.NewMockFinalDonationRepository(ctrl),
		donors:        storage_mocks.NewMockDonorRepository(ctrl),
		recipients:    storage_mocks.NewMockRecipientRepository(ctrl),
		volunteers:    storage_mocks.NewMockVolunteerRepository(ctrl),
		notifications: storage_mocks.NewMockNotificationRepository(ctrl),
		admins:        storage_mocks.NewMockAdminRepository(ctrl),
		outbox:        storage_mocks.NewMockOutboxTaskRepository(ctrl),
	}
	s := storage.NewPostgresStorage(
		m.db, m.live, m.accepted, m.expired, m.final,
		m.donors, m.recipients, m.volunteers, m.notifications,
		m.admins, m.outbox, "kindmeals_events", zap.NewNop(),
	)
	return s, m
}

// newClosedTx returns a transaction mock whose rollback is tolerated at any
// point; the storage layer always defers a rollback past commit.
func newClosedTx(ctrl *gomock.Controller) *mock_database.MockTx {
	tx := mock_database.NewMockTx(ctrl)
	tx.EXPECT().Rollback(gomock.Any()).Return(pgx.ErrTxClosed).AnyTimes()
	return tx
}

func liveFixture(id string) *repository.LiveDonation {
	return &repository.LiveDonation{
		ID:             id,
		DonorID:        "donor-1",
		DonorName:      "Annapurna Kitchen",
		FoodName:       "Veg Biryani",
		Quantity:       12,
		FoodType:       "veg",
		Address:        "14 MG Road",
		NeedsVolunteer: true,
		ExpiryAt:       time.Now().UTC().Add(2 * time.Hour),
		UploadedAt:     time.Now().UTC().Add(-time.Hour),
		Version:        1,
	}
}

func recipientFixture() *repository.Recipient {
	return &repository.Recipient{
		ID:      "rec-1",
		Name:    "Asha Shelter",
		Contact: "9800000001",
		Address: "5 Lake View",
	}
}

func volunteerFixture() *repository.Volunteer {
	return &repository.Volunteer{
		ID:      "vol-1",
		Name:    "Ravi",
		Contact: "9800000002",
	}
}

func TestAcceptDonationPreferenceResolution(t *testing.T) {
	ctx := context.Background()
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name       string
		donation   func() *repository.LiveDonation
		override   *bool
		wantStatus repository.DeliveryStatus
	}{
		{
			name:       "donor flag is the default",
			donation:   func() *repository.LiveDonation { return liveFixture("don-1") },
			override:   nil,
			wantStatus: repository.DeliveryNeedsVolunteer,
		},
		{
			name: "recipient override wins",
			donation: func() *repository.LiveDonation {
				d := liveFixture("don-1")
				d.NeedsVolunteer = false
				return d
			},
			override:   boolPtr(true),
			wantStatus: repository.DeliveryNeedsVolunteer,
		},
		{
			name:       "override to self pickup",
			donation:   func() *repository.LiveDonation { return liveFixture("don-1") },
			override:   boolPtr(false),
			wantStatus: repository.DeliverySelfPickup,
		},
		{
			name: "pre-claimed volunteer carries over",
			donation: func() *repository.LiveDonation {
				d := liveFixture("don-1")
				volID, volName, volContact := "vol-1", "Ravi", "9800000002"
				at := time.Now().UTC().Add(-10 * time.Minute)
				d.VolunteerID = &volID
				d.VolunteerName = &volName
				d.VolunteerContact = &volContact
				d.AssignedAt = &at
				return d
			},
			override:   nil,
			wantStatus: repository.DeliveryAssigned,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestStorage(ctrl)
			tx := newClosedTx(ctrl)
			donation := tc.donation()

			m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
			m.live.EXPECT().GetByIDTx(ctx, tx, "don-1").Return(donation, nil)

			var inserted *repository.AcceptedDonation
			m.accepted.EXPECT().CreateTx(ctx, tx, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ interface{}, d *repository.AcceptedDonation) error {
					inserted = d
					return nil
				})
			m.live.EXPECT().DeleteTx(ctx, tx, "don-1").Return(nil)
			m.notifications.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(nil)
			m.outbox.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(nil)
			tx.EXPECT().Commit(ctx).Return(nil)

			accepted, err := s.AcceptDonation(ctx, "don-1", recipientFixture(), tc.override)
			require.NoError(t, err)
			require.NotNil(t, inserted)
			assert.Equal(t, tc.wantStatus, accepted.DeliveryStatus)
			assert.Equal(t, donation.ID, accepted.OriginalDonationID)
			assert.Equal(t, "rec-1", accepted.AcceptedBy)
			if tc.wantStatus == repository.DeliveryAssigned {
				require.NotNil(t, accepted.VolunteerID)
				assert.Equal(t, "vol-1", *accepted.VolunteerID)
			} else {
				assert.Nil(t, accepted.VolunteerID)
			}
		})
	}
}

func TestAcceptDonationExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestStorage(ctrl)
	tx := newClosedTx(ctrl)

	donation := liveFixture("don-1")
	donation.ExpiryAt = time.Now().UTC().Add(-time.Minute)

	m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
	m.live.EXPECT().GetByIDTx(ctx, tx, "don-1").Return(donation, nil)

	accepted, err := s.AcceptDonation(ctx, "don-1", recipientFixture(), nil)
	assert.ErrorIs(t, err, storage.ErrExpired)
	assert.Nil(t, accepted)
}

func TestAcceptDonationNotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestStorage(ctrl)
	tx := newClosedTx(ctrl)

	m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
	m.live.EXPECT().GetByIDTx(ctx, tx, "missing").Return(nil, repository.ErrObjectNotFound)

	_, err := s.AcceptDonation(ctx, "missing", recipientFixture(), nil)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSweepExpiredContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestStorage(ctrl)
	now := time.Now().UTC()

	first := liveFixture("don-1")
	second := liveFixture("don-2")
	first.ExpiryAt = now.Add(-time.Hour)
	second.ExpiryAt = now.Add(-time.Hour)

	m.live.EXPECT().ListDue(ctx, now).Return([]*repository.LiveDonation{first, second}, nil)

	// First record fails at transaction start and is skipped.
	m.db.EXPECT().BeginTx(ctx).Return(nil, errors.New("connection reset"))

	tx := newClosedTx(ctrl)
	m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
	m.live.EXPECT().GetByIDTx(ctx, tx, "don-2").Return(second, nil)
	m.expired.EXPECT().CreateTx(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ interface{}, d *repository.ExpiredDonation) error {
			assert.Equal(t, "don-2", d.OriginalDonationID)
			assert.Equal(t, "Expired", d.Status)
			return nil
		})
	m.live.EXPECT().DeleteTx(ctx, tx, "don-2").Return(nil)
	m.notifications.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(nil)
	m.outbox.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(nil)
	tx.EXPECT().Commit(ctx).Return(nil)

	moved, err := s.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
}

func TestSweepExpiredSkipsRowsTakenMeanwhile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestStorage(ctrl)
	now := time.Now().UTC()

	listed := liveFixture("don-1")
	listed.ExpiryAt = now.Add(-time.Minute)

	m.live.EXPECT().ListDue(ctx, now).Return([]*repository.LiveDonation{listed}, nil)

	// The donation was accepted between the listing and the lock; that is
	// not an error, and it does not count as moved.
	tx := newClosedTx(ctrl)
	m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
	m.live.EXPECT().GetByIDTx(ctx, tx, "don-1").Return(nil, repository.ErrObjectNotFound)

	moved, err := s.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, moved)
}

func TestClaimOpportunity(t *testing.T) {
	ctx := context.Background()

	t.Run("wins the conditional update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)
		vol := volunteerFixture()

		claimed := liveFixture("don-1")
		claimed.VolunteerID = &vol.ID

		m.live.EXPECT().AssignVolunteer(ctx, "don-1", "vol-1", "Ravi", "9800000002", gomock.Any()).
			Return(true, nil)
		m.live.EXPECT().GetByID(ctx, "don-1").Return(claimed, nil)

		got, err := s.ClaimOpportunity(ctx, "don-1", vol)
		require.NoError(t, err)
		require.NotNil(t, got.VolunteerID)
		assert.Equal(t, "vol-1", *got.VolunteerID)
	})

	lossCases := []struct {
		name     string
		donation func() *repository.LiveDonation
		fetchErr error
		wantErr  error
	}{
		{
			name:     "donation gone",
			fetchErr: repository.ErrObjectNotFound,
			wantErr:  storage.ErrNotFound,
		},
		{
			name: "donation expired",
			donation: func() *repository.LiveDonation {
				d := liveFixture("don-1")
				d.ExpiryAt = time.Now().UTC().Add(-time.Minute)
				return d
			},
			wantErr: storage.ErrExpired,
		},
		{
			name: "self pickup donation",
			donation: func() *repository.LiveDonation {
				d := liveFixture("don-1")
				d.NeedsVolunteer = false
				return d
			},
			wantErr: storage.ErrNoVolunteerNeeded,
		},
		{
			name: "another volunteer got there first",
			donation: func() *repository.LiveDonation {
				d := liveFixture("don-1")
				other := "vol-2"
				d.VolunteerID = &other
				return d
			},
			wantErr: storage.ErrAlreadyAssigned,
		},
	}

	for _, tc := range lossCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestStorage(ctrl)

			m.live.EXPECT().AssignVolunteer(ctx, "don-1", "vol-1", "Ravi", "9800000002", gomock.Any()).
				Return(false, nil)
			if tc.fetchErr != nil {
				m.live.EXPECT().GetByID(ctx, "don-1").Return(nil, tc.fetchErr)
			} else {
				m.live.EXPECT().GetByID(ctx, "don-1").Return(tc.donation(), nil)
			}

			_, err := s.ClaimOpportunity(ctx, "don-1", volunteerFixture())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func acceptedFixture(id string) *repository.AcceptedDonation {
	return &repository.AcceptedDonation{
		ID:                 id,
		OriginalDonationID: "don-1",
		DonorID:            "donor-1",
		DonorName:          "Annapurna Kitchen",
		AcceptedBy:         "rec-1",
		RecipientName:      "Asha Shelter",
		RecipientContact:   "9800000001",
		RecipientAddress:   "5 Lake View",
		FoodName:           "Veg Biryani",
		Quantity:           12,
		FoodType:           "veg",
		DeliveryStatus:     repository.DeliveryNeedsVolunteer,
		ExpiryAt:           time.Now().UTC().Add(time.Hour),
		UploadedAt:         time.Now().UTC().Add(-2 * time.Hour),
		AcceptedAt:         time.Now().UTC().Add(-time.Hour),
		Version:            1,
	}
}

func TestAcceptDelivery(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns and notifies both parties", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)
		tx := newClosedTx(ctrl)
		vol := volunteerFixture()

		m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
		m.accepted.EXPECT().AssignVolunteerTx(ctx, tx, "acc-1", "vol-1", "Ravi", "9800000002", gomock.Any()).
			Return(true, nil)
		m.volunteers.EXPECT().IncrementDeliveriesTx(ctx, tx, "vol-1").Return(nil)
		m.accepted.EXPECT().GetByID(ctx, "acc-1").Return(acceptedFixture("acc-1"), nil)
		m.notifications.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(nil).Times(2)
		m.outbox.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(nil)
		tx.EXPECT().Commit(ctx).Return(nil)

		got, err := s.AcceptDelivery(ctx, "acc-1", vol)
		require.NoError(t, err)
		assert.Equal(t, repository.DeliveryAssigned, got.DeliveryStatus)
		require.NotNil(t, got.VolunteerID)
		assert.Equal(t, "vol-1", *got.VolunteerID)
		require.NotNil(t, got.AssignedAt)
	})

	t.Run("loses to a concurrent volunteer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)
		tx := newClosedTx(ctrl)

		taken := acceptedFixture("acc-1")
		other := "vol-2"
		taken.VolunteerID = &other
		taken.DeliveryStatus = repository.DeliveryAssigned

		m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
		m.accepted.EXPECT().AssignVolunteerTx(ctx, tx, "acc-1", "vol-1", "Ravi", "9800000002", gomock.Any()).
			Return(false, nil)
		m.accepted.EXPECT().GetByID(ctx, "acc-1").Return(taken, nil)

		_, err := s.AcceptDelivery(ctx, "acc-1", volunteerFixture())
		assert.ErrorIs(t, err, storage.ErrAlreadyAssigned)
	})

	t.Run("self pickup donation rejects volunteers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)
		tx := newClosedTx(ctrl)

		selfPickup := acceptedFixture("acc-1")
		selfPickup.DeliveryStatus = repository.DeliverySelfPickup

		m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
		m.accepted.EXPECT().AssignVolunteerTx(ctx, tx, "acc-1", "vol-1", "Ravi", "9800000002", gomock.Any()).
			Return(false, nil)
		m.accepted.EXPECT().GetByID(ctx, "acc-1").Return(selfPickup, nil)

		_, err := s.AcceptDelivery(ctx, "acc-1", volunteerFixture())
		assert.ErrorIs(t, err, storage.ErrNoVolunteerNeeded)
	})
}

func TestCompleteDelivery(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the final record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)
		tx := newClosedTx(ctrl)
		vol := volunteerFixture()

		assignedAt := time.Now().UTC().Add(-30 * time.Minute)
		accepted := acceptedFixture("acc-1")
		accepted.DeliveryStatus = repository.DeliveryAssigned
		accepted.VolunteerID = &vol.ID
		accepted.VolunteerName = &vol.Name
		accepted.VolunteerContact = &vol.Contact
		accepted.AssignedAt = &assignedAt

		m.accepted.EXPECT().GetByID(ctx, "acc-1").Return(accepted, nil)
		m.donors.EXPECT().GetByID(ctx, "donor-1").
			Return(&repository.Donor{ID: "donor-1", Name: "Annapurna Kitchen", Contact: "9800000000"}, nil)
		m.db.EXPECT().BeginTx(ctx).Return(tx, nil)
		m.accepted.EXPECT().MarkDeliveredTx(ctx, tx, "acc-1", "vol-1").Return(true, nil)

		var final *repository.FinalDonation
		m.final.EXPECT().CreateTx(ctx, tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, f *repository.FinalDonation) error {
				final = f
				return nil
			})
		m.notifications.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(nil).Times(2)
		m.outbox.EXPECT().CreateTx(ctx, tx, gomock.Any()).Return(nil)
		tx.EXPECT().Commit(ctx).Return(nil)

		got, err := s.CompleteDelivery(ctx, "acc-1", vol)
		require.NoError(t, err)
		require.NotNil(t, final)
		assert.Equal(t, "acc-1", got.AcceptedDonationID)
		assert.Equal(t, "9800000000", got.DonorContact)
		assert.Equal(t, assignedAt, got.PickedUpAt)
		assert.Equal(t, "vol-1", got.VolunteerID)
	})

	t.Run("only the assigned volunteer may complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)

		other := "vol-2"
		accepted := acceptedFixture("acc-1")
		accepted.DeliveryStatus = repository.DeliveryAssigned
		accepted.VolunteerID = &other

		m.accepted.EXPECT().GetByID(ctx, "acc-1").Return(accepted, nil)

		_, err := s.CompleteDelivery(ctx, "acc-1", volunteerFixture())
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("unassigned delivery cannot be completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)

		m.accepted.EXPECT().GetByID(ctx, "acc-1").Return(acceptedFixture("acc-1"), nil)

		_, err := s.CompleteDelivery(ctx, "acc-1", volunteerFixture())
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})
}

func TestAddFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("owner updates feedback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)

		m.accepted.EXPECT().GetByID(ctx, "acc-1").Return(acceptedFixture("acc-1"), nil)
		m.accepted.EXPECT().UpdateFeedback(ctx, "acc-1", "fresh and on time").Return(nil)

		got, err := s.AddFeedback(ctx, "acc-1", "rec-1", "fresh and on time")
		require.NoError(t, err)
		assert.Equal(t, "fresh and on time", got.Feedback)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestStorage(ctrl)

		m.accepted.EXPECT().GetByID(ctx, "acc-1").Return(acceptedFixture("acc-1"), nil)

		_, err := s.AddFeedback(ctx, "acc-1", "rec-2", "nice")
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})
}
