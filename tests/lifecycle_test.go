//go:build integration

package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

func seedDonor(t *testing.T) *repository.Donor {
	t.Helper()
	d := &repository.Donor{
		ID:               uuid.NewString(),
		FirebaseUID:      uuid.NewString(),
		Email:            uuid.NewString() + "@example.com",
		Name:             "Annapurna Kitchen",
		OrgName:          "Annapurna",
		IdentificationID: "ID-1",
		Address:          "14 MG Road",
		Contact:          "9800000000",
		OrgType:          "restaurant",
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, store.CreateDonorProfile(context.Background(), d))
	return d
}

func seedRecipient(t *testing.T) *repository.Recipient {
	t.Helper()
	r := &repository.Recipient{
		ID:          uuid.NewString(),
		FirebaseUID: uuid.NewString(),
		Email:       uuid.NewString() + "@example.com",
		Name:        "Asha Shelter",
		NGOName:     "Asha",
		NGOID:       "NGO-1",
		Address:     "5 Lake View",
		Contact:     "9800000001",
		OrgType:     "ngo",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, store.CreateRecipientProfile(context.Background(), r))
	return r
}

func seedVolunteer(t *testing.T, name string) *repository.Volunteer {
	t.Helper()
	v := &repository.Volunteer{
		ID:          uuid.NewString(),
		FirebaseUID: uuid.NewString(),
		Email:       uuid.NewString() + "@example.com",
		Name:        name,
		AadharID:    "AAD-1",
		Address:     "7 Hill Street",
		Contact:     "9800000002",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, store.CreateVolunteerProfile(context.Background(), v))
	return v
}

func donationInput(expiry time.Time, needsVolunteer bool) storage.CreateDonationInput {
	return storage.CreateDonationInput{
		FoodName:       "Veg Biryani",
		Quantity:       12,
		FoodType:       "veg",
		Address:        "14 MG Road",
		NeedsVolunteer: needsVolunteer,
		ExpiryAt:       expiry,
	}
}

// stageCounts returns how many rows the donation occupies in each lifecycle
// table, keyed by its original live id.
func stageCounts(t *testing.T, donationID string) (live, accepted, expired int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, tdb.DB.QueryRow(ctx,
		"SELECT count(*) FROM live_donations WHERE id = $1", donationID).Scan(&live))
	require.NoError(t, tdb.DB.QueryRow(ctx,
		"SELECT count(*) FROM accepted_donations WHERE original_donation_id = $1", donationID).Scan(&accepted))
	require.NoError(t, tdb.DB.QueryRow(ctx,
		"SELECT count(*) FROM expired_donations WHERE original_donation_id = $1", donationID).Scan(&expired))
	return live, accepted, expired
}

func TestDonationOccupiesExactlyOneStage(t *testing.T) {
	tdb.SetUp(t)
	defer tdb.TearDown(t)

	ctx := context.Background()
	donor := seedDonor(t)
	recipient := seedRecipient(t)

	donation, err := store.CreateDonation(ctx, donor, donationInput(time.Now().Add(4*time.Hour), false))
	require.NoError(t, err)

	live, accepted, expired := stageCounts(t, donation.ID)
	assert.Equal(t, [3]int{1, 0, 0}, [3]int{live, accepted, expired})

	_, err = store.AcceptDonation(ctx, donation.ID, recipient, nil)
	require.NoError(t, err)

	live, accepted, expired = stageCounts(t, donation.ID)
	assert.Equal(t, [3]int{0, 1, 0}, [3]int{live, accepted, expired})

	overdue, err := store.CreateDonation(ctx, donor, donationInput(time.Now().Add(-time.Hour), false))
	require.NoError(t, err)

	moved, err := store.SweepExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	live, accepted, expired = stageCounts(t, overdue.ID)
	assert.Equal(t, [3]int{0, 0, 1}, [3]int{live, accepted, expired})
}

func TestSweepTwiceMovesOnce(t *testing.T) {
	tdb.SetUp(t)
	defer tdb.TearDown(t)

	ctx := context.Background()
	donor := seedDonor(t)

	overdue, err := store.CreateDonation(ctx, donor, donationInput(time.Now().Add(-time.Hour), false))
	require.NoError(t, err)

	now := time.Now().UTC()
	moved, err := store.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	moved, err = store.SweepExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, moved)

	live, accepted, expired := stageCounts(t, overdue.ID)
	assert.Equal(t, [3]int{0, 0, 1}, [3]int{live, accepted, expired})
}

func TestAcceptBeatsSweepOnSameDonation(t *testing.T) {
	tdb.SetUp(t)
	defer tdb.TearDown(t)

	ctx := context.Background()
	donor := seedDonor(t)
	recipient := seedRecipient(t)

	donation, err := store.CreateDonation(ctx, donor, donationInput(time.Now().Add(time.Minute), false))
	require.NoError(t, err)

	_, err = store.AcceptDonation(ctx, donation.ID, recipient, nil)
	require.NoError(t, err)

	// The sweep runs with a deadline past the donation's expiry but finds
	// it already accepted; nothing moves and nothing duplicates.
	moved, err := store.SweepExpired(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, moved)

	live, accepted, expired := stageCounts(t, donation.ID)
	assert.Equal(t, [3]int{0, 1, 0}, [3]int{live, accepted, expired})
}

func TestConcurrentDeliveryAssignmentHasOneWinner(t *testing.T) {
	tdb.SetUp(t)
	defer tdb.TearDown(t)

	ctx := context.Background()
	donor := seedDonor(t)
	recipient := seedRecipient(t)
	volA := seedVolunteer(t, "Ravi")
	volB := seedVolunteer(t, "Meera")

	donation, err := store.CreateDonation(ctx, donor, donationInput(time.Now().Add(4*time.Hour), true))
	require.NoError(t, err)
	acceptedDonation, err := store.AcceptDonation(ctx, donation.ID, recipient, nil)
	require.NoError(t, err)
	require.Equal(t, repository.DeliveryNeedsVolunteer, acceptedDonation.DeliveryStatus)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i, vol := range []*repository.Volunteer{volA, volB} {
		go func(i int, vol *repository.Volunteer) {
			defer wg.Done()
			_, errs[i] = store.AcceptDelivery(ctx, acceptedDonation.ID, vol)
		}(i, vol)
	}
	wg.Wait()

	var winner *repository.Volunteer
	switch {
	case errs[0] == nil:
		winner = volA
		assert.ErrorIs(t, errs[1], storage.ErrAlreadyAssigned)
	case errs[1] == nil:
		winner = volB
		assert.ErrorIs(t, errs[0], storage.ErrAlreadyAssigned)
	default:
		t.Fatalf("both assignments failed: %v / %v", errs[0], errs[1])
	}

	var assignedTo string
	require.NoError(t, tdb.DB.QueryRow(ctx,
		"SELECT volunteer_id FROM accepted_donations WHERE id = $1", acceptedDonation.ID).Scan(&assignedTo))
	assert.Equal(t, winner.ID, assignedTo)

	var winnerDeliveries, loserDeliveries int
	loser := volB
	if winner == volB {
		loser = volA
	}
	require.NoError(t, tdb.DB.QueryRow(ctx,
		"SELECT deliveries FROM volunteers WHERE id = $1", winner.ID).Scan(&winnerDeliveries))
	require.NoError(t, tdb.DB.QueryRow(ctx,
		"SELECT deliveries FROM volunteers WHERE id = $1", loser.ID).Scan(&loserDeliveries))
	assert.Equal(t, 1, winnerDeliveries)
	assert.Equal(t, 0, loserDeliveries)
}
