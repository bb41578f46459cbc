package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/metrics"
	"github.com/kindmeals/backend/internal/repository"
)

func (s *PostgresStorage) CreateDonation(ctx context.Context, donor *repository.Donor, input CreateDonationInput) (*repository.LiveDonation, error) {
	now := time.Now().UTC()
	donation := &repository.LiveDonation{
		ID:             uuid.NewString(),
		DonorID:        donor.ID,
		DonorName:      donor.Name,
		FoodName:       input.FoodName,
		Quantity:       input.Quantity,
		Description:    input.Description,
		FoodType:       input.FoodType,
		ImageURL:       input.ImageURL,
		Address:        input.Address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		NeedsVolunteer: input.NeedsVolunteer,
		ExpiryAt:       input.ExpiryAt.UTC(),
		UploadedAt:     now,
		Version:        1,
	}
	if donation.Address == "" {
		donation.Address = donor.Address
	}

	if err := s.live.Create(ctx, donation); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_donation").Inc()
		return nil, fmt.Errorf("create live donation: %w", err)
	}
	metrics.DonationsCreatedTotal.Inc()
	return donation, nil
}

func (s *PostgresStorage) ListLiveDonations(ctx context.Context) ([]*repository.LiveDonation, error) {
	return s.live.ListUnexpired(ctx, time.Now().UTC())
}

// AcceptDonation moves a live donation into the accepted collection on behalf
// of a recipient. The row is locked for the duration of the transaction, so
// an expiry sweep running at the same moment either sees the donation gone or
// waits and finds it deleted. The volunteer-need preference defaults to the
// donor's flag; an explicit override from the recipient wins.
func (s *PostgresStorage) AcceptDonation(ctx context.Context, donationID string, recipient *repository.Recipient, needsVolunteerOverride *bool) (*repository.AcceptedDonation, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin accept transaction: %w", err)
	}
	defer s.rollback(tx)

	donation, err := s.live.GetByIDTx(ctx, tx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load live donation: %w", err)
	}

	if !donation.ExpiryAt.After(now) {
		return nil, ErrExpired
	}

	needsVolunteer := donation.NeedsVolunteer
	if needsVolunteerOverride != nil {
		needsVolunteer = *needsVolunteerOverride
	}

	status := repository.DeliverySelfPickup
	if needsVolunteer {
		status = repository.DeliveryNeedsVolunteer
		// A volunteer claimed while the donation was still live carries over.
		if donation.VolunteerID != nil {
			status = repository.DeliveryAssigned
		}
	}

	accepted := &repository.AcceptedDonation{
		ID:                 uuid.NewString(),
		OriginalDonationID: donation.ID,
		DonorID:            donation.DonorID,
		DonorName:          donation.DonorName,
		AcceptedBy:         recipient.ID,
		RecipientName:      recipient.Name,
		RecipientContact:   recipient.Contact,
		RecipientAddress:   recipient.Address,
		FoodName:           donation.FoodName,
		Quantity:           donation.Quantity,
		Description:        donation.Description,
		FoodType:           donation.FoodType,
		ImageURL:           donation.ImageURL,
		DeliveryStatus:     status,
		ExpiryAt:           donation.ExpiryAt,
		UploadedAt:         donation.UploadedAt,
		AcceptedAt:         now,
		Version:            1,
	}
	if status == repository.DeliveryAssigned {
		accepted.VolunteerID = donation.VolunteerID
		accepted.VolunteerName = donation.VolunteerName
		accepted.VolunteerContact = donation.VolunteerContact
		accepted.AssignedAt = donation.AssignedAt
	}

	if err := s.accepted.CreateTx(ctx, tx, accepted); err != nil {
		return nil, fmt.Errorf("insert accepted donation: %w", err)
	}
	if err := s.live.DeleteTx(ctx, tx, donation.ID); err != nil {
		return nil, fmt.Errorf("delete live donation: %w", err)
	}

	if err := s.notifyTx(ctx, tx, donation.DonorID, "donor", "Donation accepted",
		fmt.Sprintf("%s accepted your donation %q", recipient.Name, donation.FoodName),
		"donation_accepted", donation.ID, now); err != nil {
		return nil, err
	}

	if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
		Event:       "donation.accepted",
		DonationID:  donation.ID,
		DonorID:     donation.DonorID,
		RecipientID: recipient.ID,
		FoodName:    donation.FoodName,
		Timestamp:   now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("accept_donation").Inc()
		return nil, fmt.Errorf("commit accept transaction: %w", err)
	}
	metrics.DonationsAcceptedTotal.Inc()
	return accepted, nil
}

func (s *PostgresStorage) AddFeedback(ctx context.Context, acceptedID string, recipientID, feedback string) (*repository.AcceptedDonation, error) {
	accepted, err := s.accepted.GetByID(ctx, acceptedID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load accepted donation: %w", err)
	}
	if accepted.AcceptedBy != recipientID {
		return nil, ErrForbidden
	}
	if err := s.accepted.UpdateFeedback(ctx, acceptedID, feedback); err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	accepted.Feedback = feedback
	return accepted, nil
}

// SweepExpired migrates every live donation past its deadline into the
// expired archive, one transaction per record. A record that fails to move is
// logged and skipped; the next sweep retries it. Returns the number moved.
func (s *PostgresStorage) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	due, err := s.live.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("query due donations: %w", err)
	}

	moved := 0
	for _, donation := range due {
		migrated, err := s.expireOne(ctx, donation.ID, now)
		if err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("sweep_expired").Inc()
			s.logger.Error("failed to expire donation",
				zap.String("donation_id", donation.ID), zap.Error(err))
			continue
		}
		if !migrated {
			continue
		}
		moved++
		metrics.DonationsExpiredTotal.Inc()
	}
	return moved, nil
}

// expireOne reports whether it migrated the row; a donation accepted or
// expired by someone else between the listing and the lock is not an error,
// it just doesn't count.
func (s *PostgresStorage) expireOne(ctx context.Context, id string, now time.Time) (bool, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin expire transaction: %w", err)
	}
	defer s.rollback(tx)

	donation, err := s.live.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lock live donation: %w", err)
	}
	if donation.ExpiryAt.After(now) {
		return false, nil
	}

	expired := &repository.ExpiredDonation{
		ID:                 uuid.NewString(),
		OriginalDonationID: donation.ID,
		DonorID:            donation.DonorID,
		DonorName:          donation.DonorName,
		FoodName:           donation.FoodName,
		Quantity:           donation.Quantity,
		Description:        donation.Description,
		FoodType:           donation.FoodType,
		ImageURL:           donation.ImageURL,
		Address:            donation.Address,
		Latitude:           donation.Latitude,
		Longitude:          donation.Longitude,
		NeedsVolunteer:     donation.NeedsVolunteer,
		Status:             "Expired",
		ExpiryAt:           donation.ExpiryAt,
		UploadedAt:         donation.UploadedAt,
		ExpiredAt:          now,
	}

	if err := s.expired.CreateTx(ctx, tx, expired); err != nil {
		return false, fmt.Errorf("insert expired donation: %w", err)
	}
	if err := s.live.DeleteTx(ctx, tx, donation.ID); err != nil {
		return false, fmt.Errorf("delete live donation: %w", err)
	}

	if err := s.notifyTx(ctx, tx, donation.DonorID, "donor", "Donation expired",
		fmt.Sprintf("Your donation %q expired before it was accepted", donation.FoodName),
		"donation_expired", donation.ID, now); err != nil {
		return false, err
	}

	if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
		Event:      "donation.expired",
		DonationID: donation.ID,
		DonorID:    donation.DonorID,
		FoodName:   donation.FoodName,
		Timestamp:  now,
	}); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit expire transaction: %w", err)
	}
	return true, nil
}

func (s *PostgresStorage) DonorDonations(ctx context.Context, donorID string) (*DonorDonations, error) {
	active, err := s.live.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("list live donations: %w", err)
	}
	accepted, err := s.accepted.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("list accepted donations: %w", err)
	}
	expired, err := s.expired.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("list expired donations: %w", err)
	}

	combined := make([]ActivityEntry, 0, len(active)+len(accepted)+len(expired))
	for _, d := range active {
		combined = append(combined, ActivityEntry{Kind: "live", OccurredAt: d.UploadedAt, Record: d})
	}
	for _, d := range accepted {
		combined = append(combined, ActivityEntry{Kind: "accepted", OccurredAt: d.AcceptedAt, Record: d})
	}
	for _, d := range expired {
		combined = append(combined, ActivityEntry{Kind: "expired", OccurredAt: d.ExpiredAt, Record: d})
	}
	sort.Slice(combined, func(i, j int) bool {
		return combined[i].OccurredAt.After(combined[j].OccurredAt)
	})

	return &DonorDonations{
		Active:   active,
		Accepted: accepted,
		Expired:  expired,
		Combined: combined,
	}, nil
}

func (s *PostgresStorage) RecipientDonations(ctx context.Context, recipientID string) ([]*repository.AcceptedDonation, error) {
	return s.accepted.ListByRecipient(ctx, recipientID)
}

func (s *PostgresStorage) notifyTx(ctx context.Context, tx db.Tx, userID, userType, title, message, kind, donationID string, now time.Time) error {
	n := &repository.Notification{
		ID:                uuid.NewString(),
		UserID:            userID,
		UserType:          userType,
		Title:             title,
		Message:           message,
		Kind:              kind,
		RelatedDonationID: &donationID,
		CreatedAt:         now,
	}
	if err := s.notifications.CreateTx(ctx, tx, n); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (s *PostgresStorage) enqueueEventTx(ctx context.Context, tx db.Tx, payload repository.DonationEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	task := &repository.OutboxTask{
		ID:      uuid.New(),
		Topic:   s.eventsTopic,
		Payload: body,
	}
	if err := s.outbox.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("enqueue event: %w", err)
	}
	return nil
}
