package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kindmeals/backend/internal/metrics"
	"github.com/kindmeals/backend/internal/repository"
)

func (s *PostgresStorage) ListOpportunities(ctx context.Context) ([]*repository.LiveDonation, error) {
	return s.live.ListOpportunities(ctx, time.Now().UTC())
}

func (s *PostgresStorage) ListPendingDeliveries(ctx context.Context) ([]*repository.AcceptedDonation, error) {
	return s.accepted.ListPending(ctx)
}

// ClaimOpportunity attaches a volunteer to a live donation before any
// recipient accepts it. The conditional update is the whole guard; when it
// matches nothing the donation is re-read to report why.
func (s *PostgresStorage) ClaimOpportunity(ctx context.Context, donationID string, volunteer *repository.Volunteer) (*repository.LiveDonation, error) {
	now := time.Now().UTC()

	ok, err := s.live.AssignVolunteer(ctx, donationID, volunteer.ID, volunteer.Name, volunteer.Contact, now)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("claim_opportunity").Inc()
		return nil, fmt.Errorf("assign volunteer: %w", err)
	}
	if !ok {
		donation, err := s.live.GetByID(ctx, donationID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("load live donation: %w", err)
		}
		switch {
		case !donation.ExpiryAt.After(now):
			return nil, ErrExpired
		case !donation.NeedsVolunteer:
			return nil, ErrNoVolunteerNeeded
		default:
			return nil, ErrAlreadyAssigned
		}
	}

	metrics.VolunteerAssignmentsTotal.Inc()
	return s.live.GetByID(ctx, donationID)
}

// AcceptDelivery attaches a volunteer to an accepted donation waiting for
// one. Exactly one of two concurrent calls wins; the loser gets a
// state-conflict error. The delivery counter increment and the notifications
// ride the same transaction as the assignment.
func (s *PostgresStorage) AcceptDelivery(ctx context.Context, acceptedID string, volunteer *repository.Volunteer) (*repository.AcceptedDonation, error) {
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin assignment transaction: %w", err)
	}
	defer s.rollback(tx)

	ok, err := s.accepted.AssignVolunteerTx(ctx, tx, acceptedID, volunteer.ID, volunteer.Name, volunteer.Contact, now)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("accept_delivery").Inc()
		return nil, fmt.Errorf("assign volunteer: %w", err)
	}
	if !ok {
		accepted, err := s.accepted.GetByID(ctx, acceptedID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("load accepted donation: %w", err)
		}
		if accepted.VolunteerID != nil {
			return nil, ErrAlreadyAssigned
		}
		return nil, ErrNoVolunteerNeeded
	}

	if err := s.volunteers.IncrementDeliveriesTx(ctx, tx, volunteer.ID); err != nil {
		return nil, fmt.Errorf("increment delivery counter: %w", err)
	}

	accepted, err := s.accepted.GetByID(ctx, acceptedID)
	if err != nil {
		return nil, fmt.Errorf("reload accepted donation: %w", err)
	}

	if err := s.notifyTx(ctx, tx, accepted.DonorID, "donor", "Volunteer assigned",
		fmt.Sprintf("%s will deliver your donation %q", volunteer.Name, accepted.FoodName),
		"volunteer_assigned", accepted.ID, now); err != nil {
		return nil, err
	}
	if err := s.notifyTx(ctx, tx, accepted.AcceptedBy, "recipient", "Volunteer assigned",
		fmt.Sprintf("%s will deliver %q to you", volunteer.Name, accepted.FoodName),
		"volunteer_assigned", accepted.ID, now); err != nil {
		return nil, err
	}

	if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
		Event:       "volunteer.assigned",
		DonationID:  accepted.OriginalDonationID,
		DonorID:     accepted.DonorID,
		RecipientID: accepted.AcceptedBy,
		VolunteerID: volunteer.ID,
		FoodName:    accepted.FoodName,
		Timestamp:   now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("accept_delivery").Inc()
		return nil, fmt.Errorf("commit assignment transaction: %w", err)
	}

	metrics.VolunteerAssignmentsTotal.Inc()
	accepted.DeliveryStatus = repository.DeliveryAssigned
	accepted.VolunteerID = &volunteer.ID
	accepted.VolunteerName = &volunteer.Name
	accepted.VolunteerContact = &volunteer.Contact
	accepted.AssignedAt = &now
	return accepted, nil
}

// CompleteDelivery marks an assigned delivery as done and writes the final
// donation record joining all three parties. Only the assigned volunteer may
// complete it.
func (s *PostgresStorage) CompleteDelivery(ctx context.Context, acceptedID string, volunteer *repository.Volunteer) (*repository.FinalDonation, error) {
	now := time.Now().UTC()

	accepted, err := s.accepted.GetByID(ctx, acceptedID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load accepted donation: %w", err)
	}
	if accepted.VolunteerID == nil || *accepted.VolunteerID != volunteer.ID {
		return nil, ErrForbidden
	}

	donor, err := s.donors.GetByID(ctx, accepted.DonorID)
	if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, fmt.Errorf("load donor: %w", err)
	}
	donorContact := ""
	if donor != nil {
		donorContact = donor.Contact
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin completion transaction: %w", err)
	}
	defer s.rollback(tx)

	ok, err := s.accepted.MarkDeliveredTx(ctx, tx, acceptedID, volunteer.ID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("complete_delivery").Inc()
		return nil, fmt.Errorf("mark delivered: %w", err)
	}
	if !ok {
		return nil, ErrNoVolunteerNeeded
	}

	pickedUpAt := now
	if accepted.AssignedAt != nil {
		pickedUpAt = *accepted.AssignedAt
	}
	final := &repository.FinalDonation{
		ID:                 uuid.NewString(),
		OriginalDonationID: accepted.OriginalDonationID,
		AcceptedDonationID: accepted.ID,
		DonorID:            accepted.DonorID,
		DonorName:          accepted.DonorName,
		DonorContact:       donorContact,
		RecipientID:        accepted.AcceptedBy,
		RecipientName:      accepted.RecipientName,
		RecipientContact:   accepted.RecipientContact,
		RecipientAddress:   accepted.RecipientAddress,
		VolunteerID:        volunteer.ID,
		VolunteerName:      volunteer.Name,
		VolunteerContact:   volunteer.Contact,
		FoodName:           accepted.FoodName,
		FoodType:           accepted.FoodType,
		Quantity:           accepted.Quantity,
		Description:        accepted.Description,
		ImageURL:           accepted.ImageURL,
		PickedUpAt:         pickedUpAt,
		DeliveredAt:        now,
		CreatedAt:          now,
	}
	if err := s.final.CreateTx(ctx, tx, final); err != nil {
		return nil, fmt.Errorf("insert final donation: %w", err)
	}

	if err := s.notifyTx(ctx, tx, accepted.DonorID, "donor", "Delivery completed",
		fmt.Sprintf("Your donation %q was delivered by %s", accepted.FoodName, volunteer.Name),
		"delivery_completed", accepted.ID, now); err != nil {
		return nil, err
	}
	if err := s.notifyTx(ctx, tx, accepted.AcceptedBy, "recipient", "Delivery completed",
		fmt.Sprintf("%q was delivered by %s", accepted.FoodName, volunteer.Name),
		"delivery_completed", accepted.ID, now); err != nil {
		return nil, err
	}

	if err := s.enqueueEventTx(ctx, tx, repository.DonationEventPayload{
		Event:       "delivery.completed",
		DonationID:  accepted.OriginalDonationID,
		DonorID:     accepted.DonorID,
		RecipientID: accepted.AcceptedBy,
		VolunteerID: volunteer.ID,
		FoodName:    accepted.FoodName,
		Timestamp:   now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("complete_delivery").Inc()
		return nil, fmt.Errorf("commit completion transaction: %w", err)
	}

	metrics.DeliveriesCompletedTotal.Inc()
	return final, nil
}

func (s *PostgresStorage) VolunteerHistory(ctx context.Context, volunteerID string) ([]*repository.AcceptedDonation, error) {
	return s.accepted.ListByVolunteer(ctx, volunteerID)
}
