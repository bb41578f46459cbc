package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kindmeals/backend/internal/repository"
)

func (s *PostgresStorage) CreateAdmin(ctx context.Context, username, password string) error {
	if err := s.admins.Create(ctx, username, password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ValidateAdmin(ctx context.Context, username, password string) (bool, error) {
	return s.admins.Validate(ctx, username, password)
}

func (s *PostgresStorage) ListDonors(ctx context.Context) ([]*repository.Donor, error) {
	return s.donors.ListAll(ctx)
}

func (s *PostgresStorage) ListRecipients(ctx context.Context) ([]*repository.Recipient, error) {
	return s.recipients.ListAll(ctx)
}

func (s *PostgresStorage) ListVolunteers(ctx context.Context) ([]*repository.Volunteer, error) {
	return s.volunteers.ListAll(ctx)
}

func (s *PostgresStorage) ListAllLive(ctx context.Context) ([]*repository.LiveDonation, error) {
	return s.live.ListAll(ctx)
}

func (s *PostgresStorage) ListAllAccepted(ctx context.Context) ([]*repository.AcceptedDonation, error) {
	return s.accepted.ListAll(ctx)
}

func (s *PostgresStorage) ListAllExpired(ctx context.Context) ([]*repository.ExpiredDonation, error) {
	return s.expired.ListAll(ctx)
}

// DashboardStats aggregates the admin overview counters. The counts come
// from separate queries, so the rows may shift between them; the dashboard
// tolerates that.
func (s *PostgresStorage) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.Donors, err = s.donors.Count(ctx); err != nil {
		return nil, fmt.Errorf("count donors: %w", err)
	}
	if stats.Recipients, err = s.recipients.Count(ctx); err != nil {
		return nil, fmt.Errorf("count recipients: %w", err)
	}
	if stats.Volunteers, err = s.volunteers.Count(ctx); err != nil {
		return nil, fmt.Errorf("count volunteers: %w", err)
	}
	if stats.LiveDonations, err = s.live.Count(ctx); err != nil {
		return nil, fmt.Errorf("count live donations: %w", err)
	}
	if stats.AcceptedDonations, err = s.accepted.Count(ctx); err != nil {
		return nil, fmt.Errorf("count accepted donations: %w", err)
	}
	if stats.ExpiredDonations, err = s.expired.Count(ctx); err != nil {
		return nil, fmt.Errorf("count expired donations: %w", err)
	}
	if stats.DeliveredDonations, err = s.final.Count(ctx); err != nil {
		return nil, fmt.Errorf("count delivered donations: %w", err)
	}
	return stats, nil
}

// RecentActivity merges all donation stages into one newest-first timeline,
// capped at limit entries.
func (s *PostgresStorage) RecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	live, err := s.live.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list live donations: %w", err)
	}
	accepted, err := s.accepted.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accepted donations: %w", err)
	}
	expired, err := s.expired.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expired donations: %w", err)
	}

	entries := make([]ActivityEntry, 0, len(live)+len(accepted)+len(expired))
	for _, d := range live {
		entries = append(entries, ActivityEntry{Kind: "donated", OccurredAt: d.UploadedAt, Record: d})
	}
	for _, d := range accepted {
		entries = append(entries, ActivityEntry{Kind: "accepted", OccurredAt: d.AcceptedAt, Record: d})
	}
	for _, d := range expired {
		entries = append(entries, ActivityEntry{Kind: "expired", OccurredAt: d.ExpiredAt, Record: d})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// RateVolunteer folds a recipient's rating into the volunteer's running
// average. Only the recipient of a delivered donation may rate its volunteer.
func (s *PostgresStorage) RateVolunteer(ctx context.Context, acceptedID, recipientID string, rating float64) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	accepted, err := s.accepted.GetByID(ctx, acceptedID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load accepted donation: %w", err)
	}
	if accepted.AcceptedBy != recipientID {
		return ErrForbidden
	}
	if accepted.DeliveryStatus != repository.DeliveryDelivered || accepted.VolunteerID == nil {
		return ErrNoVolunteerNeeded
	}

	if err := s.volunteers.AddRating(ctx, *accepted.VolunteerID, rating); err != nil {
		return fmt.Errorf("add rating: %w", err)
	}
	return nil
}
