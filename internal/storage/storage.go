package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
)

// PostgresStorage implements the donation store on top of the per-stage
// repositories. All lifecycle transitions run inside a single transaction so
// a donation ID is never present in two stages at once.
type PostgresStorage struct {
	db            db.DB
	live          LiveDonationRepository
	accepted      AcceptedDonationRepository
	expired       ExpiredDonationRepository
	final         FinalDonationRepository
	donors        DonorRepository
	recipients    RecipientRepository
	volunteers    VolunteerRepository
	notifications NotificationRepository
	admins        AdminRepository
	outbox        OutboxTaskRepository
	eventsTopic   string
	logger        *zap.Logger
}

func NewPostgresStorage(
	database db.DB,
	live LiveDonationRepository,
	accepted AcceptedDonationRepository,
	expired ExpiredDonationRepository,
	final FinalDonationRepository,
	donors DonorRepository,
	recipients RecipientRepository,
	volunteers VolunteerRepository,
	notifications NotificationRepository,
	admins AdminRepository,
	outbox OutboxTaskRepository,
	eventsTopic string,
	logger *zap.Logger,
) *PostgresStorage {
	return &PostgresStorage{
		db:            database,
		live:          live,
		accepted:      accepted,
		expired:       expired,
		final:         final,
		donors:        donors,
		recipients:    recipients,
		volunteers:    volunteers,
		notifications: notifications,
		admins:        admins,
		outbox:        outbox,
		eventsTopic:   eventsTopic,
		logger:        logger,
	}
}

func (s *PostgresStorage) CreateDonorProfile(ctx context.Context, d *repository.Donor) error {
	if err := s.donors.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create donor profile: %w", err)
	}
	return nil
}

func (s *PostgresStorage) CreateRecipientProfile(ctx context.Context, r *repository.Recipient) error {
	if err := s.recipients.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create recipient profile: %w", err)
	}
	return nil
}

func (s *PostgresStorage) CreateVolunteerProfile(ctx context.Context, v *repository.Volunteer) error {
	if err := s.volunteers.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create volunteer profile: %w", err)
	}
	return nil
}

func (s *PostgresStorage) DonorByFirebaseUID(ctx context.Context, uid string) (*repository.Donor, error) {
	d, err := s.donors.GetByFirebaseUID(ctx, uid)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, ErrNotFound
	}
	return d, err
}

func (s *PostgresStorage) RecipientByFirebaseUID(ctx context.Context, uid string) (*repository.Recipient, error) {
	r, err := s.recipients.GetByFirebaseUID(ctx, uid)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *PostgresStorage) VolunteerByFirebaseUID(ctx context.Context, uid string) (*repository.Volunteer, error) {
	v, err := s.volunteers.GetByFirebaseUID(ctx, uid)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, ErrNotFound
	}
	return v, err
}

func (s *PostgresStorage) Notifications(ctx context.Context, userID string, limit int) ([]*repository.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.notifications.ListByUser(ctx, userID, limit)
}

func (s *PostgresStorage) MarkNotificationRead(ctx context.Context, id, userID string) error {
	err := s.notifications.MarkRead(ctx, id, userID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *PostgresStorage) rollback(tx db.Tx) {
	if err := tx.Rollback(context.Background()); err != nil {
		s.logger.Debug("transaction rollback", zap.Error(err))
	}
}
