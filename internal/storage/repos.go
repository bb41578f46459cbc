package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
)

type LiveDonationRepository interface {
	Create(ctx context.Context, d *repository.LiveDonation) error
	GetByID(ctx context.Context, id string) (*repository.LiveDonation, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.LiveDonation, error)
	ListUnexpired(ctx context.Context, now time.Time) ([]*repository.LiveDonation, error)
	ListDue(ctx context.Context, now time.Time) ([]*repository.LiveDonation, error)
	ListByDonor(ctx context.Context, donorID string) ([]*repository.LiveDonation, error)
	ListOpportunities(ctx context.Context, now time.Time) ([]*repository.LiveDonation, error)
	ListAll(ctx context.Context) ([]*repository.LiveDonation, error)
	AssignVolunteer(ctx context.Context, id string, volunteerID, name, contact string, at time.Time) (bool, error)
	DeleteTx(ctx context.Context, tx db.Tx, id string) error
	Count(ctx context.Context) (int, error)
}

type AcceptedDonationRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, d *repository.AcceptedDonation) error
	GetByID(ctx context.Context, id string) (*repository.AcceptedDonation, error)
	ListByDonor(ctx context.Context, donorID string) ([]*repository.AcceptedDonation, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]*repository.AcceptedDonation, error)
	ListByVolunteer(ctx context.Context, volunteerID string) ([]*repository.AcceptedDonation, error)
	ListPending(ctx context.Context) ([]*repository.AcceptedDonation, error)
	ListAll(ctx context.Context) ([]*repository.AcceptedDonation, error)
	AssignVolunteerTx(ctx context.Context, tx db.Tx, id string, volunteerID, name, contact string, at time.Time) (bool, error)
	MarkDeliveredTx(ctx context.Context, tx db.Tx, id, volunteerID string) (bool, error)
	UpdateFeedback(ctx context.Context, id, feedback string) error
	Count(ctx context.Context) (int, error)
}

type ExpiredDonationRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, d *repository.ExpiredDonation) error
	ListByDonor(ctx context.Context, donorID string) ([]*repository.ExpiredDonation, error)
	ListAll(ctx context.Context) ([]*repository.ExpiredDonation, error)
	Count(ctx context.Context) (int, error)
}

type FinalDonationRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, d *repository.FinalDonation) error
	GetByAcceptedID(ctx context.Context, acceptedID string) (*repository.FinalDonation, error)
	ListByVolunteer(ctx context.Context, volunteerID string) ([]*repository.FinalDonation, error)
	Count(ctx context.Context) (int, error)
}

type DonorRepository interface {
	Create(ctx context.Context, d *repository.Donor) error
	GetByID(ctx context.Context, id string) (*repository.Donor, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*repository.Donor, error)
	ListAll(ctx context.Context) ([]*repository.Donor, error)
	Count(ctx context.Context) (int, error)
}

type RecipientRepository interface {
	Create(ctx context.Context, r *repository.Recipient) error
	GetByID(ctx context.Context, id string) (*repository.Recipient, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*repository.Recipient, error)
	ListAll(ctx context.Context) ([]*repository.Recipient, error)
	Count(ctx context.Context) (int, error)
}

type VolunteerRepository interface {
	Create(ctx context.Context, v *repository.Volunteer) error
	GetByID(ctx context.Context, id string) (*repository.Volunteer, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*repository.Volunteer, error)
	IncrementDeliveriesTx(ctx context.Context, tx db.Tx, id string) error
	AddRating(ctx context.Context, id string, rating float64) error
	ListAll(ctx context.Context) ([]*repository.Volunteer, error)
	Count(ctx context.Context) (int, error)
}

type NotificationRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*repository.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type AdminRepository interface {
	Create(ctx context.Context, username, password string) error
	Validate(ctx context.Context, username, password string) (bool, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, database db.DB, limit, maxAttempts int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, database db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}
