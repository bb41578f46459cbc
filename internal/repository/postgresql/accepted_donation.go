package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

type AcceptedDonationRepo struct {
	db db.DB
}

func NewAcceptedDonationRepo(db db.DB) storage.AcceptedDonationRepository {
	return &AcceptedDonationRepo{db: db}
}

func (r *AcceptedDonationRepo) CreateTx(ctx context.Context, tx db.Tx, d *repository.AcceptedDonation) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO accepted_donations (
            id, original_donation_id, donor_id, donor_name,
            accepted_by, recipient_name, recipient_contact, recipient_address,
            food_name, quantity, description, food_type, image_url,
            delivery_status, volunteer_id, volunteer_name, volunteer_contact, assigned_at,
            feedback, expiry_at, uploaded_at, accepted_at, version
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, 1)
    `, d.ID, d.OriginalDonationID, d.DonorID, d.DonorName,
		d.AcceptedBy, d.RecipientName, d.RecipientContact, d.RecipientAddress,
		d.FoodName, d.Quantity, d.Description, d.FoodType, d.ImageURL,
		d.DeliveryStatus, d.VolunteerID, d.VolunteerName, d.VolunteerContact, d.AssignedAt,
		d.Feedback, d.ExpiryAt, d.UploadedAt, d.AcceptedAt)
	return err
}

func (r *AcceptedDonationRepo) GetByID(ctx context.Context, id string) (*repository.AcceptedDonation, error) {
	var d repository.AcceptedDonation
	err := r.db.Get(ctx, &d, "SELECT * FROM accepted_donations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *AcceptedDonationRepo) ListByDonor(ctx context.Context, donorID string) ([]*repository.AcceptedDonation, error) {
	var donations []*repository.AcceptedDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM accepted_donations
        WHERE donor_id = $1
        ORDER BY accepted_at DESC
    `, donorID)
	return donations, err
}

func (r *AcceptedDonationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]*repository.AcceptedDonation, error) {
	var donations []*repository.AcceptedDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM accepted_donations
        WHERE accepted_by = $1
        ORDER BY accepted_at DESC
    `, recipientID)
	return donations, err
}

func (r *AcceptedDonationRepo) ListByVolunteer(ctx context.Context, volunteerID string) ([]*repository.AcceptedDonation, error) {
	var donations []*repository.AcceptedDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM accepted_donations
        WHERE volunteer_id = $1
        ORDER BY accepted_at DESC
    `, volunteerID)
	return donations, err
}

// ListPending returns acceptances still waiting for a volunteer.
func (r *AcceptedDonationRepo) ListPending(ctx context.Context) ([]*repository.AcceptedDonation, error) {
	var donations []*repository.AcceptedDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM accepted_donations
        WHERE delivery_status = $1
          AND volunteer_id IS NULL
        ORDER BY accepted_at DESC
    `, repository.DeliveryNeedsVolunteer)
	return donations, err
}

func (r *AcceptedDonationRepo) ListAll(ctx context.Context) ([]*repository.AcceptedDonation, error) {
	var donations []*repository.AcceptedDonation
	err := r.db.Select(ctx, &donations, "SELECT * FROM accepted_donations ORDER BY accepted_at DESC")
	return donations, err
}

// AssignVolunteerTx is the conditional transition needs_volunteer -> assigned.
// Of two concurrent claims exactly one sees a row matching the WHERE clause.
func (r *AcceptedDonationRepo) AssignVolunteerTx(ctx context.Context, tx db.Tx, id string, volunteerID, name, contact string, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE accepted_donations
        SET delivery_status = $2,
            volunteer_id = $3,
            volunteer_name = $4,
            volunteer_contact = $5,
            assigned_at = $6,
            version = version + 1
        WHERE id = $1
          AND delivery_status = $7
          AND volunteer_id IS NULL
    `, id, repository.DeliveryAssigned, volunteerID, name, contact, at, repository.DeliveryNeedsVolunteer)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkDeliveredTx is the conditional transition assigned -> delivered,
// restricted to the volunteer who holds the assignment.
func (r *AcceptedDonationRepo) MarkDeliveredTx(ctx context.Context, tx db.Tx, id, volunteerID string) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE accepted_donations
        SET delivery_status = $3,
            version = version + 1
        WHERE id = $1
          AND delivery_status = $4
          AND volunteer_id = $2
    `, id, volunteerID, repository.DeliveryDelivered, repository.DeliveryAssigned)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AcceptedDonationRepo) UpdateFeedback(ctx context.Context, id, feedback string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE accepted_donations
        SET feedback = $2, version = version + 1
        WHERE id = $1
    `, id, feedback)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *AcceptedDonationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM accepted_donations")
	return n, err
}
