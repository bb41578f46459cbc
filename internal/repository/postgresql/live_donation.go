package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

type LiveDonationRepo struct {
	db db.DB
}

func NewLiveDonationRepo(db db.DB) storage.LiveDonationRepository {
	return &LiveDonationRepo{db: db}
}

func (r *LiveDonationRepo) Create(ctx context.Context, d *repository.LiveDonation) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO live_donations (
            id, donor_id, donor_name, food_name, quantity, description, food_type,
            image_url, address, latitude, longitude, needs_volunteer,
            expiry_at, uploaded_at, version
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 1)
    `, d.ID, d.DonorID, d.DonorName, d.FoodName, d.Quantity, d.Description, d.FoodType,
		d.ImageURL, d.Address, d.Latitude, d.Longitude, d.NeedsVolunteer,
		d.ExpiryAt, d.UploadedAt)
	return err
}

func (r *LiveDonationRepo) GetByID(ctx context.Context, id string) (*repository.LiveDonation, error) {
	var d repository.LiveDonation
	err := r.db.Get(ctx, &d, "SELECT * FROM live_donations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetByIDTx locks the row for the duration of the transaction so state
// transitions cannot race with the expiry sweep.
func (r *LiveDonationRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.LiveDonation, error) {
	var d repository.LiveDonation
	err := tx.Get(ctx, &d, "SELECT * FROM live_donations WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *LiveDonationRepo) ListUnexpired(ctx context.Context, now time.Time) ([]*repository.LiveDonation, error) {
	var donations []*repository.LiveDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM live_donations
        WHERE expiry_at > $1
        ORDER BY uploaded_at DESC
    `, now)
	return donations, err
}

func (r *LiveDonationRepo) ListDue(ctx context.Context, now time.Time) ([]*repository.LiveDonation, error) {
	var donations []*repository.LiveDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM live_donations
        WHERE expiry_at < $1
        ORDER BY expiry_at ASC
    `, now)
	if err != nil {
		return nil, fmt.Errorf("list due donations: %w", err)
	}
	return donations, nil
}

func (r *LiveDonationRepo) ListByDonor(ctx context.Context, donorID string) ([]*repository.LiveDonation, error) {
	var donations []*repository.LiveDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM live_donations
        WHERE donor_id = $1
        ORDER BY uploaded_at DESC
    `, donorID)
	return donations, err
}

func (r *LiveDonationRepo) ListOpportunities(ctx context.Context, now time.Time) ([]*repository.LiveDonation, error) {
	var donations []*repository.LiveDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM live_donations
        WHERE needs_volunteer = TRUE
          AND expiry_at > $1
          AND volunteer_id IS NULL
        ORDER BY expiry_at ASC
    `, now)
	return donations, err
}

func (r *LiveDonationRepo) ListAll(ctx context.Context) ([]*repository.LiveDonation, error) {
	var donations []*repository.LiveDonation
	err := r.db.Select(ctx, &donations, "SELECT * FROM live_donations ORDER BY uploaded_at DESC")
	return donations, err
}

// AssignVolunteer attaches a volunteer to an unassigned, unexpired donation
// that was flagged as needing one. The guard is the WHERE clause itself:
// zero rows affected means the donation was not in the claimable state.
func (r *LiveDonationRepo) AssignVolunteer(ctx context.Context, id string, volunteerID, name, contact string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE live_donations
        SET volunteer_id = $2,
            volunteer_name = $3,
            volunteer_contact = $4,
            assigned_at = $5,
            version = version + 1
        WHERE id = $1
          AND needs_volunteer = TRUE
          AND volunteer_id IS NULL
          AND expiry_at > $5
    `, id, volunteerID, name, contact, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *LiveDonationRepo) DeleteTx(ctx context.Context, tx db.Tx, id string) error {
	_, err := tx.Exec(ctx, "DELETE FROM live_donations WHERE id = $1", id)
	return err
}

func (r *LiveDonationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM live_donations")
	return n, err
}
