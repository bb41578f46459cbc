package postgresql

import (
	"context"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

type ExpiredDonationRepo struct {
	db db.DB
}

func NewExpiredDonationRepo(db db.DB) storage.ExpiredDonationRepository {
	return &ExpiredDonationRepo{db: db}
}

func (r *ExpiredDonationRepo) CreateTx(ctx context.Context, tx db.Tx, d *repository.ExpiredDonation) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO expired_donations (
            id, original_donation_id, donor_id, donor_name,
            food_name, quantity, description, food_type, image_url,
            address, latitude, longitude, needs_volunteer, status,
            expiry_at, uploaded_at, expired_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    `, d.ID, d.OriginalDonationID, d.DonorID, d.DonorName,
		d.FoodName, d.Quantity, d.Description, d.FoodType, d.ImageURL,
		d.Address, d.Latitude, d.Longitude, d.NeedsVolunteer, d.Status,
		d.ExpiryAt, d.UploadedAt, d.ExpiredAt)
	return err
}

func (r *ExpiredDonationRepo) ListByDonor(ctx context.Context, donorID string) ([]*repository.ExpiredDonation, error) {
	var donations []*repository.ExpiredDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM expired_donations
        WHERE donor_id = $1
        ORDER BY expired_at DESC
    `, donorID)
	return donations, err
}

func (r *ExpiredDonationRepo) ListAll(ctx context.Context) ([]*repository.ExpiredDonation, error) {
	var donations []*repository.ExpiredDonation
	err := r.db.Select(ctx, &donations, "SELECT * FROM expired_donations ORDER BY expired_at DESC")
	return donations, err
}

func (r *ExpiredDonationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM expired_donations")
	return n, err
}
