package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

type FinalDonationRepo struct {
	db db.DB
}

func NewFinalDonationRepo(db db.DB) storage.FinalDonationRepository {
	return &FinalDonationRepo{db: db}
}

func (r *FinalDonationRepo) CreateTx(ctx context.Context, tx db.Tx, d *repository.FinalDonation) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO final_donations (
            id, original_donation_id, accepted_donation_id,
            donor_id, donor_name, donor_contact,
            recipient_id, recipient_name, recipient_contact, recipient_address,
            volunteer_id, volunteer_name, volunteer_contact,
            food_name, food_type, quantity, description, image_url,
            picked_up_at, delivered_at, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
    `, d.ID, d.OriginalDonationID, d.AcceptedDonationID,
		d.DonorID, d.DonorName, d.DonorContact,
		d.RecipientID, d.RecipientName, d.RecipientContact, d.RecipientAddress,
		d.VolunteerID, d.VolunteerName, d.VolunteerContact,
		d.FoodName, d.FoodType, d.Quantity, d.Description, d.ImageURL,
		d.PickedUpAt, d.DeliveredAt, d.CreatedAt)
	return err
}

func (r *FinalDonationRepo) GetByAcceptedID(ctx context.Context, acceptedID string) (*repository.FinalDonation, error) {
	var d repository.FinalDonation
	err := r.db.Get(ctx, &d, "SELECT * FROM final_donations WHERE accepted_donation_id = $1", acceptedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *FinalDonationRepo) ListByVolunteer(ctx context.Context, volunteerID string) ([]*repository.FinalDonation, error) {
	var donations []*repository.FinalDonation
	err := r.db.Select(ctx, &donations, `
        SELECT * FROM final_donations
        WHERE volunteer_id = $1
        ORDER BY delivered_at DESC
    `, volunteerID)
	return donations, err
}

func (r *FinalDonationRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM final_donations")
	return n, err
}
