package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

type VolunteerRepo struct {
	db db.DB
}

func NewVolunteerRepo(db db.DB) storage.VolunteerRepository {
	return &VolunteerRepo{db: db}
}

func (r *VolunteerRepo) Create(ctx context.Context, v *repository.Volunteer) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO volunteers (
            id, firebase_uid, email, profile_image, name, aadhar_id,
            address, contact, about, has_vehicle, vehicle_type, vehicle_number,
            driving_license_image, latitude, longitude, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `, v.ID, v.FirebaseUID, v.Email, v.ProfileImage, v.Name, v.AadharID,
		v.Address, v.Contact, v.About, v.HasVehicle, v.VehicleType, v.VehicleNumber,
		v.DrivingLicenseImage, v.Latitude, v.Longitude, v.CreatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *VolunteerRepo) GetByID(ctx context.Context, id string) (*repository.Volunteer, error) {
	var v repository.Volunteer
	err := r.db.Get(ctx, &v, "SELECT * FROM volunteers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VolunteerRepo) GetByFirebaseUID(ctx context.Context, uid string) (*repository.Volunteer, error) {
	var v repository.Volunteer
	err := r.db.Get(ctx, &v, "SELECT * FROM volunteers WHERE firebase_uid = $1", uid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &v, nil
}

// IncrementDeliveriesTx bumps the cumulative delivery counter inside the
// assignment transaction, so a failed assignment never counts.
func (r *VolunteerRepo) IncrementDeliveriesTx(ctx context.Context, tx db.Tx, id string) error {
	tag, err := tx.Exec(ctx, "UPDATE volunteers SET deliveries = deliveries + 1 WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *VolunteerRepo) AddRating(ctx context.Context, id string, rating float64) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE volunteers
        SET rating = (rating * total_ratings + $2) / (total_ratings + 1),
            total_ratings = total_ratings + 1
        WHERE id = $1
    `, id, rating)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *VolunteerRepo) ListAll(ctx context.Context) ([]*repository.Volunteer, error) {
	var volunteers []*repository.Volunteer
	err := r.db.Select(ctx, &volunteers, "SELECT * FROM volunteers ORDER BY created_at DESC")
	return volunteers, err
}

func (r *VolunteerRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM volunteers")
	return n, err
}
