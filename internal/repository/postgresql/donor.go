package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type DonorRepo struct {
	db db.DB
}

func NewDonorRepo(db db.DB) storage.DonorRepository {
	return &DonorRepo{db: db}
}

func (r *DonorRepo) Create(ctx context.Context, d *repository.Donor) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO donors (
            id, firebase_uid, email, profile_image, name, org_name,
            identification_id, address, contact, org_type, about,
            latitude, longitude, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `, d.ID, d.FirebaseUID, d.Email, d.ProfileImage, d.Name, d.OrgName,
		d.IdentificationID, d.Address, d.Contact, d.OrgType, d.About,
		d.Latitude, d.Longitude, d.CreatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *DonorRepo) GetByID(ctx context.Context, id string) (*repository.Donor, error) {
	var d repository.Donor
	err := r.db.Get(ctx, &d, "SELECT * FROM donors WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DonorRepo) GetByFirebaseUID(ctx context.Context, uid string) (*repository.Donor, error) {
	var d repository.Donor
	err := r.db.Get(ctx, &d, "SELECT * FROM donors WHERE firebase_uid = $1", uid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DonorRepo) ListAll(ctx context.Context) ([]*repository.Donor, error) {
	var donors []*repository.Donor
	err := r.db.Select(ctx, &donors, "SELECT * FROM donors ORDER BY created_at DESC")
	return donors, err
}

func (r *DonorRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM donors")
	return n, err
}
