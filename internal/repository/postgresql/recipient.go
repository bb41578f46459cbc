package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

type RecipientRepo struct {
	db db.DB
}

func NewRecipientRepo(db db.DB) storage.RecipientRepository {
	return &RecipientRepo{db: db}
}

func (r *RecipientRepo) Create(ctx context.Context, rec *repository.Recipient) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO recipients (
            id, firebase_uid, email, profile_image, name, ngo_name,
            ngo_id, address, contact, org_type, about,
            latitude, longitude, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `, rec.ID, rec.FirebaseUID, rec.Email, rec.ProfileImage, rec.Name, rec.NGOName,
		rec.NGOID, rec.Address, rec.Contact, rec.OrgType, rec.About,
		rec.Latitude, rec.Longitude, rec.CreatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicate
	}
	return err
}

func (r *RecipientRepo) GetByID(ctx context.Context, id string) (*repository.Recipient, error) {
	var rec repository.Recipient
	err := r.db.Get(ctx, &rec, "SELECT * FROM recipients WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RecipientRepo) GetByFirebaseUID(ctx context.Context, uid string) (*repository.Recipient, error) {
	var rec repository.Recipient
	err := r.db.Get(ctx, &rec, "SELECT * FROM recipients WHERE firebase_uid = $1", uid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *RecipientRepo) ListAll(ctx context.Context) ([]*repository.Recipient, error) {
	var recipients []*repository.Recipient
	err := r.db.Select(ctx, &recipients, "SELECT * FROM recipients ORDER BY created_at DESC")
	return recipients, err
}

func (r *RecipientRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM recipients")
	return n, err
}
