package postgresql

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/storage"
)

type AdminRepo struct {
	db db.DB
}

func NewAdminRepo(db db.DB) storage.AdminRepository {
	return &AdminRepo{db: db}
}

func (r *AdminRepo) Create(ctx context.Context, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		"INSERT INTO admins (username, password) VALUES ($1, $2)",
		username, string(hashed))
	return err
}

func (r *AdminRepo) Validate(ctx context.Context, username, password string) (bool, error) {
	var hashed string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM admins WHERE username = $1", username).Scan(&hashed)
	if err != nil {
		return false, errors.New("admin not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
