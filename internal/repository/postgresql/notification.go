package postgresql

import (
	"context"

	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/repository"
	"github.com/kindmeals/backend/internal/storage"
)

type NotificationRepo struct {
	db db.DB
}

func NewNotificationRepo(db db.DB) storage.NotificationRepository {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO notifications (
            id, user_id, user_type, title, message, kind,
            related_donation_id, is_read, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, n.ID, n.UserID, n.UserType, n.Title, n.Message, n.Kind,
		n.RelatedDonationID, n.IsRead, n.CreatedAt)
	return err
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*repository.Notification, error) {
	var notifications []*repository.Notification
	err := r.db.Select(ctx, &notifications, `
        SELECT * FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `, userID, limit)
	return notifications, err
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE notifications SET is_read = TRUE
        WHERE id = $1 AND user_id = $2
    `, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
