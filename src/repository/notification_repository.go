package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/models/scopes"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListForUser(ctx context.Context, userID uint) ([]models.Notification, error)
	// MarkRead returns gorm.ErrRecordNotFound when the notification is not the user's.
	MarkRead(ctx context.Context, userID uint, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}

type notificationRepository struct{ base }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{base{db}}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	return r.conn(ctx).Create(notification).Error
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var list []models.Notification
	err := r.conn(ctx).Scopes(scopes.WithUser(userID)).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID uint, id uuid.UUID) error {
	res := r.conn(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	res := r.conn(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
