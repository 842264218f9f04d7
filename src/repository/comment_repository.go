package repository

import (
	"context"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListForRequest(ctx context.Context, tripRequestID uint) ([]models.Comment, error)
}

type commentRepository struct{ base }

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{base{db}}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.conn(ctx).Omit("User").Create(comment).Error
}

func (r *commentRepository) ListForRequest(ctx context.Context, tripRequestID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.conn(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name")
		}).
		Where("trip_request_id = ?", tripRequestID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}
