package repository

import (
	"context"
	"fmt"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/models/scopes"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, userID uint, roleID uint) error
}

type userRepository struct{ base }

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{base{db}}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.conn(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.conn(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the user together with an empty profile.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return fmt.Errorf("could not create user: %w", err)
		}
		profile := &models.UserProfile{UserID: user.ID}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("could not create profile: %w", err)
		}
		user.Profile = profile
		return nil
	})
}

func (r *userRepository) UpdateRole(ctx context.Context, userID uint, roleID uint) error {
	return r.conn(ctx).Model(&models.User{}).Scopes(scopes.WithID(userID)).Update("role_id", roleID).Error
}

