package repository

import (
	"context"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
}

type roleRepository struct{ base }

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{base{db}}
}

func (r *roleRepository) FindByID(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.conn(ctx).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.conn(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}
