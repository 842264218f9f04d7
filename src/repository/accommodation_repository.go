package repository

import (
	"context"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/models/scopes"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

type AccommodationRepository interface {
	Create(ctx context.Context, accommodation *models.Accommodation) error
	List(ctx context.Context) ([]models.Accommodation, error)
	FindByID(ctx context.Context, id uint) (*models.Accommodation, error)
	CountInCity(ctx context.Context, cityID uint) (int64, error)
	SetImages(ctx context.Context, id uint, urls types.StringArray) error
	AddRoom(ctx context.Context, room *models.Room) error
	FindRoom(ctx context.Context, id uint) (*models.Room, error)
}

type accommodationRepository struct{ base }

func NewAccommodationRepository(db *gorm.DB) AccommodationRepository {
	return &accommodationRepository{base{db}}
}

func (r *accommodationRepository) Create(ctx context.Context, accommodation *models.Accommodation) error {
	return r.conn(ctx).Omit("City", "Rooms").Create(accommodation).Error
}

func (r *accommodationRepository) List(ctx context.Context) ([]models.Accommodation, error) {
	var list []models.Accommodation
	err := r.conn(ctx).Preload("City").Order("id ASC").Find(&list).Error
	return list, err
}

func (r *accommodationRepository) FindByID(ctx context.Context, id uint) (*models.Accommodation, error) {
	var accommodation models.Accommodation
	err := r.conn(ctx).
		Preload("City").
		Preload("Rooms", scopes.OrderedByID).
		First(&accommodation, id).Error
	if err != nil {
		return nil, err
	}
	return &accommodation, nil
}

func (r *accommodationRepository) CountInCity(ctx context.Context, cityID uint) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&models.Accommodation{}).Where("city_id = ?", cityID).Count(&count).Error
	return count, err
}

func (r *accommodationRepository) SetImages(ctx context.Context, id uint, urls types.StringArray) error {
	return r.conn(ctx).Model(&models.Accommodation{}).Scopes(scopes.WithID(id)).Update("image_urls", urls).Error
}

func (r *accommodationRepository) AddRoom(ctx context.Context, room *models.Room) error {
	return r.conn(ctx).Omit("Accommodation").Create(room).Error
}

func (r *accommodationRepository) FindRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.conn(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}
