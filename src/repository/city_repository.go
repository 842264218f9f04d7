package repository

import (
	"context"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/models/scopes"
	"gorm.io/gorm"
)

type CityRepository interface {
	Create(ctx context.Context, city *models.City) error
	List(ctx context.Context) ([]models.City, error)
	FindByID(ctx context.Context, id uint) (*models.City, error)
	// NamesByIDs maps each existing city id to its name.
	NamesByIDs(ctx context.Context, ids ...uint) (map[uint]string, error)
}

type cityRepository struct{ base }

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{base{db}}
}

func (r *cityRepository) Create(ctx context.Context, city *models.City) error {
	return r.conn(ctx).Create(city).Error
}

func (r *cityRepository) List(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := r.conn(ctx).Order("city ASC").Find(&cities).Error
	return cities, err
}

func (r *cityRepository) FindByID(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	if err := r.conn(ctx).First(&city, id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) NamesByIDs(ctx context.Context, ids ...uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var cities []models.City
	if err := r.conn(ctx).Select("id", "city").Scopes(scopes.WithIDs(ids...)).Find(&cities).Error; err != nil {
		return nil, err
	}
	for _, c := range cities {
		names[c.ID] = c.City
	}
	return names, nil
}
