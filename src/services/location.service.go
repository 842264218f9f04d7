package services

import (
	"context"
	"strings"

	"github.com/gosimple/slug"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
)

type LocationService struct {
	cities repository.CityRepository
}

func NewLocationService(cities repository.CityRepository) *LocationService {
	return &LocationService{cities: cities}
}

func (s *LocationService) Create(ctx context.Context, name string) (*models.City, error) {
	name = strings.TrimSpace(name)
	city := &models.City{City: name, Slug: slug.Make(name)}
	if err := s.cities.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *LocationService) List(ctx context.Context) ([]models.City, error) {
	return s.cities.List(ctx)
}
