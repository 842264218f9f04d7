package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

// ImageStore persists uploaded images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type AccommodationService struct {
	accommodations repository.AccommodationRepository
	cities         repository.CityRepository
	images         ImageStore
}

func NewAccommodationService(accommodations repository.AccommodationRepository, cities repository.CityRepository, images ImageStore) *AccommodationService {
	return &AccommodationService{accommodations: accommodations, cities: cities, images: images}
}

func (s *AccommodationService) Create(ctx context.Context, principal types.Principal, body *types.AccommodationRequestBody) (*models.Accommodation, error) {
	city, err := s.cities.FindByID(ctx, body.CityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("City does not exist")
		}
		return nil, err
	}
	accommodation := &models.Accommodation{
		Name:        strings.TrimSpace(body.Name),
		Slug:        slug.Make(fmt.Sprintf("%s %s %s", body.Name, city.City, uuid.NewString()[:8])),
		CityID:      city.ID,
		Address:     body.Address,
		Description: body.Description,
		ImageUrls:   types.StringArray{},
		CreatedBy:   principal.ID,
	}
	if err := s.accommodations.Create(ctx, accommodation); err != nil {
		return nil, err
	}
	accommodation.City = city
	return accommodation, nil
}

func (s *AccommodationService) List(ctx context.Context) ([]models.Accommodation, error) {
	return s.accommodations.List(ctx)
}

func (s *AccommodationService) Get(ctx context.Context, id uint) (*models.Accommodation, error) {
	accommodation, err := s.accommodations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Accommodation not found")
		}
		return nil, err
	}
	return accommodation, nil
}

func (s *AccommodationService) owned(ctx context.Context, principal types.Principal, id uint) (*models.Accommodation, error) {
	accommodation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if accommodation.CreatedBy != principal.ID && !principal.HasRole(types.ROLE_SUPER_ADMIN, types.ROLE_TRAVEL_ADMIN) {
		return nil, types.Forbidden("You are not allowed to perform this action")
	}
	return accommodation, nil
}

func (s *AccommodationService) AddRoom(ctx context.Context, principal types.Principal, accommodationID uint, body *types.RoomRequestBody) (*models.Room, error) {
	if _, err := s.owned(ctx, principal, accommodationID); err != nil {
		return nil, err
	}
	room := &models.Room{
		AccommodationID: accommodationID,
		Name:            body.Name,
		RoomType:        body.RoomType,
		Price:           body.Price,
		Status:          "available",
	}
	if err := s.accommodations.AddRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *AccommodationService) AddImage(ctx context.Context, principal types.Principal, accommodationID uint, contentType string, body io.Reader) (*models.Accommodation, error) {
	if s.images == nil {
		return nil, errors.New("image storage is not configured")
	}
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, types.BadRequest("image should be a jpeg, png or webp file")
	}
	accommodation, err := s.owned(ctx, principal, accommodationID)
	if err != nil {
		return nil, err
	}
	key := path.Join("accommodations", fmt.Sprint(accommodationID), uuid.NewString()+ext)
	url, err := s.images.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}
	urls := append(types.StringArray{}, accommodation.ImageUrls...)
	urls = append(urls, url)
	if err := s.accommodations.SetImages(ctx, accommodationID, urls); err != nil {
		return nil, err
	}
	accommodation.ImageUrls = urls
	return accommodation, nil
}
