package repository

import (
	"context"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListForUser(ctx context.Context, userID uint) ([]models.Booking, error)
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
}

type bookingRepository struct{ base }

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{base{db}}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.conn(ctx).Omit("Trip", "Room").Create(booking).Error
}

func (r *bookingRepository) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.conn(ctx).
		Preload("Room").
		Joins("JOIN trips ON trips.id = bookings.trip_id").
		Joins("JOIN trip_requests ON trip_requests.id = trips.trip_request_id").
		Where("trip_requests.user_id = ?", userID).
		Order("bookings.id ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.conn(ctx).
		Preload("Trip.TripRequest").
		Preload("Room").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
