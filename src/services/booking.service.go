package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

type BookingService struct {
	bookings       repository.BookingRepository
	trips          repository.TripRepository
	accommodations repository.AccommodationRepository
	qrcodeDir      string
}

func NewBookingService(bookings repository.BookingRepository, trips repository.TripRepository, accommodations repository.AccommodationRepository) *BookingService {
	return &BookingService{
		bookings:       bookings,
		trips:          trips,
		accommodations: accommodations,
		qrcodeDir:      path.Join(os.TempDir(), "barefoot-qrcodes"),
	}
}

func BookingReference(id uint) string {
	return fmt.Sprintf("BN-%06d", id)
}

func (s *BookingService) Create(ctx context.Context, principal types.Principal, body *types.BookingRequestBody) (*models.Booking, error) {
	trip, err := s.trips.FindTrip(ctx, body.TripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Trip not found")
		}
		return nil, err
	}
	if trip.TripRequest == nil || trip.TripRequest.UserID != principal.ID {
		return nil, types.Forbidden("You can only book rooms for your own trips")
	}
	if _, err := s.accommodations.FindRoom(ctx, body.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Room not found")
		}
		return nil, err
	}
	checkIn, err := ParseDate(body.CheckInDate)
	if err != nil {
		return nil, types.BadRequest("checkInDate should be a valid date (YYYY-MM-DD)")
	}
	checkOut, err := ParseDate(body.CheckOutDate)
	if err != nil {
		return nil, types.BadRequest("checkOutDate should be a valid date (YYYY-MM-DD)")
	}
	if !checkOut.After(checkIn) {
		return nil, types.BadRequest("checkOutDate should be a date after checkInDate")
	}
	booking := &models.Booking{
		TripID:       body.TripID,
		RoomID:       body.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context, principal types.Principal) ([]models.Booking, error) {
	return s.bookings.ListForUser(ctx, principal.ID)
}

func (s *BookingService) Get(ctx context.Context, principal types.Principal, id uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Booking not found")
		}
		return nil, err
	}
	owner := booking.Trip != nil && booking.Trip.TripRequest != nil && booking.Trip.TripRequest.UserID == principal.ID
	if !owner && !principal.HasRole(types.ROLE_SUPER_ADMIN, types.ROLE_TRAVEL_ADMIN) {
		return nil, types.Forbidden("You are not allowed to view this booking")
	}
	return booking, nil
}

// QRCode renders the booking reference to a JPEG and returns its path.
func (s *BookingService) QRCode(ctx context.Context, principal types.Principal, id uint) (string, error) {
	booking, err := s.Get(ctx, principal, id)
	if err != nil {
		return "", err
	}
	return lib.SaveQRCode(s.qrcodeDir, fmt.Sprintf("booking-%d", booking.ID), BookingReference(booking.ID))
}
