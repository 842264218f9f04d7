package repository

import (
	"context"
	"time"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/models/scopes"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

type TripUpdate struct {
	OriginID      uint
	DestinationID uint
	Reason        string
	StartDate     time.Time
	ReturnDate    *time.Time
}

type DestinationCount struct {
	DestinationID uint
	City          string
	Count         int64
}

type TripRepository interface {
	CreateRequest(ctx context.Context, request *models.TripRequest) error
	FindRequest(ctx context.Context, id uint) (*models.TripRequest, error)
	// TripIDs returns the ids of the request's trips in ascending order.
	TripIDs(ctx context.Context, tripRequestID uint) ([]uint, error)
	SetRequestStatus(ctx context.Context, tripRequestID uint, status types.TripRequestStatus) error
	UpdateTrip(ctx context.Context, tripID uint, update TripUpdate) error
	FindTrip(ctx context.Context, id uint) (*models.Trip, error)
	TripsForUser(ctx context.Context, userID uint) ([]models.Trip, error)
	TripsForUserInRange(ctx context.Context, userID uint, tripTypeID uint, from time.Time, to time.Time) ([]models.Trip, error)
	MostTravelledDestination(ctx context.Context) (*DestinationCount, error)
}

type tripRepository struct{ base }

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{base{db}}
}

func (r *tripRepository) CreateRequest(ctx context.Context, request *models.TripRequest) error {
	return r.conn(ctx).Omit("User", "TripType", "Status", "Comments").Create(request).Error
}

func (r *tripRepository) FindRequest(ctx context.Context, id uint) (*models.TripRequest, error) {
	var request models.TripRequest
	err := r.conn(ctx).
		Preload("Trips", scopes.OrderedByID).
		First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *tripRepository) TripIDs(ctx context.Context, tripRequestID uint) ([]uint, error) {
	var ids []uint
	err := r.conn(ctx).
		Model(&models.Trip{}).
		Where("trip_request_id = ?", tripRequestID).
		Scopes(scopes.OrderedByID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *tripRepository) SetRequestStatus(ctx context.Context, tripRequestID uint, status types.TripRequestStatus) error {
	return r.conn(ctx).
		Model(&models.TripRequest{}).
		Scopes(scopes.WithID(tripRequestID)).
		Update("status_id", uint(status)).Error
}

func (r *tripRepository) UpdateTrip(ctx context.Context, tripID uint, update TripUpdate) error {
	return r.conn(ctx).
		Model(&models.Trip{}).
		Scopes(scopes.WithID(tripID)).
		Updates(map[string]any{
			"origin_id":      update.OriginID,
			"destination_id": update.DestinationID,
			"reason":         update.Reason,
			"start_date":     update.StartDate,
			"return_date":    update.ReturnDate,
		}).Error
}

func (r *tripRepository) FindTrip(ctx context.Context, id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := r.conn(ctx).Preload("TripRequest").First(&trip, id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) TripsForUser(ctx context.Context, userID uint) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.conn(ctx).
		Joins("TripRequest").
		Where(`"TripRequest"."user_id" = ?`, userID).
		Order("trips.id ASC").
		Find(&trips).Error
	return trips, err
}

func (r *tripRepository) TripsForUserInRange(ctx context.Context, userID uint, tripTypeID uint, from time.Time, to time.Time) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.conn(ctx).
		Joins("TripRequest").
		Where(`"TripRequest"."user_id" = ? AND "TripRequest"."trip_type_id" = ?`, userID, tripTypeID).
		Scopes(scopes.StartingBetween(from, to)).
		Order("trips.start_date ASC, trips.id ASC").
		Find(&trips).Error
	return trips, err
}

// MostTravelledDestination breaks ties on city name.
func (r *tripRepository) MostTravelledDestination(ctx context.Context) (*DestinationCount, error) {
	var row DestinationCount
	res := r.conn(ctx).
		Table("trips").
		Select("trips.destination_id AS destination_id, cities.city AS city, COUNT(trips.id) AS count").
		Joins("JOIN cities ON cities.id = trips.destination_id").
		Where("trips.deleted_at IS NULL").
		Group("trips.destination_id, cities.city").
		Order("count DESC, cities.city ASC").
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
