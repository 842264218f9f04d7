package repository

import (
	"context"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/models/scopes"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

type ManagerPendingCount struct {
	ManagerID uint
	Email     string
	FirstName string
	Pending   int64
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
	// ReportsWithPendingRequests returns the manager's direct reports with
	// their pending trip requests and trips preloaded.
	ReportsWithPendingRequests(ctx context.Context, managerID uint) ([]models.UserProfile, error)
	// FindReport returns the profile of userID with every trip request
	// preloaded, only if managerID is their manager.
	FindReport(ctx context.Context, managerID uint, userID uint) (*models.UserProfile, error)
	PendingCountsByManager(ctx context.Context) ([]ManagerPendingCount, error)
}

type profileRepository struct{ base }

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{base{db}}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.conn(ctx).
		Preload("Manager").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	return r.conn(ctx).Omit("User", "Manager").Save(profile).Error
}

func (r *profileRepository) ReportsWithPendingRequests(ctx context.Context, managerID uint) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := r.conn(ctx).
		Select("id", "user_id", "manager_id").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name", "email")
		}).
		Preload("User.TripRequests", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "trip_type_id", "status_id").
				Scopes(scopes.WithPendingStatus, scopes.OrderedByID)
		}).
		Preload("User.TripRequests.Trips", scopes.OrderedByID).
		Where("manager_id = ?", managerID).
		Order("id ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) FindReport(ctx context.Context, managerID uint, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.conn(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name", "email")
		}).
		Preload("User.TripRequests", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id", "trip_type_id", "status_id").Order("id ASC")
		}).
		Preload("User.TripRequests.Trips", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "trip_request_id", "origin_id", "destination_id", "start_date", "return_date").Order("id ASC")
		}).
		Where("user_id = ? AND manager_id = ?", userID, managerID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) PendingCountsByManager(ctx context.Context) ([]ManagerPendingCount, error) {
	var rows []ManagerPendingCount
	err := r.conn(ctx).
		Table("user_profiles").
		Select("user_profiles.manager_id AS manager_id, managers.email AS email, managers.first_name AS first_name, COUNT(trip_requests.id) AS pending").
		Joins("JOIN trip_requests ON trip_requests.user_id = user_profiles.user_id AND trip_requests.deleted_at IS NULL").
		Joins("JOIN users AS managers ON managers.id = user_profiles.manager_id").
		Where("trip_requests.status_id = ? AND user_profiles.deleted_at IS NULL", types.TRIP_REQUEST_PENDING).
		Group("user_profiles.manager_id, managers.email, managers.first_name").
		Order("user_profiles.manager_id ASC").
		Scan(&rows).Error
	return rows, err
}
