package scopes

import (
	"time"

	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithIDs(ids ...uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", ids)
	}
}

func WithPendingStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status_id = ?", types.TRIP_REQUEST_PENDING)
}

func WithUser(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// StartingBetween filters trips by start date, inclusive.
func StartingBetween(from time.Time, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("trips.start_date BETWEEN ? AND ?", from, to)
	}
}

func OrderedByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
