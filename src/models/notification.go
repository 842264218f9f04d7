package models

import (
	"github.com/google/uuid"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

type Notification struct {
	ID            uuid.UUID       `gorm:"primarykey;type:uuid" json:"id"`
	UserID        uint            `gorm:"index;not null" json:"userId"`
	TripRequestID uint            `json:"tripRequestId"`
	Message       string          `json:"message"`
	Type          types.EventType `json:"type"`
	IsRead        bool            `gorm:"default:false" json:"isRead"`
	Metadata      types.JSONB     `gorm:"type:jsonb" json:"metadata,omitempty"`

	types.Timestamps
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&Role{},
		&User{},
		&UserProfile{},
		&City{},
		&TripType{},
		&Status{},
		&TripRequest{},
		&Trip{},
		&Accommodation{},
		&Room{},
		&Booking{},
		&Comment{},
		&Notification{},
	}
}
