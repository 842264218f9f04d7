package models

import (
	"time"

	"github.com/william000000/team-odd-bn-backend/src/types"
)

type Booking struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	TripID       uint      `gorm:"index;not null" json:"tripId"`
	RoomID       uint      `gorm:"index;not null" json:"roomId"`
	CheckInDate  time.Time `gorm:"type:date;not null" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"type:date;not null" json:"checkOutDate"`

	Trip *Trip `gorm:"foreignKey:trip_id" json:"trip,omitempty"`
	Room *Room `gorm:"foreignKey:room_id" json:"room,omitempty"`

	types.Timestamps
}
