package models

import "github.com/william000000/team-odd-bn-backend/src/types"

type Comment struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	TripRequestID uint   `gorm:"index;not null" json:"tripRequestId"`
	UserID        uint   `gorm:"not null" json:"userId"`
	Comment       string `gorm:"type:text;not null" json:"comment"`

	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
