package models

import "github.com/william000000/team-odd-bn-backend/src/types"

type Accommodation struct {
	ID          uint              `gorm:"primarykey" json:"id"`
	Name        string            `gorm:"not null" json:"name"`
	Slug        string            `gorm:"uniqueIndex" json:"slug"`
	CityID      uint              `gorm:"index;not null" json:"cityId"`
	Address     string            `json:"address"`
	Description string            `json:"description,omitempty"`
	ImageUrls   types.StringArray `gorm:"type:jsonb;default:'[]'" json:"imageUrls"`
	CreatedBy   uint              `json:"createdBy"`

	City  *City  `gorm:"foreignKey:city_id" json:"city,omitempty"`
	Rooms []Room `gorm:"foreignKey:accommodation_id" json:"rooms,omitempty"`

	types.Timestamps
}

type Room struct {
	ID              uint    `gorm:"primarykey" json:"id"`
	AccommodationID uint    `gorm:"index;not null" json:"accommodationId"`
	Name            string  `json:"name"`
	RoomType        string  `json:"roomType"`
	Price           float64 `json:"price"`
	Status          string  `gorm:"default:available" json:"status"`

	Accommodation *Accommodation `gorm:"foreignKey:accommodation_id" json:"accommodation,omitempty"`

	types.Timestamps
}
