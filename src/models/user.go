package models

import (
	"time"

	"github.com/william000000/team-odd-bn-backend/src/types"
)

type User struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Password   string         `json:"-"`
	RoleID     uint           `gorm:"not null;default:5" json:"roleId"`
	Provider   types.Provider `gorm:"default:local" json:"provider,omitempty"`
	ProviderID string         `json:"-"`
	IsVerified bool           `gorm:"default:false" json:"isVerified"`

	Role         *Role         `gorm:"foreignKey:role_id" json:"role,omitempty"`
	Profile      *UserProfile  `gorm:"foreignKey:user_id" json:"profile,omitempty"`
	TripRequests []TripRequest `gorm:"foreignKey:user_id" json:"tripRequests,omitempty"`

	types.Timestamps
}

type UserProfile struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	UserID     uint       `gorm:"uniqueIndex;not null" json:"userId"`
	ManagerID  *uint      `gorm:"index" json:"managerId"`
	Gender     *string    `json:"gender"`
	BirthDate  *time.Time `gorm:"type:date" json:"birthDate"`
	Department *string    `json:"department"`
	Address    *string    `json:"address"`

	User    *User `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Manager *User `gorm:"foreignKey:manager_id" json:"manager,omitempty"`

	types.Timestamps
}
