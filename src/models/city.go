package models

import "github.com/william000000/team-odd-bn-backend/src/types"

type City struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	City string `gorm:"not null;check:city <> ''" json:"city"`
	Slug string `gorm:"index" json:"slug,omitempty"`

	types.Timestamps
}
