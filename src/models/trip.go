package models

import (
	"time"

	"github.com/william000000/team-odd-bn-backend/src/types"
)

type TripType struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Status struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	Status string `gorm:"uniqueIndex;not null" json:"status"`
}

var DefaultTripTypes = []TripType{
	{ID: uint(types.TRIP_ONE_WAY), Name: "one way"},
	{ID: uint(types.TRIP_RETURN), Name: "return trip"},
	{ID: uint(types.TRIP_MULTI_CITY), Name: "multi-city"},
}

var DefaultStatuses = []Status{
	{ID: uint(types.TRIP_REQUEST_PENDING), Status: types.TRIP_REQUEST_PENDING.String()},
	{ID: uint(types.TRIP_REQUEST_APPROVED), Status: types.TRIP_REQUEST_APPROVED.String()},
	{ID: uint(types.TRIP_REQUEST_REJECTED), Status: types.TRIP_REQUEST_REJECTED.String()},
}

type TripRequest struct {
	ID         uint `gorm:"primarykey" json:"id"`
	UserID     uint `gorm:"index;not null" json:"userId"`
	TripTypeID uint `gorm:"not null" json:"tripTypeId"`
	StatusID   uint `gorm:"not null;default:1" json:"statusId"`

	User     *User     `gorm:"foreignKey:user_id" json:"user,omitempty"`
	TripType *TripType `gorm:"foreignKey:trip_type_id" json:"tripType,omitempty"`
	Status   *Status   `gorm:"foreignKey:status_id" json:"status,omitempty"`
	Trips    []Trip    `gorm:"foreignKey:trip_request_id" json:"trips,omitempty"`
	Comments []Comment `gorm:"foreignKey:trip_request_id" json:"comments,omitempty"`

	types.Timestamps
}

type Trip struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	TripRequestID uint       `gorm:"index;not null" json:"tripRequestId"`
	OriginID      uint       `gorm:"not null" json:"originId"`
	DestinationID uint       `gorm:"index;not null" json:"destinationId"`
	Reason        string     `json:"reason"`
	StartDate     time.Time  `gorm:"type:date;not null" json:"startDate"`
	ReturnDate    *time.Time `gorm:"type:date" json:"returnDate"`

	TripRequest *TripRequest `gorm:"foreignKey:trip_request_id" json:"tripRequest,omitempty"`
	Origin      *City        `gorm:"foreignKey:origin_id" json:"origin,omitempty"`
	Destination *City        `gorm:"foreignKey:destination_id" json:"destination,omitempty"`

	types.Timestamps
}
