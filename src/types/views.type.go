package types

import "time"

// TripView is a trip whose origin and destination are city names.
type TripView struct {
	ID            uint       `json:"id"`
	TripRequestID uint       `json:"tripRequestId"`
	Origin        string     `json:"originId"`
	Destination   string     `json:"destinationId"`
	Reason        string     `json:"reason,omitempty"`
	StartDate     time.Time  `json:"startDate"`
	ReturnDate    *time.Time `json:"returnDate"`
}

type TripRequestView struct {
	ID         uint       `json:"id"`
	TripTypeID uint       `json:"tripTypeId"`
	StatusID   uint       `json:"statusId"`
	Trips      []TripView `json:"trips"`
}

// SubordinateTripsView is what a manager sees for one direct report.
type SubordinateTripsView struct {
	UserID       uint              `json:"userId"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	Email        string            `json:"email"`
	TripRequests []TripRequestView `json:"tripRequests"`
}

type CityPair struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type SingleTripView struct {
	ID            uint       `json:"id"`
	TripRequestID uint       `json:"tripRequestId"`
	OriginID      uint       `json:"originId"`
	DestinationID uint       `json:"destinationId"`
	Reason        string     `json:"reason"`
	StartDate     time.Time  `json:"startDate"`
	ReturnDate    *time.Time `json:"returnDate"`
	City          CityPair   `json:"city"`
}

type DestinationInfo struct {
	DestinationID       uint   `json:"destinationId"`
	City                string `json:"city"`
	TimesVisited        int64  `json:"timesVisited"`
	AccommodationsCount int64  `json:"accommodationsCount"`
}

type AuthView struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}
