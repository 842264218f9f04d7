package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// JSONB is a free-form object kept in a jsonb column. A nil map is stored as NULL.
type JSONB map[string]any
type StringArray []string

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (j *JSONB) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return fmt.Errorf("cannot scan %T into JSONB", src)
}

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringArray) Scan(value any) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, a)
}

const (
	ROLE_SUPER_ADMIN    uint = 1
	ROLE_TRAVEL_ADMIN   uint = 2
	ROLE_TRAVEL_TEAM    uint = 3
	ROLE_SUPPLIER       uint = 4
	ROLE_REQUESTER      uint = 5
	ROLE_MANAGER        uint = 6
	DEFAULT_USER_ROLE        = ROLE_REQUESTER
)

type TripType uint

const (
	TRIP_ONE_WAY    TripType = 1
	TRIP_RETURN     TripType = 2
	TRIP_MULTI_CITY TripType = 3
)

type TripRequestStatus uint

const (
	TRIP_REQUEST_PENDING  TripRequestStatus = 1
	TRIP_REQUEST_APPROVED TripRequestStatus = 2
	TRIP_REQUEST_REJECTED TripRequestStatus = 3
)

func (s TripRequestStatus) String() string {
	switch s {
	case TRIP_REQUEST_PENDING:
		return "pending"
	case TRIP_REQUEST_APPROVED:
		return "approved"
	case TRIP_REQUEST_REJECTED:
		return "rejected"
	}
	return "unknown"
}

type Provider string

const (
	PROVIDER_LOCAL    Provider = "local"
	PROVIDER_FACEBOOK Provider = "facebook"
	PROVIDER_GOOGLE   Provider = "google"
)

type EventType string

const (
	EVENT_TRIP_REQUEST_CREATED  EventType = "trip_request.created"
	EVENT_TRIP_REQUEST_UPDATED  EventType = "trip_request.updated"
	EVENT_TRIP_REQUEST_APPROVED EventType = "trip_request.approved"
	EVENT_TRIP_REQUEST_REJECTED EventType = "trip_request.rejected"
	EVENT_TRIP_REQUEST_COMMENT  EventType = "trip_request.commented"
)

// TripRequestEvent is the payload published on the trip-requests topic.
type TripRequestEvent struct {
	Type          EventType `json:"type"`
	TripRequestID uint      `json:"tripRequestId"`
	ActorID       uint      `json:"actorId"`
	RequesterID   uint      `json:"requesterId"`
	StatusID      uint      `json:"statusId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type TripRequestParams struct {
	TripRequestID uint `uri:"tripRequestId" binding:"required"`
}

type TripParams struct {
	TripID uint `uri:"tripId" binding:"required"`
}

type TripTypeParams struct {
	TripTypeID uint `uri:"tripTypeId" binding:"required,min=1,max=3"`
}

type TripRangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
	User uint   `form:"user"`
}

type SignupRequestBody struct {
	FirstName string `json:"firstName" binding:"required,alpha" msg:"first name should be valid"`
	LastName  string `json:"lastName" binding:"required,alpha" msg:"last name should be valid"`
	Email     string `json:"email" binding:"required,trimmedemail" msg:"email should be valid"`
	Password  string `json:"password" binding:"required,min=6" msg:"minimum password length is 6"`
}

type SigninRequestBody struct {
	Email    string `json:"email" binding:"required,trimmedemail" msg:"email should be valid"`
	Password string `json:"password" binding:"required,min=6" msg:"minimum password length is 6"`
}

type SocialLoginRequestBody struct {
	AccessToken string `json:"access_token" binding:"required" msg:"access_token is required"`
}

type OneWayTripRequestBody struct {
	OriginID      uint   `json:"originId" binding:"required,gt=0" msg:"city should be valid"`
	DestinationID uint   `json:"destinationId" binding:"required,gt=0" msg:"city should be valid"`
	Reason        string `json:"reason" binding:"required,min=2" msg:"reason should be characters"`
	StartDate     string `json:"startDate" binding:"required,beforetoday" msg:"date should be validate like in this format(YYYY-DD--MM)"`
}

type ReturnTripRequestBody struct {
	OriginID      uint   `json:"originId" binding:"required,gt=0" msg:"city should be valid"`
	DestinationID uint   `json:"destinationId" binding:"required,gt=0" msg:"city should be valid"`
	Reason        string `json:"reason" binding:"required,min=2" msg:"reason should be characters"`
	StartDate     string `json:"startDate" binding:"required,isodate" msg:"startDate should be a valid date (YYYY-MM-DD)"`
	ReturnDate    string `json:"returnDate" binding:"required,isodate,gtdate=StartDate" msg:"returnDate should be a date after startDate"`
}

type ItineraryLeg struct {
	OriginID      uint    `json:"originId" binding:"required,gt=0" msg:"city should be valid"`
	DestinationID uint    `json:"destinationId" binding:"required,gt=0" msg:"city should be valid"`
	Reason        string  `json:"reason" binding:"required,min=2" msg:"reason should be characters"`
	StartDate     string  `json:"startDate" binding:"required,isodate" msg:"startDate should be a valid date (YYYY-MM-DD)"`
	ReturnDate    *string `json:"returnDate,omitempty" binding:"omitempty,isodate,gtdate=StartDate" msg:"returnDate should be a date after startDate"`
}

type MultiCityTripRequestBody struct {
	Itinerary []ItineraryLeg `json:"itinerary" binding:"required,min=2,dive" msg:"itinerary should contain at least two legs"`
}

// EditTripRequestBody accepts either an itinerary array or a single leg
// at the top level of the body.
type EditTripRequestBody struct {
	Itinerary     []ItineraryLeg `json:"itinerary" binding:"omitempty,dive" msg:"itinerary should be valid"`
	OriginID      uint           `json:"originId" binding:"required_without=Itinerary" msg:"city should be valid"`
	DestinationID uint           `json:"destinationId" binding:"required_without=Itinerary" msg:"city should be valid"`
	Reason        string         `json:"reason" binding:"required_without=Itinerary" msg:"reason should be characters"`
	StartDate     string         `json:"startDate" binding:"required_without=Itinerary" msg:"startDate should be a valid date (YYYY-MM-DD)"`
	ReturnDate    *string        `json:"returnDate,omitempty"`
}

func (b *EditTripRequestBody) Legs() []ItineraryLeg {
	if len(b.Itinerary) > 0 {
		return b.Itinerary
	}
	return []ItineraryLeg{{
		OriginID:      b.OriginID,
		DestinationID: b.DestinationID,
		Reason:        b.Reason,
		StartDate:     b.StartDate,
		ReturnDate:    b.ReturnDate,
	}}
}

type RoleRequestBody struct {
	ID    uint   `uri:"id" json:"-" binding:"required,gt=0" msg:"ID should be an integer"`
	Email string `json:"email" binding:"required,trimmedemail" msg:"email should be valid"`
}

type LocationRequestBody struct {
	Name string `json:"name"`
}

type ProfileRequestBody struct {
	ManagerID  *uint   `json:"managerId,omitempty" binding:"omitempty,gt=0" msg:"managerId should be an integer"`
	Gender     *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other" msg:"gender should be male, female or other"`
	BirthDate  *string `json:"birthDate,omitempty" binding:"omitempty,isodate" msg:"birthDate should be a valid date (YYYY-MM-DD)"`
	Department *string `json:"department,omitempty" binding:"omitempty,min=2" msg:"department should be valid"`
	Address    *string `json:"address,omitempty" binding:"omitempty,min=2" msg:"address should be valid"`
}

type AccommodationRequestBody struct {
	Name        string `json:"name" binding:"required,min=2" msg:"name should be valid"`
	CityID      uint   `json:"cityId" binding:"required,gt=0" msg:"city should be valid"`
	Address     string `json:"address" binding:"required,min=2" msg:"address should be valid"`
	Description string `json:"description,omitempty"`
}

type RoomRequestBody struct {
	Name     string  `json:"name" binding:"required" msg:"name is required"`
	RoomType string  `json:"roomType" binding:"required" msg:"roomType is required"`
	Price    float64 `json:"price" binding:"required,gt=0" msg:"price should be a positive number"`
}

type BookingRequestBody struct {
	TripID       uint   `json:"tripId" binding:"required,gt=0" msg:"tripId should be an integer"`
	RoomID       uint   `json:"roomId" binding:"required,gt=0" msg:"roomId should be an integer"`
	CheckInDate  string `json:"checkInDate" binding:"required,isodate" msg:"checkInDate should be a valid date (YYYY-MM-DD)"`
	CheckOutDate string `json:"checkOutDate" binding:"required,isodate,gtdate=CheckInDate" msg:"checkOutDate should be a date after checkInDate"`
}

type CommentRequestBody struct {
	Comment string `json:"comment" binding:"required,min=1,max=1000" msg:"comment should be valid"`
}
