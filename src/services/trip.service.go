package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

type TripService struct {
	trips          repository.TripRepository
	profiles       repository.ProfileRepository
	cities         repository.CityRepository
	accommodations repository.AccommodationRepository
	tx             repository.Transactor
	events         lib.EventPublisher
}

func NewTripService(
	trips repository.TripRepository,
	profiles repository.ProfileRepository,
	cities repository.CityRepository,
	accommodations repository.AccommodationRepository,
	tx repository.Transactor,
	events lib.EventPublisher,
) *TripService {
	if events == nil {
		events = lib.NoopPublisher{}
	}
	return &TripService{
		trips:          trips,
		profiles:       profiles,
		cities:         cities,
		accommodations: accommodations,
		tx:             tx,
		events:         events,
	}
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(config.DATE_FORMAT, value)
}

func legToUpdate(leg types.ItineraryLeg) (repository.TripUpdate, error) {
	start, err := ParseDate(leg.StartDate)
	if err != nil {
		return repository.TripUpdate{}, types.BadRequest("startDate should be a valid date (YYYY-MM-DD)")
	}
	update := repository.TripUpdate{
		OriginID:      leg.OriginID,
		DestinationID: leg.DestinationID,
		Reason:        leg.Reason,
		StartDate:     start,
	}
	if leg.ReturnDate != nil && *leg.ReturnDate != "" {
		ret, err := ParseDate(*leg.ReturnDate)
		if err != nil {
			return repository.TripUpdate{}, types.BadRequest("returnDate should be a valid date (YYYY-MM-DD)")
		}
		update.ReturnDate = &ret
	}
	return update, nil
}

func (s *TripService) checkCities(ctx context.Context, legs []types.ItineraryLeg) error {
	ids := make([]uint, 0, len(legs)*2)
	for _, leg := range legs {
		ids = append(ids, leg.OriginID, leg.DestinationID)
	}
	names, err := s.cities.NamesByIDs(ctx, ids...)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return types.NotFound(fmt.Sprintf("City with id %d does not exist", id))
		}
	}
	return nil
}

// CreateTripRequest stores a pending request with one trip per leg.
func (s *TripService) CreateTripRequest(ctx context.Context, principal types.Principal, tripType types.TripType, legs []types.ItineraryLeg) (*models.TripRequest, error) {
	if len(legs) == 0 {
		return nil, types.BadRequest("itinerary should contain at least one trip")
	}
	if tripType == types.TRIP_MULTI_CITY && len(legs) < 2 {
		return nil, types.BadRequest("itinerary should contain at least two legs")
	}
	request := &models.TripRequest{
		UserID:     principal.ID,
		TripTypeID: uint(tripType),
		StatusID:   uint(types.TRIP_REQUEST_PENDING),
	}
	for _, leg := range legs {
		update, err := legToUpdate(leg)
		if err != nil {
			return nil, err
		}
		if tripType == types.TRIP_ONE_WAY {
			update.ReturnDate = nil
		}
		request.Trips = append(request.Trips, models.Trip{
			OriginID:      update.OriginID,
			DestinationID: update.DestinationID,
			Reason:        update.Reason,
			StartDate:     update.StartDate,
			ReturnDate:    update.ReturnDate,
		})
	}
	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkCities(ctx, legs); err != nil {
			return err
		}
		return s.trips.CreateRequest(ctx, request)
	})
	if err != nil {
		log.Printf("[TripService] CreateTripRequest: %s\n", err.Error())
		return nil, err
	}
	s.publish(ctx, types.EVENT_TRIP_REQUEST_CREATED, request, principal.ID)
	return request, nil
}

// EditTripRequest replaces the request's trips positionally: leg i updates
// the i-th trip by ascending id. The request goes back to pending.
func (s *TripService) EditTripRequest(ctx context.Context, principal types.Principal, tripRequestID uint, itinerary []types.ItineraryLeg) ([]types.ItineraryLeg, error) {
	request, err := s.trips.FindRequest(ctx, tripRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Trip request not found")
		}
		return nil, err
	}
	if request.UserID != principal.ID {
		return nil, types.Forbidden("You are not allowed to edit this trip request")
	}
	updates := make([]repository.TripUpdate, len(itinerary))
	for i, leg := range itinerary {
		if updates[i], err = legToUpdate(leg); err != nil {
			return nil, err
		}
	}

	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		ids, err := s.trips.TripIDs(ctx, tripRequestID)
		if err != nil {
			return err
		}
		if len(itinerary) > len(ids) {
			return types.BadRequest(fmt.Sprintf("Trip request has %d trips but %d were submitted", len(ids), len(itinerary)))
		}
		if err := s.checkCities(ctx, itinerary); err != nil {
			return err
		}
		if err := s.trips.SetRequestStatus(ctx, tripRequestID, types.TRIP_REQUEST_PENDING); err != nil {
			return err
		}
		for i, update := range updates {
			if err := s.trips.UpdateTrip(ctx, ids[i], update); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[TripService] EditTripRequest %d: %s\n", tripRequestID, err.Error())
		return nil, err
	}
	request.StatusID = uint(types.TRIP_REQUEST_PENDING)
	s.publish(ctx, types.EVENT_TRIP_REQUEST_UPDATED, request, principal.ID)
	return itinerary, nil
}

// UpdateTripRequestStatus lets a manager approve or reject a pending request
// from one of their direct reports.
func (s *TripService) UpdateTripRequestStatus(ctx context.Context, principal types.Principal, tripRequestID uint, status types.TripRequestStatus) (*models.TripRequest, error) {
	if status != types.TRIP_REQUEST_APPROVED && status != types.TRIP_REQUEST_REJECTED {
		return nil, types.BadRequest("status should be approved or rejected")
	}
	var request *models.TripRequest
	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.trips.FindRequest(ctx, tripRequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Trip request not found")
			}
			return err
		}
		profile, err := s.profiles.FindByUserID(ctx, request.UserID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if profile == nil || profile.ManagerID == nil || *profile.ManagerID != principal.ID {
			return types.Forbidden("You are not the manager of this requester")
		}
		if request.StatusID != uint(types.TRIP_REQUEST_PENDING) {
			return types.NewHTTPError(http.StatusConflict, fmt.Sprintf("Trip request is already %s", types.TripRequestStatus(request.StatusID)))
		}
		if err := s.trips.SetRequestStatus(ctx, tripRequestID, status); err != nil {
			return err
		}
		request.StatusID = uint(status)
		return nil
	})
	if err != nil {
		log.Printf("[TripService] UpdateTripRequestStatus %d: %s\n", tripRequestID, err.Error())
		return nil, err
	}
	eventType := types.EVENT_TRIP_REQUEST_APPROVED
	if status == types.TRIP_REQUEST_REJECTED {
		eventType = types.EVENT_TRIP_REQUEST_REJECTED
	}
	s.publish(ctx, eventType, request, principal.ID)
	return request, nil
}

// AvailTripRequestsToManager lists the manager's direct reports that have
// pending requests.
func (s *TripService) AvailTripRequestsToManager(ctx context.Context, managerID uint) ([]models.UserProfile, error) {
	profiles, err := s.profiles.ReportsWithPendingRequests(ctx, managerID)
	if err != nil {
		return nil, err
	}
	result := make([]models.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.User == nil || len(p.User.TripRequests) == 0 {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *TripService) GetUserRequests(ctx context.Context, userID uint) ([]models.Trip, error) {
	return s.trips.TripsForUser(ctx, userID)
}

func (s *TripService) namedTrips(ctx context.Context, trips []models.Trip) ([]types.TripView, error) {
	ids := make([]uint, 0, len(trips)*2)
	for _, t := range trips {
		ids = append(ids, t.OriginID, t.DestinationID)
	}
	names, err := s.cities.NamesByIDs(ctx, ids...)
	if err != nil {
		return nil, err
	}
	views := make([]types.TripView, 0, len(trips))
	for _, t := range trips {
		views = append(views, types.TripView{
			ID:            t.ID,
			TripRequestID: t.TripRequestID,
			Origin:        names[t.OriginID],
			Destination:   names[t.DestinationID],
			Reason:        t.Reason,
			StartDate:     t.StartDate,
			ReturnDate:    t.ReturnDate,
		})
	}
	return views, nil
}

// GetUserTrips returns trips with city names in place of ids. Managers see the
// whole history of subordinateID; everyone else sees their own trips of the
// given type starting within [from, to].
func (s *TripService) GetUserTrips(ctx context.Context, principal types.Principal, tripTypeID uint, from string, to string, subordinateID uint) (any, error) {
	if principal.RoleID == types.ROLE_MANAGER && subordinateID != 0 {
		profile, err := s.profiles.FindReport(ctx, principal.ID, subordinateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, types.NotFound("User is not one of your direct reports")
			}
			return nil, err
		}
		view := types.SubordinateTripsView{UserID: profile.UserID, TripRequests: []types.TripRequestView{}}
		if profile.User != nil {
			view.FirstName = profile.User.FirstName
			view.LastName = profile.User.LastName
			view.Email = profile.User.Email
			for _, req := range profile.User.TripRequests {
				trips, err := s.namedTrips(ctx, req.Trips)
				if err != nil {
					return nil, err
				}
				view.TripRequests = append(view.TripRequests, types.TripRequestView{
					ID:         req.ID,
					TripTypeID: req.TripTypeID,
					StatusID:   req.StatusID,
					Trips:      trips,
				})
			}
		}
		return view, nil
	}

	fromDate, err := ParseDate(from)
	if err != nil {
		return nil, types.BadRequest("from should be a valid date (YYYY-MM-DD)")
	}
	toDate, err := ParseDate(to)
	if err != nil {
		return nil, types.BadRequest("to should be a valid date (YYYY-MM-DD)")
	}
	if toDate.Before(fromDate) {
		return nil, types.BadRequest("to should not be before from")
	}
	trips, err := s.trips.TripsForUserInRange(ctx, principal.ID, tripTypeID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return s.namedTrips(ctx, trips)
}

func (s *TripService) GetInfoAboutDestination(ctx context.Context) (*types.DestinationInfo, error) {
	top, err := s.trips.MostTravelledDestination(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("No trips have been made yet")
		}
		return nil, err
	}
	count, err := s.accommodations.CountInCity(ctx, top.DestinationID)
	if err != nil {
		return nil, err
	}
	return &types.DestinationInfo{
		DestinationID:       top.DestinationID,
		City:                top.City,
		TimesVisited:        top.Count,
		AccommodationsCount: count,
	}, nil
}

func (s *TripService) GetSingleTrip(ctx context.Context, tripID uint) (*types.SingleTripView, error) {
	trip, err := s.trips.FindTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Trip not found")
		}
		return nil, err
	}
	names, err := s.cities.NamesByIDs(ctx, trip.OriginID, trip.DestinationID)
	if err != nil {
		return nil, err
	}
	return &types.SingleTripView{
		ID:            trip.ID,
		TripRequestID: trip.TripRequestID,
		OriginID:      trip.OriginID,
		DestinationID: trip.DestinationID,
		Reason:        trip.Reason,
		StartDate:     trip.StartDate,
		ReturnDate:    trip.ReturnDate,
		City: types.CityPair{
			Origin:      names[trip.OriginID],
			Destination: names[trip.DestinationID],
		},
	}, nil
}

func (s *TripService) publish(ctx context.Context, eventType types.EventType, request *models.TripRequest, actorID uint) {
	event := types.TripRequestEvent{
		Type:          eventType,
		TripRequestID: request.ID,
		ActorID:       actorID,
		RequesterID:   request.UserID,
		StatusID:      request.StatusID,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("[TripService] publish %s: %s\n", eventType, err.Error())
	}
}
