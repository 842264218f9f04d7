package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
)

type TripController struct {
	trips *services.TripService
}

func NewTripController(trips *services.TripService) *TripController {
	return &TripController{trips: trips}
}

func (c *TripController) createTripRequest(ctx *gin.Context, tripType types.TripType, legs []types.ItineraryLeg) {
	request, err := c.trips.CreateTripRequest(ctx.Request.Context(), middlewares.GetPrincipal(ctx), tripType, legs)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusCreated, "Trip request created successfully", request)
}

func (c *TripController) CreateOneWayTrip(ctx *gin.Context) {
	body := middlewares.GetBody[types.OneWayTripRequestBody](ctx)
	c.createTripRequest(ctx, types.TRIP_ONE_WAY, []types.ItineraryLeg{{
		OriginID:      body.OriginID,
		DestinationID: body.DestinationID,
		Reason:        body.Reason,
		StartDate:     body.StartDate,
	}})
}

func (c *TripController) CreateReturnTrip(ctx *gin.Context) {
	body := middlewares.GetBody[types.ReturnTripRequestBody](ctx)
	c.createTripRequest(ctx, types.TRIP_RETURN, []types.ItineraryLeg{{
		OriginID:      body.OriginID,
		DestinationID: body.DestinationID,
		Reason:        body.Reason,
		StartDate:     body.StartDate,
		ReturnDate:    &body.ReturnDate,
	}})
}

func (c *TripController) CreateMultiCityTrip(ctx *gin.Context) {
	body := middlewares.GetBody[types.MultiCityTripRequestBody](ctx)
	c.createTripRequest(ctx, types.TRIP_MULTI_CITY, body.Itinerary)
}

func (c *TripController) EditTripRequest(ctx *gin.Context) {
	var params types.TripRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "tripRequestId should be an integer")
		return
	}
	body := middlewares.GetBody[types.EditTripRequestBody](ctx)
	itinerary, err := c.trips.EditTripRequest(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.TripRequestID, body.Legs())
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Trip request updated successfully", itinerary)
}

func (c *TripController) UpdateTripRequestStatus(status types.TripRequestStatus) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var params types.TripRequestParams
		if err := ctx.ShouldBindUri(&params); err != nil {
			utils.ErrorMessage(ctx, http.StatusBadRequest, "tripRequestId should be an integer")
			return
		}
		request, err := c.trips.UpdateTripRequestStatus(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.TripRequestID, status)
		if err != nil {
			utils.RespondError(ctx, err)
			return
		}
		utils.SuccessMessage(ctx, http.StatusOK, "Trip request "+status.String()+" successfully", request)
	}
}

func (c *TripController) AvailTripRequestsToManager(ctx *gin.Context) {
	profiles, err := c.trips.AvailTripRequestsToManager(ctx.Request.Context(), middlewares.GetPrincipal(ctx).ID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Pending trip requests retrieved successfully", profiles)
}

func (c *TripController) GetUserRequests(ctx *gin.Context) {
	trips, err := c.trips.GetUserRequests(ctx.Request.Context(), middlewares.GetPrincipal(ctx).ID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Trip requests retrieved successfully", trips)
}

func (c *TripController) GetUserTrips(ctx *gin.Context) {
	var params types.TripTypeParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "tripTypeId should be 1, 2 or 3")
		return
	}
	var query types.TripRangeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "user should be an integer")
		return
	}
	trips, err := c.trips.GetUserTrips(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.TripTypeID, query.From, query.To, query.User)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Trips retrieved successfully", trips)
}

func (c *TripController) GetInfoAboutDestination(ctx *gin.Context) {
	info, err := c.trips.GetInfoAboutDestination(ctx.Request.Context())
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Most travelled destination retrieved successfully", info)
}

func (c *TripController) GetSingleTrip(ctx *gin.Context) {
	var params types.TripParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "tripId should be an integer")
		return
	}
	trip, err := c.trips.GetSingleTrip(ctx.Request.Context(), params.TripID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Trip retrieved successfully", trip)
}
