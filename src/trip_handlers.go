package main

import (
	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

func tripHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	managerOnly := middlewares.RequireRoles(types.ROLE_MANAGER)
	g.
		POST("/trips/one-way", middlewares.Validate[types.OneWayTripRequestBody](), a.trips.CreateOneWayTrip).
		POST("/trips/return", middlewares.Validate[types.ReturnTripRequestBody](), a.trips.CreateReturnTrip).
		POST("/trips/multi-city", middlewares.Validate[types.MultiCityTripRequestBody](), a.trips.CreateMultiCityTrip).
		GET("/trips/requests", a.trips.GetUserRequests).
		GET("/trips/approvals", managerOnly, a.trips.AvailTripRequestsToManager).
		GET("/trips/types/:tripTypeId", a.trips.GetUserTrips).
		GET("/trips/most-travelled", a.trips.GetInfoAboutDestination).
		GET("/trips/single/:tripId", a.trips.GetSingleTrip).
		PATCH("/trips/:tripRequestId", middlewares.Validate[types.EditTripRequestBody](), a.trips.EditTripRequest).
		PATCH("/trips/:tripRequestId/approve", managerOnly, a.trips.UpdateTripRequestStatus(types.TRIP_REQUEST_APPROVED)).
		PATCH("/trips/:tripRequestId/reject", managerOnly, a.trips.UpdateTripRequestStatus(types.TRIP_REQUEST_REJECTED)).
		POST("/trips/:tripRequestId/comments", middlewares.Validate[types.CommentRequestBody](), a.comments.Create).
		GET("/trips/:tripRequestId/comments", a.comments.List)
	return g
}
