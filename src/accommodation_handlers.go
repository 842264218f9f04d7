package main

import (
	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

func accommodationHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	suppliers := middlewares.RequireRoles(types.ROLE_SUPER_ADMIN, types.ROLE_TRAVEL_ADMIN, types.ROLE_SUPPLIER)
	g.
		GET("/accommodations", a.accommodations.List).
		GET("/accommodations/:id", a.accommodations.Get).
		POST("/accommodations", suppliers, middlewares.Validate[types.AccommodationRequestBody](), a.accommodations.Create).
		POST("/accommodations/:id/rooms", suppliers, middlewares.Validate[types.RoomRequestBody](), a.accommodations.AddRoom).
		POST("/accommodations/:id/images", suppliers, a.accommodations.AddImage)
	return g
}
