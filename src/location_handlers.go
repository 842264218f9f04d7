package main

import (
	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

func locationHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/locations", a.locations.ListLocations).
		POST("/locations",
			middlewares.RequireRoles(types.ROLE_SUPER_ADMIN, types.ROLE_TRAVEL_ADMIN),
			a.locations.SaveLocation)
	return g
}
