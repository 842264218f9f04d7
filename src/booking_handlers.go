package main

import (
	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

func bookingHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/bookings", a.bookings.List).
		POST("/bookings", middlewares.Validate[types.BookingRequestBody](), a.bookings.Create).
		GET("/bookings/:id", a.bookings.Get).
		GET("/bookings/:id/qrcode", a.bookings.QRCode)
	return g
}
