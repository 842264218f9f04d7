package main

import (
	"github.com/gin-gonic/gin"
)

func notificationHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/notifications", a.notifications.List).
		PATCH("/notifications/read-all", a.notifications.MarkAllRead).
		PATCH("/notifications/:id/read", a.notifications.MarkRead)
	return g
}
