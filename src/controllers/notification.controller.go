package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/utils"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

func (c *NotificationController) List(ctx *gin.Context) {
	notifications, err := c.notifications.List(ctx.Request.Context(), middlewares.GetPrincipal(ctx).ID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.notifications.MarkRead(ctx.Request.Context(), middlewares.GetPrincipal(ctx).ID, ctx.Param("id")); err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Notification marked as read", nil)
}

func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	count, err := c.notifications.MarkAllRead(ctx.Request.Context(), middlewares.GetPrincipal(ctx).ID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Notifications marked as read", gin.H{"updated": count})
}
