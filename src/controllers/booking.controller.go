package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

func (c *BookingController) Create(ctx *gin.Context) {
	body := middlewares.GetBody[types.BookingRequestBody](ctx)
	booking, err := c.bookings.Create(ctx.Request.Context(), middlewares.GetPrincipal(ctx), body)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusCreated, "Booking created successfully", gin.H{
		"booking":   booking,
		"reference": services.BookingReference(booking.ID),
	})
}

func (c *BookingController) List(ctx *gin.Context) {
	bookings, err := c.bookings.List(ctx.Request.Context(), middlewares.GetPrincipal(ctx))
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (c *BookingController) Get(ctx *gin.Context) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "id should be an integer")
		return
	}
	booking, err := c.bookings.Get(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.ID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Booking retrieved successfully", booking)
}

func (c *BookingController) QRCode(ctx *gin.Context) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "id should be an integer")
		return
	}
	filePath, err := c.bookings.QRCode(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.ID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	ctx.Header("Content-Type", "image/jpeg")
	ctx.File(filePath)
}
