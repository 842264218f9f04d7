package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
)

const MAX_IMAGE_SIZE = 5 << 20

type AccommodationController struct {
	accommodations *services.AccommodationService
}

func NewAccommodationController(accommodations *services.AccommodationService) *AccommodationController {
	return &AccommodationController{accommodations: accommodations}
}

func (c *AccommodationController) Create(ctx *gin.Context) {
	body := middlewares.GetBody[types.AccommodationRequestBody](ctx)
	accommodation, err := c.accommodations.Create(ctx.Request.Context(), middlewares.GetPrincipal(ctx), body)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusCreated, "Accommodation created successfully", accommodation)
}

func (c *AccommodationController) List(ctx *gin.Context) {
	accommodations, err := c.accommodations.List(ctx.Request.Context())
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Accommodations retrieved successfully", accommodations)
}

func (c *AccommodationController) Get(ctx *gin.Context) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "id should be an integer")
		return
	}
	accommodation, err := c.accommodations.Get(ctx.Request.Context(), params.ID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Accommodation retrieved successfully", accommodation)
}

func (c *AccommodationController) AddRoom(ctx *gin.Context) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "id should be an integer")
		return
	}
	body := middlewares.GetBody[types.RoomRequestBody](ctx)
	room, err := c.accommodations.AddRoom(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.ID, body)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusCreated, "Room added successfully", room)
}

// AddImage takes a multipart "image" file.
func (c *AccommodationController) AddImage(ctx *gin.Context) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "id should be an integer")
		return
	}
	header, err := ctx.FormFile("image")
	if err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "image is required")
		return
	}
	if header.Size > MAX_IMAGE_SIZE {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "image should not exceed 5MB")
		return
	}
	file, err := header.Open()
	if err != nil {
		log.Printf("[Accommodation] opening upload: %s\n", err.Error())
		utils.ErrorMessage(ctx, http.StatusBadRequest, "image could not be read")
		return
	}
	defer file.Close()

	accommodation, err := c.accommodations.AddImage(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.ID, header.Header.Get("Content-Type"), file)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusCreated, "Image uploaded successfully", accommodation)
}
