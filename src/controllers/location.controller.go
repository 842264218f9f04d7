package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
)

type LocationController struct {
	locations *services.LocationService
}

func NewLocationController(locations *services.LocationService) *LocationController {
	return &LocationController{locations: locations}
}

// SaveLocation leaves the name to the database constraints and answers
// every failure with 500 and the raw error message.
func (c *LocationController) SaveLocation(ctx *gin.Context) {
	var body types.LocationRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Printf("[Location] bind: %s\n", err.Error())
		utils.ErrorMessage(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	city, err := c.locations.Create(ctx.Request.Context(), body.Name)
	if err != nil {
		log.Printf("[Location] create %q: %s\n", body.Name, err.Error())
		utils.ErrorMessage(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	utils.SuccessMessage(ctx, http.StatusCreated, "Location posted successfully", city)
}

func (c *LocationController) ListLocations(ctx *gin.Context) {
	cities, err := c.locations.List(ctx.Request.Context())
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Locations retrieved successfully", cities)
}
