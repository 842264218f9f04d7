package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (c *UserController) ListRoles(ctx *gin.Context) {
	roles, err := c.users.ListRoles(ctx.Request.Context())
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Roles retrieved successfully", roles)
}

func (c *UserController) AssignRole(ctx *gin.Context) {
	body := middlewares.GetBody[types.RoleRequestBody](ctx)
	user, err := c.users.AssignRole(ctx.Request.Context(), body.ID, body.Email)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Role assigned successfully", user)
}

func (c *UserController) GetProfile(ctx *gin.Context) {
	profile, err := c.users.GetProfile(ctx.Request.Context(), middlewares.GetPrincipal(ctx).ID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Profile retrieved successfully", profile)
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	body := middlewares.GetBody[types.ProfileRequestBody](ctx)
	profile, err := c.users.UpdateProfile(ctx.Request.Context(), middlewares.GetPrincipal(ctx).ID, body)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Profile updated successfully", profile)
}
