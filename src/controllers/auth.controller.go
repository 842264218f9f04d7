package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	body := middlewares.GetBody[types.SignupRequestBody](ctx)
	view, err := c.auth.Signup(ctx.Request.Context(), body)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusCreated, "User created successfully", view)
}

func (c *AuthController) Signin(ctx *gin.Context) {
	body := middlewares.GetBody[types.SigninRequestBody](ctx)
	view, err := c.auth.Signin(ctx.Request.Context(), body)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Logged in successfully", view)
}

// SocialLogin exchanges a provider access token for a session.
func (c *AuthController) SocialLogin(provider types.Provider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body := middlewares.GetBody[types.SocialLoginRequestBody](ctx)
		view, err := c.auth.SocialLogin(ctx.Request.Context(), provider, body.AccessToken)
		if err != nil {
			utils.RespondError(ctx, err)
			return
		}
		utils.SuccessMessage(ctx, http.StatusOK, fmt.Sprintf("Logged in with %s successfully", provider), view)
	}
}

func (c *AuthController) Logout(ctx *gin.Context) {
	principal := middlewares.GetPrincipal(ctx)
	if err := c.auth.Logout(ctx.Request.Context(), principal.ID); err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Logged out successfully", nil)
}
