package main

import (
	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

func authHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	guest := g.Group("/auth")
	guest.Use(a.limiter.Handler())
	guest.
		POST("/signup", middlewares.Validate[types.SignupRequestBody](), a.auth.Signup).
		POST("/signin", middlewares.Validate[types.SigninRequestBody](), a.auth.Signin).
		POST("/facebook", middlewares.Validate[types.SocialLoginRequestBody](), a.auth.SocialLogin(types.PROVIDER_FACEBOOK)).
		POST("/google", middlewares.Validate[types.SocialLoginRequestBody](), a.auth.SocialLogin(types.PROVIDER_GOOGLE))
	return guest
}
