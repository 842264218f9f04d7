package main

import (
	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

func userHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	superAdmin := middlewares.RequireRoles(types.ROLE_SUPER_ADMIN)
	g.
		GET("/roles", superAdmin, a.userController.ListRoles).
		PATCH("/roles/:id",
			superAdmin,
			middlewares.Validate[types.RoleRequestBody](),
			middlewares.VerifyInputRoles(a.users, a.roles),
			a.userController.AssignRole).
		GET("/users/profile", a.userController.GetProfile).
		PATCH("/users/profile", middlewares.Validate[types.ProfileRequestBody](), a.userController.UpdateProfile)
	return g
}
