package middlewares

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
	"gorm.io/gorm"
)

func RequireRoles(ids ...uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !GetPrincipal(ctx).HasRole(ids...) {
			utils.ErrorMessage(ctx, http.StatusForbidden, "You are not allowed to perform this action")
			return
		}
		ctx.Next()
	}
}

// VerifyInputRoles checks, in order, that the role in the path exists, that
// the email in the body belongs to a user and that the caller still matches
// its session. Must run after Validate[types.RoleRequestBody].
func VerifyInputRoles(users repository.UserRepository, roles repository.RoleRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body := GetBody[types.RoleRequestBody](ctx)
		reqCtx := ctx.Request.Context()

		if _, err := roles.FindByID(reqCtx, body.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.ErrorMessage(ctx, http.StatusNotFound, "Role not exist")
				return
			}
			utils.RespondError(ctx, err)
			return
		}
		if _, err := users.FindByEmail(reqCtx, body.Email); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.ErrorMessage(ctx, http.StatusNotFound, "Email does not exist")
				return
			}
			utils.RespondError(ctx, err)
			return
		}
		principal := GetPrincipal(ctx)
		requester, err := users.FindByID(reqCtx, principal.ID)
		if err != nil || requester.ID != principal.ID {
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[Roles] loading requester %d: %s\n", principal.ID, err.Error())
			}
			utils.ErrorMessage(ctx, http.StatusForbidden, "Please provide the correct super admin information")
			return
		}
		ctx.Next()
	}
}
