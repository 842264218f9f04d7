package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
	"gorm.io/gorm"
)

const PRINCIPAL_KEY = "principal"

func bearerToken(ctx *gin.Context) string {
	header := ctx.Request.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(ctx.Request.Header.Get("token"))
}

// AuthMiddleware resolves the caller from a JWT in the Authorization or
// token header. When sessions is set, the token must match the stored session.
func AuthMiddleware(users repository.UserRepository, sessions lib.SessionStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			utils.ErrorMessage(ctx, http.StatusUnauthorized, "Please provide a token")
			return
		}
		_, userID, err := lib.ParseJWT(token)
		if err != nil {
			log.Printf("[Auth] token error: %s\n", err.Error())
			utils.ErrorMessage(ctx, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		reqCtx := ctx.Request.Context()
		if sessions != nil {
			stored, err := sessions.Get(reqCtx, userID)
			if err != nil && !errors.Is(err, lib.ErrSessionNotFound) {
				log.Printf("[Auth] session lookup for %d: %s\n", userID, err.Error())
			}
			if err != nil || stored != token {
				utils.ErrorMessage(ctx, http.StatusUnauthorized, "Session expired, please sign in again")
				return
			}
		}
		user, err := users.FindByID(reqCtx, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[Auth] loading user %d: %s\n", userID, err.Error())
			}
			utils.ErrorMessage(ctx, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx.Set(PRINCIPAL_KEY, types.Principal{
			ID:        user.ID,
			Email:     user.Email,
			RoleID:    user.RoleID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
		ctx.Set("id", user.ID)
		ctx.Set("email", user.Email)
		ctx.Set("role", user.RoleID)
		ctx.Next()
	}
}

func GetPrincipal(ctx *gin.Context) types.Principal {
	if v, ok := ctx.Get(PRINCIPAL_KEY); ok {
		if principal, ok := v.(types.Principal); ok {
			return principal
		}
	}
	return types.Principal{}
}
