package utils

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

func SuccessMessage(ctx *gin.Context, status int, message string, data any) {
	body := gin.H{"status": status, "message": message}
	if data != nil {
		body["data"] = data
	}
	ctx.JSON(status, body)
}

func ErrorMessage(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{"status": status, "message": message})
}

// RespondError logs err and writes it with the status it classifies as.
// Unclassified errors surface as 500 with the raw message.
func RespondError(ctx *gin.Context, err error) {
	status := types.StatusOf(err)
	log.Printf("[%s %s] %d: %s\n", ctx.Request.Method, ctx.FullPath(), status, err.Error())
	ErrorMessage(ctx, status, err.Error())
}
