package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

func (c *CommentController) Create(ctx *gin.Context) {
	var params types.TripRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "tripRequestId should be an integer")
		return
	}
	body := middlewares.GetBody[types.CommentRequestBody](ctx)
	comment, err := c.comments.Create(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.TripRequestID, body)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusCreated, "Comment posted successfully", comment)
}

func (c *CommentController) List(ctx *gin.Context) {
	var params types.TripRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "tripRequestId should be an integer")
		return
	}
	comments, err := c.comments.List(ctx.Request.Context(), middlewares.GetPrincipal(ctx), params.TripRequestID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	utils.SuccessMessage(ctx, http.StatusOK, "Comments retrieved successfully", comments)
}
