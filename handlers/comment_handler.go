package handlers

import (
	"log"

	"discussion-board/helper"
	"discussion-board/models"
	"discussion-board/pipeline"
	"discussion-board/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

// Create adds a comment to the discussion in the path and sends the reader
// back to it. A rejected comment is reported through the flash.
func (h *CommentHandler) Create(c *gin.Context, st *pipeline.State) pipeline.Outcome {
	user, ok := currentUser(c)
	if !ok {
		return pipeline.Fail(models.ErrorUnauthorized{Message: "You must be signed in to do that"})
	}

	discussionID, err := parseDiscussionID(c, "findById")
	if err != nil {
		return pipeline.Fail(err)
	}
	st.Redirect = discussionPath(discussionID)

	var req models.CreateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		return pipeline.Fail(models.ErrorBadRequest{Err: err})
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		st.Flash = "Comment could not be posted: it must be between 1 and 5000 characters."
		return pipeline.Next()
	}

	if _, err := h.commentService.CreateComment(discussionID, req, user.ID); err != nil {
		log.Printf("Error creating comment: %s", err.Error())
		return pipeline.Fail(err)
	}

	st.Flash = "Comment added."
	return pipeline.Next()
}
