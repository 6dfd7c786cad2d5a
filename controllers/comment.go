package controllers

import (
	"net/http"

	"owlrecruit-api/services"

	"github.com/gin-gonic/gin"
)

func commentService() *services.CommentService {
	return services.NewCommentService(nil, services.NewMailNotifier(nil))
}

// GetComments returns an application's comment thread, newest first.
func GetComments(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId", "application")
	if !ok {
		return
	}

	comments, err := commentService().ListComments(c.Request.Context(), rc, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// PostComment appends a comment to an application's thread.
func PostComment(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId", "application")
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	comment, err := commentService().PostComment(c.Request.Context(), rc, applicationID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, services.NewCommentView(*comment))
}
