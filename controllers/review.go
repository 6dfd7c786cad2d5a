package controllers

import (
	"net/http"

	"owlrecruit-api/models"
	"owlrecruit-api/services"
	"owlrecruit-api/utils"

	"github.com/gin-gonic/gin"
)

// SubmitReviewRequest is the body of POST .../reviews. Content is accepted
// as an alias of Notes.
type SubmitReviewRequest struct {
	ScoreSkills models.ScoreMap `json:"scoreSkills"`
	Notes       *string         `json:"notes"`
	Content     *string         `json:"content"`
}

func (r SubmitReviewRequest) input() services.ReviewInput {
	in := services.ReviewInput{Scores: r.ScoreSkills}

	notes := r.Notes
	if notes == nil {
		notes = r.Content
	}
	if notes != nil {
		if cleaned := utils.SanitizeInput(*notes); cleaned != "" {
			in.Notes = &cleaned
		}
	}
	return in
}

// SubmitReview creates or updates the caller's review of an application.
func SubmitReview(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId", "application")
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	review, err := services.NewReviewService(nil).SubmitReview(c.Request.Context(), rc, applicationID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"review":  review,
	})
}

// GetReviews lists every review of an application.
func GetReviews(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId", "application")
	if !ok {
		return
	}

	reviews, err := services.NewReviewService(nil).ListReviews(c.Request.Context(), rc, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

// GetApplicationSummary returns the rubric summary across all reviews.
func GetApplicationSummary(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	applicationID, ok := parseIDParam(c, "applicationId", "application")
	if !ok {
		return
	}

	summary, err := services.NewReviewService(nil).GetApplicationSummary(c.Request.Context(), rc, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
