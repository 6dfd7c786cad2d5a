package controllers

import (
	"net/http"

	"owlrecruit-api/models"
	"owlrecruit-api/services"

	"github.com/gin-gonic/gin"
)

// GetRubric returns an opening's rubric.
func GetRubric(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	openingID, ok := parseIDParam(c, "openingId", "opening")
	if !ok {
		return
	}

	rubric, err := services.NewRubricService(nil).GetRubric(c.Request.Context(), rc, openingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rubric": rubric})
}

// UpdateRubric replaces an opening's rubric (admins only).
func UpdateRubric(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	openingID, ok := parseIDParam(c, "openingId", "opening")
	if !ok {
		return
	}

	var req struct {
		Rubric []models.RubricCriterion `json:"rubric"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rubric, err := services.NewRubricService(nil).UpdateRubric(c.Request.Context(), rc, openingID, req.Rubric)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"rubric":  rubric,
	})
}
