package controllers

import (
	"net/http"

	"owlrecruit-api/models"
	"owlrecruit-api/services"

	"github.com/gin-gonic/gin"
)

// GetMembers lists an organization's members (admins only).
func GetMembers(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}

	members, err := services.NewMemberService(nil).ListMembers(c.Request.Context(), rc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   len(members),
	})
}

// SetMember adds a user to the organization or changes their role.
func SetMember(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be either 'admin' or 'reviewer'"})
		return
	}

	member, err := services.NewMemberService(nil).SetMember(c.Request.Context(), rc, userID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"member":  member,
	})
}

// RemoveMember removes a user from the organization.
func RemoveMember(c *gin.Context) {
	rc, ok := requestContext(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId", "user")
	if !ok {
		return
	}

	if err := services.NewMemberService(nil).RemoveMember(c.Request.Context(), rc, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
