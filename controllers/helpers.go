package controllers

import (
	"net/http"

	"owlrecruit-api/config"
	"owlrecruit-api/middleware"
	"owlrecruit-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondError writes a service error as {"error": message} with the status
// its kind maps to.
func respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	status := kind.HTTPStatus()
	if status >= http.StatusInternalServerError {
		config.Log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseIDParam reads a uuid path parameter, answering 400 when it is malformed.
func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// requestContext builds the explicit caller/organization context every
// service call receives.
func requestContext(c *gin.Context) (services.RequestContext, bool) {
	userID := middleware.CurrentUserID(c)
	if userID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return services.RequestContext{}, false
	}
	orgID, ok := parseIDParam(c, "orgId", "organization")
	if !ok {
		return services.RequestContext{}, false
	}
	return services.RequestContext{UserID: userID, OrgID: orgID}, true
}
