package routes

import (
	"net/http"

	"owlrecruit-api/controllers"
	"owlrecruit-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"message": "OwlRecruit API is running",
			})
		})

		// Protected routes (require authentication). Organization roles are
		// checked by the services for every call.
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			org := protected.Group("/orgs/:orgId")
			{
				// Membership (admins)
				org.GET("/members", controllers.GetMembers)
				org.PUT("/members/:userId", controllers.SetMember)
				org.DELETE("/members/:userId", controllers.RemoveMember)

				// Rubrics: reviewers read, admins write
				org.GET("/openings/:openingId/rubric", controllers.GetRubric)
				org.PUT("/openings/:openingId/rubric", controllers.UpdateRubric)

				applications := org.Group("/applications/:applicationId")
				{
					applications.GET("/reviews", controllers.GetReviews)
					applications.POST("/reviews", controllers.SubmitReview)
					applications.GET("/summary", controllers.GetApplicationSummary)
					applications.GET("/comments", controllers.GetComments)
					applications.POST("/comments", controllers.PostComment)
				}
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
