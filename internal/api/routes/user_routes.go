package routes

import (
	"careerconnect/internal/api/handlers"
	"careerconnect/internal/api/middleware"
	"careerconnect/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all routes related to users. Listing and moderation
// are admin only; profile edits are allowed to the owner or an admin, which the
// service decides.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, authMiddleware, contract gin.HandlerFunc) {
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	users := rg.Group("/users")
	users.Use(authMiddleware, contract)
	{
		users.GET("", adminOnly, userHandler.GetUsers)
		users.GET("/export", adminOnly, userHandler.ExportUsers)
		users.PUT("/:userId", userHandler.UpdateUser)
		users.PUT("/:userId/student-profile", userHandler.UpdateStudentProfile)
		users.PUT("/:userId/recruiter-profile", userHandler.UpdateRecruiterProfile)
		users.PUT("/:userId/approve", adminOnly, userHandler.ApproveRecruiter)
		users.PUT("/:userId/block", adminOnly, userHandler.BlockUser)
	}
}
