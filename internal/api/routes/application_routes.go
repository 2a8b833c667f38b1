package routes

import (
	"careerconnect/internal/api/handlers"
	"careerconnect/internal/api/middleware"
	"careerconnect/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the apply and review routes.
func RegisterApplicationRoutes(rg *gin.RouterGroup, appHandler handlers.ApplicationHandlerInterface, authMiddleware, contract gin.HandlerFunc) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware, contract)
	{
		applications.POST("/job/:jobId", middleware.RequireRoles(models.RoleStudent), appHandler.ApplyToJob)
		applications.GET("/job/:jobId/applicants", middleware.RequireRoles(models.RoleRecruiter), appHandler.ListJobApplicants)
		applications.GET("/student/:studentId", appHandler.ListStudentApplications)
		applications.PUT("/:id/status", middleware.RequireRoles(models.RoleRecruiter), appHandler.UpdateApplicationStatus)
	}
}
