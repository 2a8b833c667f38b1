package routes

import (
	"careerconnect/internal/api/handlers"
	"careerconnect/internal/api/middleware"
	"careerconnect/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
// Every job route requires authentication; writes are limited to recruiters and
// ownership is checked by the service.
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler handlers.JobHandlerInterface, authMiddleware, contract gin.HandlerFunc) {
	recruiterOnly := middleware.RequireRoles(models.RoleRecruiter)

	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware, contract)
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.POST("", recruiterOnly, jobHandler.CreateJob)
		jobs.GET("/recruiter/my-jobs", recruiterOnly, jobHandler.ListMyJobs)
		jobs.GET("/recruiter/:recruiterId", jobHandler.ListRecruiterJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.PUT("/:id", recruiterOnly, jobHandler.UpdateJob)
		jobs.DELETE("/:id", recruiterOnly, jobHandler.DeleteJob)
	}
}
