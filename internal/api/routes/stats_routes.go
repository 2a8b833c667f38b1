package routes

import (
	"careerconnect/internal/api/handlers"
	"careerconnect/internal/api/middleware"
	"careerconnect/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterStatsRoutes registers the admin dashboard counters.
func RegisterStatsRoutes(rg *gin.RouterGroup, statsHandler handlers.StatsHandlerInterface, authMiddleware, contract gin.HandlerFunc) {
	stats := rg.Group("/stats")
	stats.Use(authMiddleware, contract, middleware.RequireRoles(models.RoleAdmin))
	{
		stats.GET("/admin", statsHandler.AdminStats)
	}
}
