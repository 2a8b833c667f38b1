package routes

import (
	"careerconnect/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and the session routes. Only
// register and login are public; both are throttled per client IP.
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler handlers.AuthHandlerInterface, authMiddleware, throttle, contract gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", throttle, contract, authHandler.Register)
		auth.POST("/login", throttle, contract, authHandler.Login)
		auth.GET("/me", authMiddleware, contract, authHandler.Me)
		auth.POST("/logout", authMiddleware, contract, authHandler.Logout)
	}
}
