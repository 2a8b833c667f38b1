package middleware

import (
	"log"
	"net/http"
	"slices"

	"careerconnect/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through only when the authenticated user holds
// one of roles. It must run after JWTAuthMiddleware.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		if !slices.Contains(roles, role) {
			log.Printf("RequireRoles: role %s denied on %s %s", role, c.Request.Method, c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}
