// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"careerconnect/internal/models"
	"careerconnect/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID"   // Key to store user ID in context
	roleCtx             = "userRole" // Key to store the role of the user
	tokenIDCtx          = "tokenID"
	tokenExpiresCtx     = "tokenExpiresAt"
)

// TokenParser verifies an access token.
type TokenParser interface {
	Parse(tokenString string) (*services.TokenClaims, error)
}

// SessionResolver checks that a verified token still belongs to an active session.
type SessionResolver interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	ResolveUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. Besides the
// signature and expiry it rejects logged-out tokens and blocked or deleted users.
// The role stored in the context is the one currently on the user row.
func JWTAuthMiddleware(tokens TokenParser, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid Authorization header format"})
			return
		}

		claims, err := tokens.Parse(headerParts[1])
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.Printf("Auth middleware: Error parsing user ID from token subject '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid user identifier in token"})
			return
		}

		ctx := c.Request.Context()
		revoked, err := sessions.IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			log.Printf("Auth middleware: Error checking token revocation: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token has been revoked"})
			return
		}

		user, err := sessions.ResolveUser(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBlocked):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Account is blocked"})
			case errors.Is(err, services.ErrUnauthenticated):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			default:
				log.Printf("Auth middleware: Error resolving user %s: %v", userID, err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			}
			return
		}

		// Store identity in context for downstream handlers
		c.Set(userCtx, user.ID)
		c.Set(roleCtx, user.Role)
		c.Set(tokenIDCtx, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(tokenExpiresCtx, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated user id.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetUserRoleFromContext returns the role of the authenticated user.
func GetUserRoleFromContext(c *gin.Context) (models.Role, error) {
	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	role, ok := roleAny.(models.Role)
	if !ok {
		return "", errors.New("user role in context is of invalid type")
	}
	return role, nil
}

// GetTokenFromContext returns the id and expiry of the token used for the request.
func GetTokenFromContext(c *gin.Context) (string, time.Time, error) {
	id := c.GetString(tokenIDCtx)
	if id == "" {
		return "", time.Time{}, errors.New("token ID not found in context")
	}
	return id, c.GetTime(tokenExpiresCtx), nil
}
