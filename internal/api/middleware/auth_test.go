package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careerconnect/internal/api/middleware"
	"careerconnect/internal/models"
	"careerconnect/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSessions) ResolveUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func setupAuthRouter(tokens middleware.TokenParser, sessions middleware.SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.JWTAuthMiddleware(tokens, sessions), func(c *gin.Context) {
		id, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		role, _ := middleware.GetUserRoleFromContext(c)
		tokenID, _, _ := middleware.GetTokenFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": string(role), "jti": tokenID})
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenManager("test-secret", "careerconnect", time.Hour)
	user := &models.User{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Role: models.RoleStudent}
	token, err := tokens.Issue(user)
	require.NoError(t, err)
	claims, err := tokens.Parse(token)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		setup      func(s *mockSessions)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No token, authorization denied",
		},
		{
			name:       "malformed header",
			header:     "Token " + token,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid Authorization header format",
		},
		{
			name:       "garbage token",
			header:     "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token is not valid",
		},
		{
			name:   "revoked token",
			header: "Bearer " + token,
			setup: func(s *mockSessions) {
				s.On("IsTokenRevoked", mock.Anything, claims.ID).Return(true, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has been revoked",
		},
		{
			name:   "blocked user",
			header: "Bearer " + token,
			setup: func(s *mockSessions) {
				s.On("IsTokenRevoked", mock.Anything, claims.ID).Return(false, nil)
				s.On("ResolveUser", mock.Anything, user.ID).Return(nil, services.ErrBlocked)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Account is blocked",
		},
		{
			name:   "deleted user",
			header: "Bearer " + token,
			setup: func(s *mockSessions) {
				s.On("IsTokenRevoked", mock.Anything, claims.ID).Return(false, nil)
				s.On("ResolveUser", mock.Anything, user.ID).Return(nil, services.ErrUnauthenticated)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token is not valid",
		},
		{
			name:   "denylist unavailable",
			header: "Bearer " + token,
			setup: func(s *mockSessions) {
				s.On("IsTokenRevoked", mock.Anything, claims.ID).Return(false, errors.New("redis down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Server error",
		},
		{
			name:   "valid token",
			header: "bearer " + token,
			setup: func(s *mockSessions) {
				s.On("IsTokenRevoked", mock.Anything, claims.ID).Return(false, nil)
				s.On("ResolveUser", mock.Anything, user.ID).Return(user, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   user.ID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(mockSessions)
			if tt.setup != nil {
				tt.setup(sessions)
			}
			router := setupAuthRouter(tokens, sessions)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			sessions.AssertExpectations(t)
		})
	}
}

func TestJWTAuthMiddleware_UsesCurrentRole(t *testing.T) {
	tokens := services.NewTokenManager("test-secret", "careerconnect", time.Hour)
	user := &models.User{ID: uuid.New(), Role: models.RoleStudent}
	token, err := tokens.Issue(user)
	require.NoError(t, err)

	promoted := *user
	promoted.Role = models.RoleAdmin
	sessions := new(mockSessions)
	sessions.On("IsTokenRevoked", mock.Anything, mock.Anything).Return(false, nil)
	sessions.On("ResolveUser", mock.Anything, user.ID).Return(&promoted, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	setupAuthRouter(tokens, sessions).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestContextHelpers_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := middleware.GetUserIDFromContext(c)
	assert.Error(t, err)
	_, err = middleware.GetUserRoleFromContext(c)
	assert.Error(t, err)
	_, _, err = middleware.GetTokenFromContext(c)
	assert.Error(t, err)

	c.Set("userID", "not-a-uuid")
	_, err = middleware.GetUserIDFromContext(c)
	assert.Error(t, err)
}
