package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerconnect/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		err       error
		overrides errorMessages
		status    int
		message   string
	}{
		{"validation detail", fmt.Errorf("%w: company is required for recruiters", services.ErrValidation), nil, http.StatusBadRequest, "Company is required for recruiters"},
		{"detail cut at parenthesis", fmt.Errorf("%w: admin accounts cannot self-register (role admin)", services.ErrValidation), nil, http.StatusBadRequest, "Admin accounts cannot self-register"},
		{"bare sentinel", services.ErrConflict, nil, http.StatusBadRequest, "Resource already exists"},
		{"override wins", fmt.Errorf("%w: email", services.ErrConflict), errorMessages{services.ErrConflict: "User already exists"}, http.StatusBadRequest, "User already exists"},
		{"not found hides ids", fmt.Errorf("%w: job 1234", services.ErrNotFound), nil, http.StatusNotFound, "Resource not found"},
		{"wrapped twice", fmt.Errorf("apply: %w", fmt.Errorf("%w: not the owner of this job", services.ErrForbidden)), nil, http.StatusForbidden, "Not the owner of this job"},
		{"credentials", services.ErrInvalidCredentials, nil, http.StatusUnauthorized, "Invalid email or password"},
		{"blocked", services.ErrBlocked, nil, http.StatusUnauthorized, "Account is blocked"},
		{"internal", errors.New("pq: connection refused"), nil, http.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err, "Test", tt.overrides)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tt.message), w.Body.String())
		})
	}
}
