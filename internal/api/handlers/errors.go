package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"careerconnect/internal/services"

	"github.com/gin-gonic/gin"
)

// errorMessages overrides the client message for a service sentinel error.
type errorMessages map[error]string

// respondError translates a service error into a status code and a {"message"} body.
// Internal errors are logged under op and never shown to the client.
func respondError(c *gin.Context, err error, op string, overrides errorMessages) {
	status, sentinel, fallback := classify(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", op, err)
		c.JSON(status, gin.H{"message": fallback})
		return
	}

	message := overrides[sentinel]
	if message == "" {
		message = detail(err, sentinel, fallback)
	}
	c.JSON(status, gin.H{"message": message})
}

func classify(err error) (int, error, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, services.ErrValidation, "Validation failed"
	case errors.Is(err, services.ErrConflict):
		return http.StatusBadRequest, services.ErrConflict, "Resource already exists"
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, services.ErrInvalidCredentials, "Invalid email or password"
	case errors.Is(err, services.ErrBlocked):
		return http.StatusUnauthorized, services.ErrBlocked, "Account is blocked"
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized, services.ErrUnauthenticated, "Not authenticated"
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, services.ErrForbidden, "Access denied"
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, services.ErrNotFound, "Resource not found"
	default:
		return http.StatusInternalServerError, nil, "Server error"
	}
}

// detail extracts the text a service attached after "<sentinel>: ". Not-found details
// name internal ids, so they are replaced with the fallback.
func detail(err error, sentinel error, fallback string) string {
	if sentinel == services.ErrNotFound {
		return fallback
	}
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	idx := strings.Index(msg, prefix)
	if idx < 0 {
		return fallback
	}
	msg = msg[idx+len(prefix):]
	if i := strings.Index(msg, " ("); i >= 0 {
		msg = msg[:i]
	}
	if msg == "" {
		return fallback
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
