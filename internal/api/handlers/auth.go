package handlers

import (
	"log"
	"net/http"

	"careerconnect/internal/api/middleware"
	"careerconnect/internal/services"
	"careerconnect/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds dependencies for registration and session endpoints.
type AuthHandler struct {
	service   services.AuthService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a student or recruiter together with their profile and returns a token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true "Account and profile fields"
// @Success      201  {object}  dto.AuthResponse "Account created"
// @Failure      400  {object}  dto.MessageResponse "Validation failed or user already exists"
// @Failure      429  {object}  dto.MessageResponse "Too many requests"
// @Failure      500  {object}  dto.MessageResponse "Internal Server Error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	result, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Register", errorMessages{services.ErrConflict: "User already exists"})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token:   result.Token,
		User:    MapUserModelToUserResponse(&result.Account.User),
		Profile: profileResponse(&result.Account),
	})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies email and password and returns a token with the user's profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Email and password"
// @Success      200  {object}  dto.AuthResponse
// @Failure      400  {object}  dto.MessageResponse "Validation failed"
// @Failure      401  {object}  dto.MessageResponse "Invalid email or password, or account blocked"
// @Failure      429  {object}  dto.MessageResponse "Too many requests"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Login", nil)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:   result.Token,
		User:    MapUserModelToUserResponse(&result.Account.User),
		Profile: profileResponse(&result.Account),
	})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	account, err := h.service.Me(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Me", errorMessages{services.ErrNotFound: "User not found"})
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		User:    MapUserModelToUserResponse(&account.User),
		Profile: profileResponse(account),
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the token used for this request until it would have expired.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID, expiresAt, err := middleware.GetTokenFromContext(c)
	if err != nil {
		log.Printf("Logout: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), tokenID, expiresAt); err != nil {
		respondError(c, err, "Logout", nil)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}
