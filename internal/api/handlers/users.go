package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"careerconnect/internal/reports"
	"careerconnect/internal/services"
	"careerconnect/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// UserHandler holds dependencies for profile and moderation endpoints.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// GetUsers godoc
// @Summary      List all users
// @Description  Admin only. Every user, newest first, flattened with their profile fields.
// @Tags         users
// @Produce      json
// @Success      200  {array}   dto.UserListingResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "GetUsers", nil)
		return
	}

	resp := make([]dto.UserListingResponse, 0, len(users))
	for i := range users {
		resp = append(resp, MapUserListingToResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// ExportUsers godoc
// @Summary      Export users as a spreadsheet
// @Description  Admin only. The user listing as an XLSX workbook.
// @Tags         users
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      403  {object}  dto.MessageResponse
// @Router       /users/export [get]
// @Security     BearerAuth
func (h *UserHandler) ExportUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "ExportUsers", nil)
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteUsersXLSX(&buf, users); err != nil {
		log.Printf("ExportUsers: Error writing workbook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export users"})
		return
	}

	filename := fmt.Sprintf("users-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// UpdateUser godoc
// @Summary      Update a user's name
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId path     string                true "User ID" Format(uuid)
// @Param        user   body     dto.UpdateUserRequest true "New name"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.MessageResponse "Not the user or an admin"
// @Failure      404  {object}  dto.MessageResponse
// @Router       /users/{userId} [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), actor, userID, &req)
	if err != nil {
		respondError(c, err, "UpdateUser", errorMessages{services.ErrNotFound: "User not found"})
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// UpdateStudentProfile godoc
// @Summary      Update a student profile
// @Description  Partial update; omitted fields are left unchanged.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path  string                          true "User ID" Format(uuid)
// @Param        profile body  dto.UpdateStudentProfileRequest true "Fields to change"
// @Success      200  {object}  dto.StudentProfileResponse
// @Failure      403  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse "Student profile not found"
// @Router       /users/{userId}/student-profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateStudentProfile(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	var req dto.UpdateStudentProfileRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	profile, err := h.service.UpdateStudentProfile(c.Request.Context(), actor, userID, &req)
	if err != nil {
		respondError(c, err, "UpdateStudentProfile", errorMessages{services.ErrNotFound: "Student profile not found"})
		return
	}
	c.JSON(http.StatusOK, MapStudentProfileToResponse(profile))
}

// UpdateRecruiterProfile godoc
// @Summary      Update a recruiter profile
// @Description  Partial update; omitted fields are left unchanged. Approval cannot be changed here.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path  string                            true "User ID" Format(uuid)
// @Param        profile body  dto.UpdateRecruiterProfileRequest true "Fields to change"
// @Success      200  {object}  dto.RecruiterProfileResponse
// @Failure      403  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse "Recruiter profile not found"
// @Router       /users/{userId}/recruiter-profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateRecruiterProfile(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	var req dto.UpdateRecruiterProfileRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	profile, err := h.service.UpdateRecruiterProfile(c.Request.Context(), actor, userID, &req)
	if err != nil {
		respondError(c, err, "UpdateRecruiterProfile", errorMessages{services.ErrNotFound: "Recruiter profile not found"})
		return
	}
	c.JSON(http.StatusOK, MapRecruiterProfileToResponse(profile))
}

// ApproveRecruiter godoc
// @Summary      Approve a recruiter
// @Description  Admin only. Idempotent.
// @Tags         users
// @Produce      json
// @Param        userId path string true "Recruiter user ID" Format(uuid)
// @Success      200  {object}  dto.RecruiterProfileResponse
// @Failure      403  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse "Recruiter profile not found"
// @Router       /users/{userId}/approve [put]
// @Security     BearerAuth
func (h *UserHandler) ApproveRecruiter(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	recruiterID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	profile, err := h.service.ApproveRecruiter(c.Request.Context(), actor, recruiterID)
	if err != nil {
		respondError(c, err, "ApproveRecruiter", errorMessages{services.ErrNotFound: "Recruiter profile not found"})
		return
	}
	c.JSON(http.StatusOK, MapRecruiterProfileToResponse(profile))
}

// BlockUser godoc
// @Summary      Block a user
// @Description  Admin only. Idempotent; there is no unblock.
// @Tags         users
// @Produce      json
// @Param        userId path string true "User ID" Format(uuid)
// @Success      200  {object}  dto.BlockUserResponse
// @Failure      403  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse "User not found"
// @Router       /users/{userId}/block [put]
// @Security     BearerAuth
func (h *UserHandler) BlockUser(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.service.BlockUser(c.Request.Context(), actor, userID)
	if err != nil {
		respondError(c, err, "BlockUser", errorMessages{services.ErrNotFound: "User not found"})
		return
	}
	c.JSON(http.StatusOK, dto.BlockUserResponse{
		Message: "User blocked successfully",
		User:    MapUserModelToUserResponse(user),
	})
}
