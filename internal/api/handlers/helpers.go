package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"careerconnect/internal/api/middleware"
	"careerconnect/internal/models"
	"careerconnect/internal/services"
	"careerconnect/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// bindJSON decodes the body into req and runs the struct validator. It writes the
// 400 response itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, validate *validator.Validate, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}

// parseUUIDParam binds a uuid path parameter.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Invalid %s format", name)})
		return uuid.Nil, false
	}
	return id, true
}

// actorFromContext returns the authenticated caller set by the auth middleware.
func actorFromContext(c *gin.Context) (services.Actor, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return services.Actor{}, false
	}
	role, err := middleware.GetUserRoleFromContext(c)
	if err != nil {
		log.Printf("Error getting user role from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return services.Actor{}, false
	}
	return services.Actor{ID: userID, Role: role}, true
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Blocked:   user.Blocked,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func MapStudentProfileToResponse(p *models.StudentProfile) *dto.StudentProfileResponse {
	if p == nil {
		return nil
	}
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return &dto.StudentProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		University:     p.University,
		Degree:         p.Degree,
		GraduationYear: p.GraduationYear,
		Skills:         skills,
		ResumeURL:      p.ResumeURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func MapRecruiterProfileToResponse(p *models.RecruiterProfile) *dto.RecruiterProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.RecruiterProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		Company:            p.Company,
		CompanyDescription: p.CompanyDescription,
		Website:            p.Website,
		LogoURL:            p.LogoURL,
		Approved:           p.Approved,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// profileResponse picks whichever profile the account has, or nil.
func profileResponse(account *models.UserWithProfile) interface{} {
	switch {
	case account.StudentProfile != nil:
		return MapStudentProfileToResponse(account.StudentProfile)
	case account.RecruiterProfile != nil:
		return MapRecruiterProfileToResponse(account.RecruiterProfile)
	default:
		return nil
	}
}

func MapUserSummaryToResponse(u *models.UserSummary) *dto.UserSummaryResponse {
	if u == nil {
		return nil
	}
	return &dto.UserSummaryResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	requirements := job.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return dto.JobResponse{
		ID:              job.ID,
		RecruiterID:     job.RecruiterID,
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		Type:            string(job.Type),
		Category:        job.Category,
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		Description:     job.Description,
		Requirements:    requirements,
		Status:          string(job.Status),
		ApplicantsCount: job.ApplicantsCount,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

func MapJobDetailToResponse(d *models.JobDetail) *dto.JobDetailResponse {
	if d == nil {
		return nil
	}
	return &dto.JobDetailResponse{
		JobResponse:      MapJobModelToJobResponse(&d.Job),
		Recruiter:        MapUserSummaryToResponse(d.Recruiter),
		RecruiterProfile: MapRecruiterProfileToResponse(d.RecruiterProfile),
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		StudentID:   app.StudentID,
		CoverLetter: app.CoverLetter,
		ResumeURL:   app.ResumeURL,
		Status:      string(app.Status),
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}

func MapUserListingToResponse(u *models.UserListing) dto.UserListingResponse {
	return dto.UserListingResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               string(u.Role),
		Blocked:            u.Blocked,
		CreatedAt:          u.CreatedAt,
		University:         u.University,
		Degree:             u.Degree,
		GraduationYear:     u.GraduationYear,
		Skills:             u.Skills,
		Company:            u.Company,
		CompanyDescription: u.CompanyDescription,
		Website:            u.Website,
		Approved:           u.Approved,
	}
}
