package handlers

import (
	"net/http"

	"careerconnect/internal/services"
	"careerconnect/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApplicationHandler holds dependencies for job application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Student only. A student can apply to a job once.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId       path string                true  "Job ID" Format(uuid)
// @Param        application body dto.ApplyToJobRequest false "Cover letter and resume URL"
// @Success      201  {object}  dto.ApplicationResponse
// @Failure      400  {object}  dto.MessageResponse "Already applied or invalid input"
// @Failure      403  {object}  dto.MessageResponse "Not a student"
// @Failure      404  {object}  dto.MessageResponse "Job not found"
// @Router       /applications/job/{jobId} [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "jobId")
	if !ok {
		return
	}

	var req dto.ApplyToJobRequest
	if c.Request.ContentLength != 0 {
		if !bindJSON(c, h.validator, &req) {
			return
		}
	}

	app, err := h.service.Apply(c.Request.Context(), actor, jobID, &req)
	if err != nil {
		respondError(c, err, "ApplyToJob", errorMessages{
			services.ErrNotFound: "Job not found",
			services.ErrConflict: "You have already applied to this job",
		})
		return
	}
	c.JSON(http.StatusCreated, MapApplicationModelToResponse(app))
}

// ListStudentApplications godoc
// @Summary      Applications of a student
// @Description  Each application with its job, the job's recruiter and recruiter profile. job is null when the job no longer exists.
// @Tags         applications
// @Produce      json
// @Param        studentId path string true "Student user ID" Format(uuid)
// @Success      200  {array}   dto.StudentApplicationResponse
// @Router       /applications/student/{studentId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListStudentApplications(c *gin.Context) {
	studentID, ok := parseUUIDParam(c, "studentId")
	if !ok {
		return
	}

	apps, err := h.service.ListStudentApplications(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err, "ListStudentApplications", nil)
		return
	}

	resp := make([]dto.StudentApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, dto.StudentApplicationResponse{
			ApplicationResponse: MapApplicationModelToResponse(&apps[i].Application),
			Job:                 MapJobDetailToResponse(apps[i].Job),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// ListJobApplicants godoc
// @Summary      Applicants of a job
// @Description  Owning recruiter only. Each application with the student and their profile.
// @Tags         applications
// @Produce      json
// @Param        jobId path string true "Job ID" Format(uuid)
// @Success      200  {array}   dto.ApplicantResponse
// @Failure      403  {object}  dto.MessageResponse "Not the owner"
// @Failure      404  {object}  dto.MessageResponse "Job not found"
// @Router       /applications/job/{jobId}/applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplicants(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "jobId")
	if !ok {
		return
	}

	applicants, err := h.service.ListJobApplicants(c.Request.Context(), actor, jobID)
	if err != nil {
		respondError(c, err, "ListJobApplicants", errorMessages{services.ErrNotFound: "Job not found"})
		return
	}

	resp := make([]dto.ApplicantResponse, 0, len(applicants))
	for i := range applicants {
		resp = append(resp, dto.ApplicantResponse{
			ApplicationResponse: MapApplicationModelToResponse(&applicants[i].Application),
			Student:             MapUserSummaryToResponse(applicants[i].Student),
			StudentProfile:      MapStudentProfileToResponse(applicants[i].StudentProfile),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateApplicationStatus godoc
// @Summary      Set an application's status
// @Description  Owning recruiter of the job only. Any status may follow any other.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path string                             true "Application ID" Format(uuid)
// @Param        status body dto.UpdateApplicationStatusRequest true "New status"
// @Success      200  {object}  dto.ApplicationResponse
// @Failure      403  {object}  dto.MessageResponse "Not the owner"
// @Failure      404  {object}  dto.MessageResponse "Application not found"
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	appID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), actor, appID, &req)
	if err != nil {
		respondError(c, err, "UpdateApplicationStatus", errorMessages{services.ErrNotFound: "Application not found"})
		return
	}
	c.JSON(http.StatusOK, MapApplicationModelToResponse(app))
}
