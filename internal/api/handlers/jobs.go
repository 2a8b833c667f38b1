package handlers

import (
	"net/http"

	"careerconnect/internal/services"
	"careerconnect/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

var jobNotFound = errorMessages{services.ErrNotFound: "Job not found"}

// ListJobs godoc
// @Summary      List active jobs
// @Description  Active jobs, newest first. search matches title or company, location is a substring match, category and type are exact.
// @Tags         jobs
// @Produce      json
// @Param        search   query string false "Title or company contains"
// @Param        location query string false "Location contains"
// @Param        category query string false "Exact category"
// @Param        type     query string false "Exact job type" Enums(Full-time, Part-time, Internship, Contract)
// @Success      200  {array}   dto.JobDetailResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListJobs(c *gin.Context) {
	var filter dto.ListJobsRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err, "ListJobs", nil)
		return
	}

	resp := make([]*dto.JobDetailResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, MapJobDetailToResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Recruiter only. The owner is taken from the auth context.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  dto.MessageResponse "Bad Request - Invalid input"
// @Failure      401 {object}  dto.MessageResponse "Unauthorized"
// @Failure      403 {object}  dto.MessageResponse "Not a recruiter"
// @Failure      500 {object}  dto.MessageResponse "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.RecruiterID = actor.ID

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "CreateJob", nil)
		return
	}
	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Description  Any status. Enriched with the recruiter and their profile.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobDetailResponse "Successfully retrieved job"
// @Failure      400 {object}  dto.MessageResponse "Invalid ID format"
// @Failure      404 {object}  dto.MessageResponse "Job Not Found"
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err, "GetJobByID", jobNotFound)
		return
	}
	c.JSON(http.StatusOK, MapJobDetailToResponse(job))
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Owning recruiter only. Partial update.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id  path string               true "Job ID" Format(uuid)
// @Param        job body dto.UpdateJobRequest true "Fields to change"
// @Success      200 {object}  dto.JobResponse
// @Failure      403 {object}  dto.MessageResponse "Not the owner"
// @Failure      404 {object}  dto.MessageResponse "Job Not Found"
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), actor, jobID, &req)
	if err != nil {
		respondError(c, err, "UpdateJob", jobNotFound)
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Owning recruiter only. The job's applications are deleted with it.
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID" Format(uuid)
// @Success      200 {object}  dto.MessageResponse
// @Failure      403 {object}  dto.MessageResponse "Not the owner"
// @Failure      404 {object}  dto.MessageResponse "Job Not Found"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), actor, jobID); err != nil {
		respondError(c, err, "DeleteJob", jobNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted successfully"})
}

// ListRecruiterJobs godoc
// @Summary      Jobs of a recruiter
// @Description  Every job owned by the recruiter, any status, newest first.
// @Tags         jobs
// @Produce      json
// @Param        recruiterId path string true "Recruiter user ID" Format(uuid)
// @Success      200 {array}   dto.JobResponse
// @Router       /jobs/recruiter/{recruiterId} [get]
// @Security     BearerAuth
func (h *JobHandler) ListRecruiterJobs(c *gin.Context) {
	recruiterID, ok := parseUUIDParam(c, "recruiterId")
	if !ok {
		return
	}
	h.writeRecruiterJobs(c, recruiterID)
}

// ListMyJobs godoc
// @Summary      Jobs of the caller
// @Description  Same as /jobs/recruiter/{recruiterId} for the authenticated recruiter.
// @Tags         jobs
// @Produce      json
// @Success      200 {array}   dto.JobResponse
// @Router       /jobs/recruiter/my-jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	h.writeRecruiterJobs(c, actor.ID)
}

func (h *JobHandler) writeRecruiterJobs(c *gin.Context, recruiterID uuid.UUID) {
	jobs, err := h.service.ListRecruiterJobs(c.Request.Context(), recruiterID)
	if err != nil {
		respondError(c, err, "ListRecruiterJobs", nil)
		return
	}
	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, MapJobModelToJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, resp)
}
