package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title        string    `json:"title" validate:"required,min=1,max=200"`
	Company      string    `json:"company" validate:"required,min=1,max=200"`
	Location     string    `json:"location" validate:"required,min=1,max=200"`
	Type         string    `json:"type" validate:"required,oneof=Full-time Part-time Internship Contract"`
	Category     string    `json:"category" validate:"max=100"`
	SalaryMin    float64   `json:"salaryMin" validate:"gte=0"`
	SalaryMax    float64   `json:"salaryMax" validate:"gte=0"`
	Description  string    `json:"description" validate:"max=20000"`
	Requirements []string  `json:"requirements" validate:"max=100,dive,max=500"`
	Status       string    `json:"status" validate:"omitempty,oneof=active closed draft"`
	RecruiterID  uuid.UUID `json:"-"` // Set internally by handler from auth context
}

// UpdateJobRequest is a partial update; nil fields are left unchanged.
type UpdateJobRequest struct {
	Title        *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Company      *string   `json:"company" validate:"omitempty,min=1,max=200"`
	Location     *string   `json:"location" validate:"omitempty,min=1,max=200"`
	Type         *string   `json:"type" validate:"omitempty,oneof=Full-time Part-time Internship Contract"`
	Category     *string   `json:"category" validate:"omitempty,max=100"`
	SalaryMin    *float64  `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax    *float64  `json:"salaryMax" validate:"omitempty,gte=0"`
	Description  *string   `json:"description" validate:"omitempty,max=20000"`
	Requirements *[]string `json:"requirements" validate:"omitempty,max=100,dive,max=500"`
	Status       *string   `json:"status" validate:"omitempty,oneof=active closed draft"`
}

// ListJobsRequest holds the optional listing filters. They are ANDed together.
type ListJobsRequest struct {
	Search   string `form:"search" validate:"max=200"`
	Location string `form:"location" validate:"max=200"`
	Category string `form:"category" validate:"max=100"`
	Type     string `form:"type" validate:"omitempty,oneof=Full-time Part-time Internship Contract"`
}

// --- Job Response DTOs ---

// JobResponse defines the structure for returning job data.
type JobResponse struct {
	ID              uuid.UUID `json:"id"`
	RecruiterID     uuid.UUID `json:"recruiterId"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	SalaryMin       float64   `json:"salaryMin"`
	SalaryMax       float64   `json:"salaryMax"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Status          string    `json:"status"`
	ApplicantsCount int       `json:"applicantsCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// JobDetailResponse is a job enriched with its recruiter and the recruiter's public profile.
type JobDetailResponse struct {
	JobResponse
	Recruiter        *UserSummaryResponse      `json:"recruiter"`
	RecruiterProfile *RecruiterProfileResponse `json:"recruiterProfile"`
}
