package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Application Request DTOs ---

// ApplyToJobRequest carries the optional application content. The job comes from the path.
type ApplyToJobRequest struct {
	CoverLetter string `json:"coverLetter" validate:"max=10000"`
	ResumeURL   string `json:"resumeUrl" validate:"max=2048"`
}

// UpdateApplicationStatusRequest sets the review status of an application.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected"`
}

// --- Application Response DTOs ---

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"jobId"`
	StudentID   uuid.UUID `json:"studentId"`
	CoverLetter string    `json:"coverLetter"`
	ResumeURL   string    `json:"resumeUrl"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StudentApplicationResponse is an application as the student sees it, with the job it targets.
type StudentApplicationResponse struct {
	ApplicationResponse
	Job *JobDetailResponse `json:"job"`
}

// ApplicantResponse is an application as the recruiter sees it, with the applicant.
type ApplicantResponse struct {
	ApplicationResponse
	Student        *UserSummaryResponse    `json:"student"`
	StudentProfile *StudentProfileResponse `json:"studentProfile"`
}
