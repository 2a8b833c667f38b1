package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- User Request DTOs ---

// UpdateUserRequest changes the account display name.
type UpdateUserRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateStudentProfileRequest is a partial update; nil fields are left unchanged.
type UpdateStudentProfileRequest struct {
	University     *string   `json:"university" validate:"omitempty,max=200"`
	Degree         *string   `json:"degree" validate:"omitempty,max=200"`
	GraduationYear *int      `json:"graduationYear" validate:"omitempty,min=1900,max=2100"`
	Skills         *[]string `json:"skills" validate:"omitempty,max=100,dive,max=100"`
	ResumeURL      *string   `json:"resumeUrl" validate:"omitempty,max=2048"`
}

// UpdateRecruiterProfileRequest is a partial update; nil fields are left unchanged.
type UpdateRecruiterProfileRequest struct {
	Company            *string `json:"company" validate:"omitempty,max=200"`
	CompanyDescription *string `json:"companyDescription" validate:"omitempty,max=5000"`
	Website            *string `json:"website" validate:"omitempty,max=2048"`
	LogoURL            *string `json:"logoUrl" validate:"omitempty,max=2048"`
}

// --- User Response DTOs ---

type StudentProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	University     string    `json:"university"`
	Degree         string    `json:"degree"`
	GraduationYear int       `json:"graduationYear"`
	Skills         []string  `json:"skills"`
	ResumeURL      string    `json:"resumeUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type RecruiterProfileResponse struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"userId"`
	Company            string    `json:"company"`
	CompanyDescription string    `json:"companyDescription"`
	Website            string    `json:"website"`
	LogoURL            string    `json:"logoUrl"`
	Approved           bool      `json:"approved"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// UserSummaryResponse is the name/email projection embedded in jobs and applications.
type UserSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// UserListingResponse is one row of the admin user listing, flattened with profile fields.
type UserListingResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	Blocked            bool      `json:"blocked"`
	CreatedAt          time.Time `json:"createdAt"`
	University         *string   `json:"university"`
	Degree             *string   `json:"degree"`
	GraduationYear     *int      `json:"graduationYear"`
	Skills             []string  `json:"skills"`
	Company            *string   `json:"company"`
	CompanyDescription *string   `json:"companyDescription"`
	Website            *string   `json:"website"`
	Approved           *bool     `json:"approved"`
}

// BlockUserResponse acknowledges a block and returns the updated user.
type BlockUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// AdminStatsResponse holds the dashboard counters.
type AdminStatsResponse struct {
	TotalStudents     int64 `json:"totalStudents"`
	TotalRecruiters   int64 `json:"totalRecruiters"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	PendingRecruiters int64 `json:"pendingRecruiters"`
	ActiveJobs        int64 `json:"activeJobs"`
}
