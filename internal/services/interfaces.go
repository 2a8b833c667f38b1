package services

import (
	"context"
	"time"

	"careerconnect/internal/models"
	"careerconnect/internal/transport/dto"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token   string
	Account models.UserWithProfile
}

// AuthService defines registration, login and session operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*models.UserWithProfile, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	ResolveUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	SeedAdmin(ctx context.Context, name, email, password string) (*models.User, bool, error)
}

// UserService defines profile maintenance and admin moderation.
type UserService interface {
	UpdateUser(ctx context.Context, actor Actor, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateStudentProfile(ctx context.Context, actor Actor, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error)
	UpdateRecruiterProfile(ctx context.Context, actor Actor, userID uuid.UUID, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error)
	ListUsers(ctx context.Context) ([]models.UserListing, error)
	ApproveRecruiter(ctx context.Context, actor Actor, recruiterID uuid.UUID) (*models.RecruiterProfile, error)
	BlockUser(ctx context.Context, actor Actor, userID uuid.UUID) (*models.User, error)
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	ListJobs(ctx context.Context, filter *dto.ListJobsRequest) ([]models.JobDetail, error)
	GetJob(ctx context.Context, id uuid.UUID) (*models.JobDetail, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, actor Actor, id uuid.UUID) error
	ListRecruiterJobs(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error)
}

// ApplicationService defines the interface for job application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, actor Actor, jobID uuid.UUID, req *dto.ApplyToJobRequest) (*models.Application, error)
	ListStudentApplications(ctx context.Context, studentID uuid.UUID) ([]models.StudentApplication, error)
	ListJobApplicants(ctx context.Context, actor Actor, jobID uuid.UUID) ([]models.Applicant, error)
	UpdateStatus(ctx context.Context, actor Actor, applicationID uuid.UUID, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

// StatsService defines the admin dashboard counters.
type StatsService interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
}
