package storage

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks careerconnect/internal/storage UserRepository,ProfileRepository,JobRepository,ApplicationRepository,StatsRepository,TokenDenylist

import (
	"context"
	"time"

	"careerconnect/internal/models"
	"careerconnect/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	WithTx(tx pgx.Tx) UserRepository
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.User, error)
	Block(ctx context.Context, id uuid.UUID) (*models.User, error)
	SummariesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.UserSummary, error)
	ListWithProfiles(ctx context.Context) ([]models.UserListing, error)
}

// ProfileRepository defines the interface for student and recruiter profile operations.
// Profiles are keyed by their owning user id.
type ProfileRepository interface {
	WithTx(tx pgx.Tx) ProfileRepository
	CreateStudent(ctx context.Context, profile *models.StudentProfile) (*models.StudentProfile, error)
	CreateRecruiter(ctx context.Context, profile *models.RecruiterProfile) (*models.RecruiterProfile, error)
	GetStudent(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error)
	GetRecruiter(ctx context.Context, userID uuid.UUID) (*models.RecruiterProfile, error)
	UpdateStudent(ctx context.Context, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error)
	UpdateRecruiter(ctx context.Context, userID uuid.UUID, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error)
	ApproveRecruiter(ctx context.Context, userID uuid.UUID) (*models.RecruiterProfile, error)
	StudentsByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.StudentProfile, error)
	RecruitersByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.RecruiterProfile, error)
}

// JobRepository defines the interface for job posting operations.
type JobRepository interface {
	WithTx(tx pgx.Tx) JobRepository
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListActive(ctx context.Context, filter *dto.ListJobsRequest) ([]models.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Job, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementApplicants(ctx context.Context, id uuid.UUID) error
}

// ApplicationRepository defines the interface for job application operations.
type ApplicationRepository interface {
	WithTx(tx pgx.Tx) ApplicationRepository
	Create(ctx context.Context, application *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	GetByJobAndStudent(ctx context.Context, jobID, studentID uuid.UUID) (*models.Application, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}

// StatsRepository computes the admin dashboard counters.
type StatsRepository interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
}

// TokenDenylist records revoked token ids until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
