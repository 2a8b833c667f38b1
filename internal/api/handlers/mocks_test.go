package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"careerconnect/internal/models"
	"careerconnect/internal/services"
	"careerconnect/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of services.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*services.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*services.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID uuid.UUID) (*models.UserWithProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserWithProfile), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return m.Called(ctx, tokenID, expiresAt).Error(0)
}

func (m *MockAuthService) ResolveUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) SeedAdmin(ctx context.Context, name, email, password string) (*models.User, bool, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

// MockUserService is a mock implementation of services.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateUser(ctx context.Context, actor services.Actor, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateStudentProfile(ctx context.Context, actor services.Actor, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentProfile), args.Error(1)
}

func (m *MockUserService) UpdateRecruiterProfile(ctx context.Context, actor services.Actor, userID uuid.UUID, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecruiterProfile), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.UserListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserListing), args.Error(1)
}

func (m *MockUserService) ApproveRecruiter(ctx context.Context, actor services.Actor, recruiterID uuid.UUID) (*models.RecruiterProfile, error) {
	args := m.Called(ctx, actor, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecruiterProfile), args.Error(1)
}

func (m *MockUserService) BlockUser(ctx context.Context, actor services.Actor, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, actor, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockJobService is a mock implementation of services.JobService.
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) ListJobs(ctx context.Context, filter *dto.ListJobsRequest) ([]models.JobDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobDetail), args.Error(1)
}

func (m *MockJobService) GetJob(ctx context.Context, id uuid.UUID) (*models.JobDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobDetail), args.Error(1)
}

func (m *MockJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, actor services.Actor, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, actor services.Actor, id uuid.UUID) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockJobService) ListRecruiterJobs(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

// MockApplicationService is a mock implementation of services.ApplicationService.
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, actor services.Actor, jobID uuid.UUID, req *dto.ApplyToJobRequest) (*models.Application, error) {
	args := m.Called(ctx, actor, jobID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListStudentApplications(ctx context.Context, studentID uuid.UUID) ([]models.StudentApplication, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentApplication), args.Error(1)
}

func (m *MockApplicationService) ListJobApplicants(ctx context.Context, actor services.Actor, jobID uuid.UUID) ([]models.Applicant, error) {
	args := m.Called(ctx, actor, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Applicant), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, actor services.Actor, applicationID uuid.UUID, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, actor, applicationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

// MockStatsService is a mock implementation of services.StatsService.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminStats), args.Error(1)
}

var (
	_ services.AuthService        = (*MockAuthService)(nil)
	_ services.UserService        = (*MockUserService)(nil)
	_ services.JobService         = (*MockJobService)(nil)
	_ services.ApplicationService = (*MockApplicationService)(nil)
	_ services.StatsService       = (*MockStatsService)(nil)
)

// --- Helpers ---

// asActor stands in for the JWT middleware by placing an identity in the context.
func asActor(actor services.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", actor.ID)
		c.Set("userRole", actor.Role)
		c.Set("tokenID", "jti-1")
		c.Set("tokenExpiresAt", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
		c.Next()
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func student() services.Actor   { return services.Actor{ID: uuid.New(), Role: models.RoleStudent} }
func recruiter() services.Actor { return services.Actor{ID: uuid.New(), Role: models.RoleRecruiter} }
func admin() services.Actor     { return services.Actor{ID: uuid.New(), Role: models.RoleAdmin} }

