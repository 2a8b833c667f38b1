package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"careerconnect/internal/mocks"
	"careerconnect/internal/models"
	"careerconnect/internal/services"
	"careerconnect/internal/storage"
	"careerconnect/internal/transport/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type authServiceDeps struct {
	db       *fakeDB
	users    *mocks.MockUserRepository
	profiles *mocks.MockProfileRepository
	denylist *mocks.MockTokenDenylist
	tokens   *services.TokenManager
}

func setupAuthServiceTest(t *testing.T) (context.Context, services.AuthService, authServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := authServiceDeps{
		db:       newFakeDB(),
		users:    mocks.NewMockUserRepository(ctrl),
		profiles: mocks.NewMockProfileRepository(ctrl),
		denylist: mocks.NewMockTokenDenylist(ctrl),
		tokens:   services.NewTokenManager(testSecret, "careerconnect", time.Hour),
	}
	svc := services.NewAuthService(deps.db, deps.users, deps.profiles, deps.denylist, deps.tokens)
	return context.Background(), svc, deps
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Register_Student(t *testing.T) {
	ctx, svc, deps := setupAuthServiceTest(t)

	req := &dto.RegisterRequest{
		Name:       "Ada",
		Email:      "  Ada@Example.com ",
		Password:   "secret1",
		Role:       "student",
		University: "MIT",
	}

	deps.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(nil, storage.ErrNotFound)
	deps.users.EXPECT().WithTx(deps.db.tx).Return(deps.users)
	deps.profiles.EXPECT().WithTx(deps.db.tx).Return(deps.profiles)
	deps.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) (*models.User, error) {
		assert.Equal(t, "ada@example.com", u.Email)
		assert.Equal(t, models.RoleStudent, u.Role)
		assert.NotEqual(t, "secret1", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
		created := *u
		created.CreatedAt = time.Now()
		return &created, nil
	})
	deps.profiles.EXPECT().CreateStudent(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.StudentProfile) (*models.StudentProfile, error) {
		assert.Equal(t, "MIT", p.University)
		assert.Equal(t, 2025, p.GraduationYear)
		assert.Empty(t, p.Skills)
		created := *p
		created.ID = uuid.New()
		return &created, nil
	})

	result, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.True(t, deps.db.tx.committed)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ada@example.com", result.Account.User.Email)
	require.NotNil(t, result.Account.StudentProfile)
	assert.Nil(t, result.Account.RecruiterProfile)

	claims, err := deps.tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Account.User.ID.String(), claims.Subject)
	assert.Equal(t, "student", claims.Role)
}

func TestAuthService_Register_RecruiterStartsUnapproved(t *testing.T) {
	ctx, svc, deps := setupAuthServiceTest(t)

	req := &dto.RegisterRequest{Name: "Rita", Email: "rita@acme.com", Password: "secret1", Role: "recruiter", Company: "Acme"}

	deps.users.EXPECT().GetByEmail(ctx, "rita@acme.com").Return(nil, storage.ErrNotFound)
	deps.users.EXPECT().WithTx(deps.db.tx).Return(deps.users)
	deps.profiles.EXPECT().WithTx(deps.db.tx).Return(deps.profiles)
	deps.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) (*models.User, error) {
		return u, nil
	})
	deps.profiles.EXPECT().CreateRecruiter(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.RecruiterProfile) (*models.RecruiterProfile, error) {
		assert.Equal(t, "Acme", p.Company)
		assert.False(t, p.Approved)
		return p, nil
	})

	result, err := svc.Register(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, result.Account.RecruiterProfile)
	assert.False(t, result.Account.RecruiterProfile.Approved)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx, svc, deps := setupAuthServiceTest(t)

	deps.users.EXPECT().GetByEmail(ctx, "taken@example.com").Return(&models.User{ID: uuid.New()}, nil)
	deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.Register(ctx, &dto.RegisterRequest{Name: "X", Email: "Taken@example.com", Password: "secret1", Role: "student"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Contains(t, err.Error(), "user already exists")
	assert.Equal(t, 0, deps.db.begun)
}

func TestAuthService_Register_AdminRejected(t *testing.T) {
	ctx, svc, _ := setupAuthServiceTest(t)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "X", Email: "x@example.com", Password: "secret1", Role: "admin"})

	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAuthService_Register_PasswordOverByteLimit(t *testing.T) {
	ctx, svc, deps := setupAuthServiceTest(t)

	// 40 characters, 80 bytes: within the DTO's character limit, past bcrypt's.
	req := &dto.RegisterRequest{Name: "Zoé", Email: "zoe@example.com", Password: strings.Repeat("é", 40)}
	require.NoError(t, validator.New().Struct(req))

	_, err := svc.Register(ctx, req)

	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "at most 72 bytes")
	assert.Equal(t, 0, deps.db.begun)
}

func TestAuthService_Register_ProfileFailureRollsBack(t *testing.T) {
	ctx, svc, deps := setupAuthServiceTest(t)

	deps.users.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, storage.ErrNotFound)
	deps.users.EXPECT().WithTx(deps.db.tx).Return(deps.users)
	deps.profiles.EXPECT().WithTx(deps.db.tx).Return(deps.profiles)
	deps.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) (*models.User, error) {
		return u, nil
	})
	deps.profiles.EXPECT().CreateStudent(ctx, gomock.Any()).Return(nil, errDB)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Name: "X", Email: "x@example.com", Password: "secret1", Role: "student"})

	require.Error(t, err)
	assert.False(t, deps.db.tx.committed)
	assert.True(t, deps.db.tx.rolledBack)
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	user := &models.User{ID: userID, Name: "Ada", Email: "ada@example.com", PasswordHash: "", Role: models.RoleStudent}

	t.Run("Success returns token and profile", func(t *testing.T) {
		ctx, svc, deps := setupAuthServiceTest(t)
		u := *user
		u.PasswordHash = hashed(t, "secret1")

		deps.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(&u, nil)
		deps.profiles.EXPECT().GetStudent(ctx, userID).Return(&models.StudentProfile{UserID: userID, University: "MIT"}, nil)

		result, err := svc.Login(ctx, &dto.LoginRequest{Email: "ADA@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		require.NotNil(t, result.Account.StudentProfile)
		assert.Equal(t, "MIT", result.Account.StudentProfile.University)
	})

	t.Run("Wrong password", func(t *testing.T) {
		ctx, svc, deps := setupAuthServiceTest(t)
		u := *user
		u.PasswordHash = hashed(t, "secret1")

		deps.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(&u, nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Unknown email looks the same as a wrong password", func(t *testing.T) {
		ctx, svc, deps := setupAuthServiceTest(t)

		deps.users.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, storage.ErrNotFound)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Blocked user cannot log in", func(t *testing.T) {
		ctx, svc, deps := setupAuthServiceTest(t)
		u := *user
		u.PasswordHash = hashed(t, "secret1")
		u.Blocked = true

		deps.users.EXPECT().GetByEmail(ctx, "ada@example.com").Return(&u, nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, services.ErrBlocked)
	})
}

func TestAuthService_ResolveUser(t *testing.T) {
	ctx, svc, deps := setupAuthServiceTest(t)
	active := &models.User{ID: uuid.New(), Role: models.RoleRecruiter}
	blocked := &models.User{ID: uuid.New(), Role: models.RoleStudent, Blocked: true}
	gone := uuid.New()

	deps.users.EXPECT().GetByID(ctx, active.ID).Return(active, nil)
	deps.users.EXPECT().GetByID(ctx, blocked.ID).Return(blocked, nil)
	deps.users.EXPECT().GetByID(ctx, gone).Return(nil, storage.ErrNotFound)

	got, err := svc.ResolveUser(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, active, got)

	_, err = svc.ResolveUser(ctx, blocked.ID)
	assert.ErrorIs(t, err, services.ErrBlocked)

	_, err = svc.ResolveUser(ctx, gone)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestAuthService_Logout(t *testing.T) {
	ctx, svc, deps := setupAuthServiceTest(t)

	deps.denylist.EXPECT().Revoke(ctx, "token-id", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
		assert.Greater(t, ttl, 50*time.Minute)
		assert.LessOrEqual(t, ttl, time.Hour)
		return nil
	})
	deps.denylist.EXPECT().IsRevoked(ctx, "token-id").Return(true, nil)

	require.NoError(t, svc.Logout(ctx, "token-id", time.Now().Add(time.Hour)))

	revoked, err := svc.IsTokenRevoked(ctx, "token-id")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthService_SeedAdmin(t *testing.T) {
	t.Run("Creates admin when missing", func(t *testing.T) {
		ctx, svc, deps := setupAuthServiceTest(t)

		deps.users.EXPECT().GetByEmail(ctx, "admin@careerconnect.com").Return(nil, storage.ErrNotFound)
		deps.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) (*models.User, error) {
			assert.Equal(t, models.RoleAdmin, u.Role)
			return u, nil
		})

		user, created, err := svc.SeedAdmin(ctx, "Admin", "admin@careerconnect.com", "password123")

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("Existing admin is left alone", func(t *testing.T) {
		ctx, svc, deps := setupAuthServiceTest(t)
		existing := &models.User{ID: uuid.New(), Role: models.RoleAdmin}

		deps.users.EXPECT().GetByEmail(ctx, "admin@careerconnect.com").Return(existing, nil)
		deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		user, created, err := svc.SeedAdmin(ctx, "Admin", "admin@careerconnect.com", "password123")

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, user)
	})

	t.Run("Password past 72 bytes is rejected", func(t *testing.T) {
		ctx, svc, deps := setupAuthServiceTest(t)

		deps.users.EXPECT().GetByEmail(ctx, "admin@careerconnect.com").Return(nil, storage.ErrNotFound)
		deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, _, err := svc.SeedAdmin(ctx, "Admin", "admin@careerconnect.com", strings.Repeat("ü", 37))

		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("Short password is rejected", func(t *testing.T) {
		ctx, svc, _ := setupAuthServiceTest(t)

		_, _, err := svc.SeedAdmin(ctx, "Admin", "admin@careerconnect.com", "123")

		assert.ErrorIs(t, err, services.ErrValidation)
	})
}
