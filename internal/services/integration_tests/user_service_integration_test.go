package integration_tests

import (
	"testing"
	"time"

	"careerconnect/internal/services"
	"careerconnect/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Integration_RegisterLoginLogout(t *testing.T) {
	ctx, env := getTestEnv(t)

	registered := registerUser(t, ctx, env, "ada@uni.edu", "student")

	_, err := env.auth.Register(ctx, &dto.RegisterRequest{Name: "Dup", Email: "ADA@uni.edu", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrConflict)

	login, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "ada@uni.edu", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.Account.User.ID, login.Account.User.ID)

	claims, err := env.tokens.Parse(login.Token)
	require.NoError(t, err)
	require.NoError(t, env.auth.Logout(ctx, claims.ID, claims.ExpiresAt.Time))

	revoked, err := env.auth.IsTokenRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestUserService_Integration_AdminModeration(t *testing.T) {
	ctx, env := getTestEnv(t)

	admin, created, err := env.auth.SeedAdmin(ctx, "Admin", "admin@careerconnect.com", "password123")
	require.NoError(t, err)
	require.True(t, created)
	_, created, err = env.auth.SeedAdmin(ctx, "Admin", "admin@careerconnect.com", "password123")
	require.NoError(t, err)
	assert.False(t, created)

	adminActor := services.Actor{ID: admin.ID, Role: admin.Role}
	recruiter := registerUser(t, ctx, env, "rita@acme.com", "recruiter")
	student := registerUser(t, ctx, env, "ada@uni.edu", "student")

	stats, err := env.stats.AdminStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalStudents)
	assert.EqualValues(t, 1, stats.TotalRecruiters)
	assert.EqualValues(t, 1, stats.PendingRecruiters)

	profile, err := env.users.ApproveRecruiter(ctx, adminActor, recruiter.Account.User.ID)
	require.NoError(t, err)
	assert.True(t, profile.Approved)

	stats, err = env.stats.AdminStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.PendingRecruiters)

	for i := 0; i < 2; i++ {
		blocked, err := env.users.BlockUser(ctx, adminActor, student.Account.User.ID)
		require.NoError(t, err)
		assert.True(t, blocked.Blocked)
	}

	_, err = env.auth.Login(ctx, &dto.LoginRequest{Email: "ada@uni.edu", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrBlocked)

	listing, err := env.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 3)
	for _, u := range listing {
		switch u.Email {
		case "ada@uni.edu":
			require.NotNil(t, u.GraduationYear)
			assert.Equal(t, 2025, *u.GraduationYear)
			assert.Nil(t, u.Company)
		case "rita@acme.com":
			require.NotNil(t, u.Approved)
			assert.True(t, *u.Approved)
		}
	}
}

func TestUserService_Integration_ProfileUpdates(t *testing.T) {
	ctx, env := getTestEnv(t)

	student := registerUser(t, ctx, env, "ada@uni.edu", "student")
	other := registerUser(t, ctx, env, "bob@uni.edu", "student")
	self := actorOf(student)

	skills := []string{"go", "postgres"}
	year := 2027
	profile, err := env.users.UpdateStudentProfile(ctx, self, self.ID, &dto.UpdateStudentProfileRequest{Skills: &skills, GraduationYear: &year})
	require.NoError(t, err)
	assert.Equal(t, skills, profile.Skills)
	assert.Equal(t, 2027, profile.GraduationYear)
	assert.WithinDuration(t, time.Now(), profile.UpdatedAt, time.Minute)

	_, err = env.users.UpdateStudentProfile(ctx, actorOf(other), self.ID, &dto.UpdateStudentProfileRequest{Skills: &skills})
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = env.users.UpdateRecruiterProfile(ctx, self, self.ID, &dto.UpdateRecruiterProfileRequest{})
	assert.ErrorIs(t, err, services.ErrNotFound)
}
