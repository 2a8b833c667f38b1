package integration_tests

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"careerconnect/internal/database"
	"careerconnect/internal/models"
	"careerconnect/internal/services"
	"careerconnect/internal/storage/postgres"
	"careerconnect/internal/storage/redisstore"
	"careerconnect/internal/transport/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	pool   *pgxpool.Pool
	redis  *redis.Client
	tokens *services.TokenManager

	auth         services.AuthService
	users        services.UserService
	jobs         services.JobService
	applications services.ApplicationService
	stats        services.StatsService
}

// getTestEnv connects to the database named by TEST_DATABASE_URL, applies the
// migrations and wires every service against it. Redis is an in-memory miniredis.
func getTestEnv(t *testing.T) (context.Context, *testEnv) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	cleanupTables(ctx, t, pool, "applications", "jobs", "student_profiles", "recruiter_profiles", "users")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	userRepo := postgres.NewUserRepo(pool)
	profileRepo := postgres.NewProfileRepo(pool)
	jobRepo := postgres.NewJobRepo(pool)
	appRepo := postgres.NewApplicationRepo(pool)
	tokens := services.NewTokenManager("integration-secret", "careerconnect", time.Hour)

	env := &testEnv{
		pool:         pool,
		redis:        rdb,
		tokens:       tokens,
		auth:         services.NewAuthService(pool, userRepo, profileRepo, redisstore.NewTokenDenylist(rdb), tokens),
		users:        services.NewUserService(userRepo, profileRepo, nil),
		jobs:         services.NewJobService(jobRepo, userRepo, profileRepo),
		applications: services.NewApplicationService(pool, appRepo, jobRepo, userRepo, profileRepo, nil),
		stats:        services.NewStatsService(postgres.NewStatsRepo(pool)),
	}
	return ctx, env
}

// cleanupTables empties the given tables for test isolation.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		return
	}
	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" CASCADE")
	require.NoError(t, err, "Failed to truncate tables")
	log.Printf("Cleaned tables: %s", strings.Join(tables, ", "))
}

func registerUser(t *testing.T, ctx context.Context, env *testEnv, email, role string) *services.AuthResult {
	t.Helper()
	result, err := env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     strings.Split(email, "@")[0],
		Email:    email,
		Password: "password123",
		Role:     role,
		Company:  "Acme",
	})
	require.NoError(t, err, "Failed to register %s", email)
	return result
}

func actorOf(result *services.AuthResult) services.Actor {
	return services.Actor{ID: result.Account.User.ID, Role: result.Account.User.Role}
}

func createTestJob(t *testing.T, ctx context.Context, env *testEnv, recruiter services.Actor, title, status string) *models.Job {
	t.Helper()
	job, err := env.jobs.CreateJob(ctx, &dto.CreateJobRequest{
		RecruiterID: recruiter.ID,
		Title:       title,
		Company:     "Acme",
		Location:    "Lisbon, Portugal",
		Type:        "Internship",
		Category:    "Engineering",
		Status:      status,
	})
	require.NoError(t, err, "Failed to create test job %s", title)
	return job
}
