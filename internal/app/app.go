package app

import (
	"context"
	"fmt"
	"log"

	"careerconnect/config"
	"careerconnect/internal/database"
	"careerconnect/internal/events"
	"careerconnect/internal/services"
	"careerconnect/internal/storage/postgres"
	"careerconnect/internal/storage/redisstore"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Services groups the business services built on top of the repositories.
type Services struct {
	Auth         services.AuthService
	Users        services.UserService
	Jobs         services.JobService
	Applications services.ApplicationService
	Stats        services.StatsService
}

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Bus         *events.Bus
	Validator   *validator.Validate
	Tokens      *services.TokenManager
	Services    Services
}

// New connects to Postgres, Redis and the event bus and wires the services.
// Whatever was opened is closed again when a later step fails.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	a := &Application{Config: cfg, Validator: validator.New()}

	var err error
	a.DBPool, err = database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a.RedisClient, err = database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Bus, err = events.NewBus(cfg.Events)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Tokens = services.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	a.Services = buildServices(a.DBPool, a.RedisClient, a.Bus, a.Tokens)
	return a, nil
}

func buildServices(pool *pgxpool.Pool, rdb *redis.Client, bus *events.Bus, tokens *services.TokenManager) Services {
	userRepo := postgres.NewUserRepo(pool)
	profileRepo := postgres.NewProfileRepo(pool)
	jobRepo := postgres.NewJobRepo(pool)
	applicationRepo := postgres.NewApplicationRepo(pool)
	denylist := redisstore.NewTokenDenylist(rdb)

	return Services{
		Auth:         services.NewAuthService(pool, userRepo, profileRepo, denylist, tokens),
		Users:        services.NewUserService(userRepo, profileRepo, bus),
		Jobs:         services.NewJobService(jobRepo, userRepo, profileRepo),
		Applications: services.NewApplicationService(pool, applicationRepo, jobRepo, userRepo, profileRepo, bus),
		Stats:        services.NewStatsService(postgres.NewStatsRepo(pool)),
	}
}

// Close releases the bus, the Redis client and the pool, in that order.
func (a *Application) Close() {
	if a.Bus != nil {
		if err := a.Bus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if a.DBPool != nil {
		a.DBPool.Close()
	}
}
