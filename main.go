package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"careerconnect/config"
	"careerconnect/internal/app"
	"careerconnect/internal/database"
	"careerconnect/internal/events"
	"careerconnect/internal/models"
	"careerconnect/internal/server"
)

// @title           CareerConnect API
// @version         1.0
// @description     Job board API connecting students, recruiters and admins.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns every resource it opens, so all exits go through the deferred cleanup.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer application.Close()

	if err := database.Migrate(ctx, application.DBPool); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "seed-admin":
			return seedAdmin(ctx, application.Services.Auth, cfg.Admin)
		case "migrate":
			log.Println("Migrations applied")
			return nil
		default:
			return fmt.Errorf("unknown command %q (expected seed-admin or migrate)", os.Args[1])
		}
	}

	// --- Notification worker ---
	worker := events.NewNotificationWorker(application.Bus, events.LogHandler)
	if err := worker.Start(ctx); err != nil {
		return fmt.Errorf("failed to start notification worker: %w", err)
	}
	defer worker.Wait()
	defer stop()

	srv, err := server.NewServer(application)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	// --- Graceful Shutdown Handling ---
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Application gracefully stopped.")
	return nil
}

type adminSeeder interface {
	SeedAdmin(ctx context.Context, name, email, password string) (*models.User, bool, error)
}

func seedAdmin(ctx context.Context, seeder adminSeeder, admin config.AdminConfig) error {
	user, created, err := seeder.SeedAdmin(ctx, admin.Name, admin.Email, admin.Password)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if created {
		log.Printf("Admin %s created with ID %s", user.Email, user.ID)
		return nil
	}
	log.Printf("Admin %s already exists, nothing to do", user.Email)
	return nil
}
