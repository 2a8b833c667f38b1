package main

import (
	"context"
	"errors"
	"testing"

	"careerconnect/config"
	"careerconnect/internal/models"
	"careerconnect/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSeeder struct {
	mock.Mock
}

func (m *mockSeeder) SeedAdmin(ctx context.Context, name, email, password string) (*models.User, bool, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Bool(1), args.Error(2)
}

func TestSeedAdmin(t *testing.T) {
	admin := config.AdminConfig{Name: "Admin", Email: "admin@careerconnect.com", Password: "password123"}
	seeded := &models.User{ID: uuid.New(), Email: admin.Email, Role: models.RoleAdmin}

	tests := []struct {
		name    string
		user    *models.User
		created bool
		err     error
		wantErr error
	}{
		{name: "created", user: seeded, created: true},
		{name: "already present", user: seeded},
		{name: "failure is returned to the caller", err: services.ErrValidation, wantErr: services.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeder := new(mockSeeder)
			seeder.On("SeedAdmin", mock.Anything, admin.Name, admin.Email, admin.Password).Return(tt.user, tt.created, tt.err)

			err := seedAdmin(context.Background(), seeder, admin)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			seeder.AssertExpectations(t)
		})
	}
}

var _ adminSeeder = services.AuthService(nil)
