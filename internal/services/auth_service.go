package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"careerconnect/internal/models"
	"careerconnect/internal/storage"
	"careerconnect/internal/transport/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultGraduationYear = 2025

type authService struct {
	db       TxBeginner
	users    storage.UserRepository
	profiles storage.ProfileRepository
	denylist storage.TokenDenylist
	tokens   *TokenManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(db TxBeginner, users storage.UserRepository, profiles storage.ProfileRepository, denylist storage.TokenDenylist, tokens *TokenManager) AuthService {
	return &authService{
		db:       db,
		users:    users,
		profiles: profiles,
		denylist: denylist,
		tokens:   tokens,
	}
}

// Register creates the user and the profile for their role in one transaction and
// returns a token for the new account.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*AuthResult, error) {
	email := normalizeEmail(req.Email)
	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleRecruiter {
		return nil, fmt.Errorf("%w: role must be student or recruiter", ErrValidation)
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, maxPasswordBytes)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		log.Printf("Register: email %s already registered", email)
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking existing email")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Register: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	user, err := s.users.WithTx(tx).Create(ctx, &models.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		// A concurrent registration with the same email loses on the unique index.
		return nil, mapRepoError(err, "creating user")
	}

	account := models.UserWithProfile{User: *user}
	txProfiles := s.profiles.WithTx(tx)
	switch role {
	case models.RoleStudent:
		year := defaultGraduationYear
		if req.GraduationYear != nil {
			year = *req.GraduationYear
		}
		account.StudentProfile, err = txProfiles.CreateStudent(ctx, &models.StudentProfile{
			UserID:         user.ID,
			University:     req.University,
			Degree:         req.Degree,
			GraduationYear: year,
			Skills:         []string{},
		})
	case models.RoleRecruiter:
		account.RecruiterProfile, err = txProfiles.CreateRecruiter(ctx, &models.RecruiterProfile{
			UserID:             user.ID,
			Company:            req.Company,
			CompanyDescription: req.CompanyDescription,
			Website:            req.Website,
		})
	}
	if err != nil {
		return nil, mapRepoError(err, "creating profile")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Register: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	log.Printf("Register: user %s registered as %s", user.ID, user.Role)
	return &AuthResult{Token: token, Account: account}, nil
}

// Login verifies the credentials and returns a token with the user's profile.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, mapRepoError(err, "fetching user for login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, ErrInvalidCredentials
	}
	if user.Blocked {
		log.Printf("Login attempt by blocked user %s", user.ID)
		return nil, ErrBlocked
	}

	account, err := s.withProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: *account}, nil
}

// Me returns the user and their profile.
func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*models.UserWithProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", userID))
	}
	return s.withProfile(ctx, user)
}

// Logout revokes the token until its natural expiry.
func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.denylist.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		log.Printf("Logout: failed to revoke token %s: %v", tokenID, err)
		return fmt.Errorf("internal error revoking token: %w", err)
	}
	return nil
}

// ResolveUser loads the user behind a verified token and rejects blocked accounts.
func (s *authService) ResolveUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", ErrUnauthenticated)
		}
		return nil, mapRepoError(err, "resolving token user")
	}
	if user.Blocked {
		return nil, ErrBlocked
	}
	return user, nil
}

// IsTokenRevoked reports whether the token was logged out.
func (s *authService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.denylist.IsRevoked(ctx, tokenID)
}

// SeedAdmin creates the admin account when no user holds email yet. The boolean
// reports whether a user was created.
func (s *authService) SeedAdmin(ctx context.Context, name, email, password string) (*models.User, bool, error) {
	email = normalizeEmail(email)
	if email == "" || len(password) < 6 {
		return nil, false, fmt.Errorf("%w: admin email and a password of at least 6 characters are required", ErrValidation)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("SeedAdmin: admin already exists: %s", email)
		return existing, false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, false, mapRepoError(err, "checking admin account")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, false, err
	}
	if name == "" {
		name = "Admin"
	}
	user, err := s.users.Create(ctx, &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return nil, false, mapRepoError(err, "creating admin account")
	}
	log.Printf("SeedAdmin: seeded admin user %s", email)
	return user, true, nil
}

func (s *authService) withProfile(ctx context.Context, user *models.User) (*models.UserWithProfile, error) {
	account := &models.UserWithProfile{User: *user}
	var err error
	switch user.Role {
	case models.RoleStudent:
		account.StudentProfile, err = s.profiles.GetStudent(ctx, user.ID)
	case models.RoleRecruiter:
		account.RecruiterProfile, err = s.profiles.GetRecruiter(ctx, user.ID)
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, fmt.Sprintf("fetching profile of user %s", user.ID))
	}
	return account, nil
}

// maxPasswordBytes is the bcrypt input limit. Multi-byte characters count per byte.
const maxPasswordBytes = 72

func hashPassword(password string) ([]byte, error) {
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, maxPasswordBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
