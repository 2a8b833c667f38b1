package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"careerconnect/internal/events"
	"careerconnect/internal/models"
	"careerconnect/internal/storage"
	"careerconnect/internal/transport/dto"

	"github.com/google/uuid"
)

type userService struct {
	users     storage.UserRepository
	profiles  storage.ProfileRepository
	publisher events.Publisher
}

// NewUserService creates a new instance of UserService.
func NewUserService(users storage.UserRepository, profiles storage.ProfileRepository, publisher events.Publisher) UserService {
	return &userService{
		users:     users,
		profiles:  profiles,
		publisher: publisher,
	}
}

// canEditProfile allows a user to edit their own records and an admin to edit anyone's.
func canEditProfile(actor Actor, userID uuid.UUID) bool {
	return actor.ID == userID || actor.Role == models.RoleAdmin
}

// checkEditable resolves userID before the ownership check, so a missing user is a
// not-found for everyone.
func (s *userService) checkEditable(ctx context.Context, op string, actor Actor, userID uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching user %s", userID))
	}
	if !canEditProfile(actor, userID) {
		log.Printf("%s: Forbidden attempt by user %s on user %s", op, actor.ID, userID)
		return fmt.Errorf("%w: not authorized to update this profile", ErrForbidden)
	}
	return nil
}

// UpdateUser changes the display name of userID.
func (s *userService) UpdateUser(ctx context.Context, actor Actor, userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := s.checkEditable(ctx, "UpdateUser", actor, userID); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateName(ctx, userID, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating user %s", userID))
	}
	return user, nil
}

// UpdateStudentProfile applies a partial update to the student profile of userID.
func (s *userService) UpdateStudentProfile(ctx context.Context, actor Actor, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	if err := s.checkEditable(ctx, "UpdateStudentProfile", actor, userID); err != nil {
		return nil, err
	}
	profile, err := s.profiles.UpdateStudent(ctx, userID, req)
	if err != nil {
		return nil, mapRepoError(err, "student profile not found")
	}
	return profile, nil
}

// UpdateRecruiterProfile applies a partial update to the recruiter profile of userID.
func (s *userService) UpdateRecruiterProfile(ctx context.Context, actor Actor, userID uuid.UUID, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error) {
	if err := s.checkEditable(ctx, "UpdateRecruiterProfile", actor, userID); err != nil {
		return nil, err
	}
	profile, err := s.profiles.UpdateRecruiter(ctx, userID, req)
	if err != nil {
		return nil, mapRepoError(err, "recruiter profile not found")
	}
	return profile, nil
}

// ListUsers returns the flattened admin listing, newest account first.
func (s *userService) ListUsers(ctx context.Context) ([]models.UserListing, error) {
	users, err := s.users.ListWithProfiles(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

// ApproveRecruiter marks the recruiter approved. Repeating it is harmless.
func (s *userService) ApproveRecruiter(ctx context.Context, actor Actor, recruiterID uuid.UUID) (*models.RecruiterProfile, error) {
	profile, err := s.profiles.ApproveRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, mapRepoError(err, "recruiter profile not found")
	}

	log.Printf("ApproveRecruiter: recruiter %s approved by %s", recruiterID, actor.ID)
	publish(ctx, s.publisher, events.TopicRecruiterApproved, events.RecruiterApproved{
		RecruiterID: recruiterID,
		ApprovedBy:  actor.ID,
		OccurredAt:  time.Now().UTC(),
	})
	return profile, nil
}

// BlockUser sets the blocked flag. There is no unblock; repeating it is harmless.
func (s *userService) BlockUser(ctx context.Context, actor Actor, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.Block(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "user not found")
	}

	log.Printf("BlockUser: user %s blocked by %s", userID, actor.ID)
	publish(ctx, s.publisher, events.TopicUserBlocked, events.UserBlocked{
		UserID:     userID,
		BlockedBy:  actor.ID,
		OccurredAt: time.Now().UTC(),
	})
	return user, nil
}
