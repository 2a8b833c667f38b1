package events

//go:generate mockgen -destination=../mocks/mock_events.go -package=mocks careerconnect/internal/events Publisher

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Topics published by the services.
const (
	TopicApplicationSubmitted     = "careerconnect.application.submitted"
	TopicApplicationStatusChanged = "careerconnect.application.status_changed"
	TopicRecruiterApproved        = "careerconnect.recruiter.approved"
	TopicUserBlocked              = "careerconnect.user.blocked"
)

// AllTopics lists every topic the notification worker consumes.
var AllTopics = []string{
	TopicApplicationSubmitted,
	TopicApplicationStatusChanged,
	TopicRecruiterApproved,
	TopicUserBlocked,
}

// Publisher sends a domain event. Implementations serialise event as JSON.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

type ApplicationSubmitted struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	JobID         uuid.UUID `json:"jobId"`
	StudentID     uuid.UUID `json:"studentId"`
	RecruiterID   uuid.UUID `json:"recruiterId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type ApplicationStatusChanged struct {
	ApplicationID  uuid.UUID `json:"applicationId"`
	JobID          uuid.UUID `json:"jobId"`
	StudentID      uuid.UUID `json:"studentId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	ChangedBy      uuid.UUID `json:"changedBy"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type RecruiterApproved struct {
	RecruiterID uuid.UUID `json:"recruiterId"`
	ApprovedBy  uuid.UUID `json:"approvedBy"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type UserBlocked struct {
	UserID     uuid.UUID `json:"userId"`
	BlockedBy  uuid.UUID `json:"blockedBy"`
	OccurredAt time.Time `json:"occurredAt"`
}
