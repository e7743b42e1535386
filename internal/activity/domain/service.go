// Package domain defines the business logic for the activity service.
package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidUser indicates the user id did not resolve against the user service.
	ErrInvalidUser = errors.New("invalid user id")
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
)

// PublishStatus reports what happened to the activity event after the write.
type PublishStatus string

const (
	// PublishSent means the event reached the broker.
	PublishSent PublishStatus = "published"
	// PublishFailed means the write succeeded but the event was lost.
	PublishFailed PublishStatus = "publish_failed"
)

// Repository captures persistence operations for activities.
type Repository interface {
	Create(ctx context.Context, activity Activity) error
	Get(ctx context.Context, activityID string) (*Activity, error)
	ListByUser(ctx context.Context, userID string) ([]Activity, error)
}

// UserValidator checks a user id against the user service.
type UserValidator interface {
	Validate(ctx context.Context, userID string) (bool, error)
}

// Publisher delivers the persisted activity to the async pipeline.
type Publisher interface {
	Publish(ctx context.Context, activity Activity) error
}

// Service orchestrates activity workflows.
type Service struct {
	repo      Repository
	users     UserValidator
	publisher Publisher
	logger    *log.Logger
}

// NewService constructs a Service.
func NewService(repo Repository, users UserValidator, publisher Publisher) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		publisher: publisher,
		logger:    log.New(log.Writer(), "[activity] ", log.LstdFlags),
	}
}

// TrackInput captures the payload from the API layer.
type TrackInput struct {
	UserID         string
	ActivityType   ActivityType
	DurationMin    int
	CaloriesBurned int
	StartedAt      time.Time
	Metrics        map[string]any
}

// Track validates the user, persists the activity, then publishes it to the
// async pipeline. A publish failure is reported in the status but never rolls
// back the write or fails the call.
func (s *Service) Track(ctx context.Context, input TrackInput) (*Activity, PublishStatus, error) {
	valid, err := s.users.Validate(ctx, input.UserID)
	if err != nil {
		return nil, "", err
	}
	if !valid {
		return nil, "", ErrInvalidUser
	}

	now := time.Now().UTC()
	activity := Activity{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		ActivityType:   input.ActivityType,
		DurationMin:    input.DurationMin,
		CaloriesBurned: input.CaloriesBurned,
		StartedAt:      input.StartedAt.UTC(),
		Metrics:        input.Metrics,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, "", err
	}

	status := PublishSent
	if err := s.publisher.Publish(ctx, activity); err != nil {
		s.logger.Printf("publish failed (activity_id=%s): %v", activity.ID, err)
		status = PublishFailed
	}

	return &activity, status, nil
}

// GetByID fetches one activity.
func (s *Service) GetByID(ctx context.Context, activityID string) (*Activity, error) {
	activity, err := s.repo.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// ListByUser fetches all activities for a user.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Activity, error) {
	return s.repo.ListByUser(ctx, userID)
}
