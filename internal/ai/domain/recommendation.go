// Package domain defines the recommendation model produced by the AI worker.
package domain

import (
	"context"
	"time"
)

// Recommendation is the structured output derived from one activity event.
type Recommendation struct {
	ActivityID          string
	UserID              string
	ActivityType        string
	Recommendation      string
	ImprovementAreas    []string
	SuggestedActivities []string
	Safety              []string
	CreatedAt           time.Time
}

// Repository captures persistence operations for recommendations.
type Repository interface {
	// Save persists the recommendation. Saving a second recommendation for
	// the same activity id is a no-op so redelivered events stay idempotent.
	Save(ctx context.Context, rec Recommendation) error
	GetByActivity(ctx context.Context, activityID string) (*Recommendation, error)
}
