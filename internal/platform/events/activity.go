// Package events defines the cross-service event payloads carried on Kafka.
package events

import "time"

// ActivityRecorded is the full serialized activity placed on the queue for
// asynchronous AI processing.
type ActivityRecorded struct {
	ActivityID     string         `json:"activity_id"`
	UserID         string         `json:"user_id"`
	ActivityType   string         `json:"activity_type"`
	DurationMin    int            `json:"duration_min"`
	CaloriesBurned int            `json:"calories_burned"`
	StartedAt      time.Time      `json:"started_at"`
	Metrics        map[string]any `json:"metrics,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
