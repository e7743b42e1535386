// Package publish delivers activity events to Kafka.
package publish

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/saatviknagpal/fitness-app/internal/activity/domain"
	"github.com/saatviknagpal/fitness-app/internal/platform/events"
)

// Config holds the immutable routing configuration for the publisher.
type Config struct {
	Brokers []string
	Topic   string
}

// KafkaPublisher serializes activities onto the configured topic.
type KafkaPublisher struct {
	topic  string
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher with a dedicated writer.
func NewKafkaPublisher(cfg Config) *KafkaPublisher {
	return &KafkaPublisher{
		topic: cfg.Topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

// newActivityRecorded maps the persisted record onto the wire payload. Every
// field the consumer reads comes through here.
func newActivityRecorded(activity domain.Activity) events.ActivityRecorded {
	return events.ActivityRecorded{
		ActivityID:     activity.ID,
		UserID:         activity.UserID,
		ActivityType:   string(activity.ActivityType),
		DurationMin:    activity.DurationMin,
		CaloriesBurned: activity.CaloriesBurned,
		StartedAt:      activity.StartedAt,
		Metrics:        activity.Metrics,
		CreatedAt:      activity.CreatedAt,
		UpdatedAt:      activity.UpdatedAt,
	}
}

// Publish writes the full serialized activity record keyed by user id.
func (p *KafkaPublisher) Publish(ctx context.Context, activity domain.Activity) error {
	body, err := json.Marshal(newActivityRecorded(activity))
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(activity.UserID),
		Value: body,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("activity.recorded")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		recordPublishFailed(p.topic)
		return err
	}
	recordPublished(p.topic)
	return nil
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
