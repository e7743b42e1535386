// Package consumer pulls activity events from Kafka and drives recommendation generation.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/saatviknagpal/fitness-app/internal/platform/events"
)

// Reader exposes the minimal kafka.Reader interface needed by the processor.
type Reader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

// Handler receives decoded activity events.
type Handler interface {
	Handle(context.Context, events.ActivityRecorded) error
}

// Option configures optional behaviour for the Processor.
type Option func(*Processor)

// WithLogger overrides the logger used to report errors.
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithRetryBackoff overrides the wait between handler retries.
func WithRetryBackoff(backoff time.Duration) Option {
	return func(p *Processor) {
		p.retryBackoff = backoff
	}
}

// Processor pulls one message at a time, decodes it, and dispatches to the
// Handler. Offsets are committed only after the handler succeeds; a failed
// message is retried in place, never fetched past, because a group commit
// acknowledges every lower offset on the partition.
type Processor struct {
	reader       Reader
	handler      Handler
	logger       *log.Logger
	retryBackoff time.Duration
}

// NewProcessor constructs a Processor with the provided reader and handler.
func NewProcessor(reader Reader, handler Handler, opts ...Option) *Processor {
	p := &Processor{
		reader:       reader,
		handler:      handler,
		logger:       log.New(log.Writer(), "[consumer] ", log.LstdFlags|log.Lshortfile),
		retryBackoff: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run starts a blocking loop that processes messages until the context is cancelled.
func (p *Processor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := p.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			p.logger.Printf("fetch error: %v", err)
			continue
		}

		var event events.ActivityRecorded
		if decodeErr := json.Unmarshal(msg.Value, &event); decodeErr != nil || event.ActivityID == "" {
			p.logger.Printf("decode error (topic=%s, partition=%d, offset=%d): %v", msg.Topic, msg.Partition, msg.Offset, decodeErr)
			recordDecodeError(msg.Topic)
			// Commit malformed messages to avoid poison-pill loops.
			if commitErr := p.reader.CommitMessages(ctx, msg); commitErr != nil {
				p.logger.Printf("commit error after decode failure: %v", commitErr)
			}
			continue
		}

		if err := p.handleWithRetry(ctx, msg, event); err != nil {
			return err
		}

		if commitErr := p.reader.CommitMessages(ctx, msg); commitErr != nil {
			p.logger.Printf("commit error: %v", commitErr)
		} else {
			recordProcessed(msg)
		}
	}
}

// handleWithRetry blocks on the current message until the handler succeeds or
// the context ends. Advancing past an unhandled message would let the next
// commit acknowledge it.
func (p *Processor) handleWithRetry(ctx context.Context, msg kafka.Message, event events.ActivityRecorded) error {
	for {
		err := p.handler.Handle(ctx, event)
		if err == nil {
			return nil
		}
		p.logger.Printf("handler error (activity_id=%s, offset=%d), retrying: %v", event.ActivityID, msg.Offset, err)
		recordHandlerError(msg.Topic)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.retryBackoff):
		}
	}
}
