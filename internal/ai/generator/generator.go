// Package generator turns activity events into persisted recommendations.
package generator

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/saatviknagpal/fitness-app/internal/ai/domain"
	"github.com/saatviknagpal/fitness-app/internal/platform/events"
)

// AnswerProvider abstracts the external text-generation endpoint.
type AnswerProvider interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

// Generator produces exactly one recommendation per activity event. A parse
// failure yields the fallback recommendation; only transport failures
// propagate.
type Generator struct {
	provider AnswerProvider
	logger   *log.Logger
}

// New constructs a Generator.
func New(provider AnswerProvider) *Generator {
	return &Generator{
		provider: provider,
		logger:   log.New(log.Writer(), "[generator] ", log.LstdFlags),
	}
}

// Generate builds the prompt, calls the provider, and assembles the
// recommendation. The returned error is always a transport failure; parse
// failures are recovered locally.
func (g *Generator) Generate(ctx context.Context, event events.ActivityRecorded) (*domain.Recommendation, error) {
	prompt := BuildPrompt(event)
	reply, err := g.provider.GenerateAnswer(ctx, prompt)
	if err != nil {
		return nil, err
	}

	content, parseErr := ParseReply(reply)
	if parseErr != nil {
		var malformed *MalformedReplyError
		if errors.As(parseErr, &malformed) {
			g.logger.Printf("falling back to default recommendation (activity_id=%s): %v", event.ActivityID, malformed)
		}
		recordFallback()
		content = FallbackContent()
	}

	rec := assemble(event, content)
	return &rec, nil
}

// assemble binds parsed or fallback content to the event's identity fields.
func assemble(event events.ActivityRecorded, content ReplyContent) domain.Recommendation {
	return domain.Recommendation{
		ActivityID:          event.ActivityID,
		UserID:              event.UserID,
		ActivityType:        event.ActivityType,
		Recommendation:      content.Summary,
		ImprovementAreas:    content.ImprovementAreas,
		SuggestedActivities: content.SuggestedActivities,
		Safety:              content.Safety,
		CreatedAt:           time.Now().UTC(),
	}
}
