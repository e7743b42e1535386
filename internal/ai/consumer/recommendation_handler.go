package consumer

import (
	"context"
	"log"

	"github.com/saatviknagpal/fitness-app/internal/ai/domain"
	"github.com/saatviknagpal/fitness-app/internal/ai/generator"
	"github.com/saatviknagpal/fitness-app/internal/platform/events"
)

// RecommendationHandler generates and persists one recommendation per
// consumed activity event.
type RecommendationHandler struct {
	generator *generator.Generator
	repo      domain.Repository
	logger    *log.Logger
}

// NewRecommendationHandler constructs the handler.
func NewRecommendationHandler(gen *generator.Generator, repo domain.Repository) *RecommendationHandler {
	return &RecommendationHandler{
		generator: gen,
		repo:      repo,
		logger:    log.New(log.Writer(), "[ai-worker] ", log.LstdFlags),
	}
}

// Handle runs the prompt → call → parse → persist pipeline. A returned error
// leaves the offset uncommitted so the event is redelivered; the Save path is
// idempotent per activity id, so redelivery cannot duplicate rows.
func (h *RecommendationHandler) Handle(ctx context.Context, event events.ActivityRecorded) error {
	h.logger.Printf("received activity for AI processing: %s", event.ActivityID)

	rec, err := h.generator.Generate(ctx, event)
	if err != nil {
		return err
	}

	return h.repo.Save(ctx, *rec)
}
