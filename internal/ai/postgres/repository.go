// Package postgres provides pgx-backed persistence for recommendations.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saatviknagpal/fitness-app/internal/ai/domain"
)

// Repository provides Postgres-backed persistence for recommendations.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Save persists the recommendation. The activity id carries a unique
// constraint, so a redelivered event leaves the first row in place.
func (r *Repository) Save(ctx context.Context, rec domain.Recommendation) error {
	const stmt = `INSERT INTO recommendations (activity_id, user_id, activity_type, recommendation, improvement_areas, suggested_activities, safety, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (activity_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, stmt,
		rec.ActivityID,
		rec.UserID,
		rec.ActivityType,
		rec.Recommendation,
		rec.ImprovementAreas,
		rec.SuggestedActivities,
		rec.Safety,
		rec.CreatedAt,
	)
	return err
}

// GetByActivity retrieves the recommendation for an activity id.
func (r *Repository) GetByActivity(ctx context.Context, activityID string) (*domain.Recommendation, error) {
	const query = `SELECT activity_id, user_id, activity_type, recommendation, improvement_areas, suggested_activities, safety, created_at
        FROM recommendations WHERE activity_id=$1`

	row := r.pool.QueryRow(ctx, query, activityID)
	var rec domain.Recommendation
	if err := row.Scan(&rec.ActivityID, &rec.UserID, &rec.ActivityType, &rec.Recommendation, &rec.ImprovementAreas, &rec.SuggestedActivities, &rec.Safety, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
