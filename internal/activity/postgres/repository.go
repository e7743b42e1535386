// Package postgres provides pgx-backed persistence for activities.
package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saatviknagpal/fitness-app/internal/activity/domain"
)

// Repository provides Postgres-backed persistence for activities.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create persists the activity. The metrics map is stored as JSONB.
func (r *Repository) Create(ctx context.Context, activity domain.Activity) error {
	metrics, err := json.Marshal(activity.Metrics)
	if err != nil {
		return err
	}

	const stmt = `INSERT INTO activities (activity_id, user_id, activity_type, duration_min, calories_burned, started_at, metrics, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	_, err = r.pool.Exec(ctx, stmt,
		activity.ID,
		activity.UserID,
		string(activity.ActivityType),
		activity.DurationMin,
		activity.CaloriesBurned,
		activity.StartedAt,
		metrics,
		activity.CreatedAt,
		activity.UpdatedAt,
	)
	return err
}

// Get retrieves an activity by id. A missing row yields (nil, nil).
func (r *Repository) Get(ctx context.Context, activityID string) (*domain.Activity, error) {
	const query = `SELECT activity_id, user_id, activity_type, duration_min, calories_burned, started_at, metrics, created_at, updated_at
        FROM activities WHERE activity_id=$1`

	row := r.pool.QueryRow(ctx, query, activityID)
	activity, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return activity, nil
}

// ListByUser returns all activities for a user, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Activity, error) {
	const query = `SELECT activity_id, user_id, activity_type, duration_min, calories_burned, started_at, metrics, created_at, updated_at
        FROM activities WHERE user_id=$1 ORDER BY started_at DESC, activity_id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *activity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var (
		activity domain.Activity
		rawType  string
		metrics  []byte
	)
	if err := row.Scan(&activity.ID, &activity.UserID, &rawType, &activity.DurationMin, &activity.CaloriesBurned, &activity.StartedAt, &metrics, &activity.CreatedAt, &activity.UpdatedAt); err != nil {
		return nil, err
	}
	activity.ActivityType = domain.ActivityType(rawType)
	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &activity.Metrics); err != nil {
			return nil, err
		}
	}
	return &activity, nil
}
