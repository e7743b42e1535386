//go:build integration

package postgres

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/saatviknagpal/fitness-app/internal/activity/domain"
)

func TestRepositoryStoresMetricsAndOrdersListing(t *testing.T) {
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("fitness"),
		postgrescontainer.WithUsername("fitness"),
		postgrescontainer.WithPassword("fitness"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, waitForDatabase(ctx, connStr))
	runMigrations(t, ctx, connStr)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	repo := NewRepository(pool)

	userID := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Microsecond)

	older := domain.Activity{
		ID:             uuid.NewString(),
		UserID:         userID,
		ActivityType:   domain.TypeRunning,
		DurationMin:    30,
		CaloriesBurned: 320,
		StartedAt:      now.Add(-2 * time.Hour),
		Metrics:        map[string]any{"distance_km": 5.2, "avg_heart_rate": float64(148)},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	newer := domain.Activity{
		ID:           uuid.NewString(),
		UserID:       userID,
		ActivityType: domain.TypeYoga,
		DurationMin:  45,
		StartedAt:    now.Add(-time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	stored, err := repo.Get(ctx, older.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, older.Metrics, stored.Metrics)
	require.Equal(t, domain.TypeRunning, stored.ActivityType)

	listed, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, newer.ID, listed[0].ID, "listing must be newest first")
	require.Equal(t, older.ID, listed[1].ID)

	other, err := repo.ListByUser(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Empty(t, other)

	missing, err := repo.Get(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, missing)
}

func runMigrations(t *testing.T, ctx context.Context, connStr string) {
	files := []string{
		"../../../db/postgres/migrations/0001_init.up.sql",
	}

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	defer pool.Close()

	for _, rel := range files {
		path := resolvePath(t, rel)
		contents, readErr := os.ReadFile(path)
		require.NoError(t, readErr)

		_, execErr := pool.Exec(ctx, string(contents))
		require.NoError(t, execErr)
	}
}

func resolvePath(t *testing.T, rel string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), rel)
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}
