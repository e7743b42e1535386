package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	created []Activity
	stored  map[string]Activity
	byUser  map[string][]Activity
	err     error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		stored: make(map[string]Activity),
		byUser: make(map[string][]Activity),
	}
}

func (m *mockRepo) Create(_ context.Context, activity Activity) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, activity)
	m.stored[activity.ID] = activity
	m.byUser[activity.UserID] = append(m.byUser[activity.UserID], activity)
	return nil
}

func (m *mockRepo) Get(_ context.Context, activityID string) (*Activity, error) {
	activity, ok := m.stored[activityID]
	if !ok {
		return nil, nil
	}
	return &activity, nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID string) ([]Activity, error) {
	return m.byUser[userID], nil
}

type mockValidator struct {
	valid bool
	err   error
	calls int
}

func (m *mockValidator) Validate(context.Context, string) (bool, error) {
	m.calls++
	return m.valid, m.err
}

type mockPublisher struct {
	published []Activity
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, activity Activity) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, activity)
	return nil
}

func sampleInput() TrackInput {
	return TrackInput{
		UserID:         "user-1",
		ActivityType:   TypeRunning,
		DurationMin:    30,
		CaloriesBurned: 300,
		StartedAt:      time.Date(2026, time.March, 4, 7, 0, 0, 0, time.UTC),
		Metrics:        map[string]any{"distance_km": 5.0},
	}
}

func TestTrackPersistsAndPublishes(t *testing.T) {
	repo := newMockRepo()
	publisher := &mockPublisher{}
	service := NewService(repo, &mockValidator{valid: true}, publisher)

	activity, status, err := service.Track(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Equal(t, PublishSent, status)

	require.NotEmpty(t, activity.ID)
	require.Equal(t, "user-1", activity.UserID)
	require.Equal(t, TypeRunning, activity.ActivityType)
	require.Equal(t, 30, activity.DurationMin)
	require.Equal(t, 300, activity.CaloriesBurned)
	require.False(t, activity.CreatedAt.IsZero())
	require.Equal(t, activity.CreatedAt, activity.UpdatedAt)

	require.Len(t, repo.created, 1)
	require.Len(t, publisher.published, 1)
	require.Equal(t, activity.ID, publisher.published[0].ID)
	require.Equal(t, activity.Metrics, publisher.published[0].Metrics)
}

func TestTrackRejectsUnknownUser(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo, &mockValidator{valid: false}, &mockPublisher{})

	activity, _, err := service.Track(context.Background(), sampleInput())
	require.ErrorIs(t, err, ErrInvalidUser)
	require.Nil(t, activity)
	require.Empty(t, repo.created)
}

func TestTrackSurvivesPublishFailure(t *testing.T) {
	repo := newMockRepo()
	publisher := &mockPublisher{err: errors.New("broker down")}
	service := NewService(repo, &mockValidator{valid: true}, publisher)

	activity, status, err := service.Track(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Equal(t, PublishFailed, status)
	require.NotNil(t, activity)
	require.Len(t, repo.created, 1, "write must not roll back on publish failure")
}

func TestTrackPropagatesValidatorError(t *testing.T) {
	repo := newMockRepo()
	service := NewService(repo, &mockValidator{err: errors.New("user service unreachable")}, &mockPublisher{})

	_, _, err := service.Track(context.Background(), sampleInput())
	require.Error(t, err)
	require.Empty(t, repo.created)
}

func TestGetByIDNotFound(t *testing.T) {
	service := NewService(newMockRepo(), &mockValidator{valid: true}, &mockPublisher{})

	_, err := service.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestParseActivityType(t *testing.T) {
	parsed, ok := ParseActivityType("running")
	require.True(t, ok)
	require.Equal(t, TypeRunning, parsed)

	parsed, ok = ParseActivityType(" Strength_Training ")
	require.True(t, ok)
	require.Equal(t, TypeStrengthTraining, parsed)

	_, ok = ParseActivityType("juggling")
	require.False(t, ok)
}
