// Package api exposes HTTP handlers for the activity service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/saatviknagpal/fitness-app/internal/activity/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/activities", h.activities)
	mux.HandleFunc("/api/activities/", h.activityByID)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.trackActivity(w, r)
	case http.MethodGet:
		h.listActivities(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) activityByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/activities/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing activity id")
		return
	}

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	activity, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "activity not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toActivityView(*activity, ""))
}

func (h *Handler) trackActivity(w http.ResponseWriter, r *http.Request) {
	var req TrackActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	activityType, err := req.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	activity, status, err := h.service.Track(r.Context(), domain.TrackInput{
		UserID:         req.UserID,
		ActivityType:   activityType,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		StartedAt:      req.StartedAt,
		Metrics:        req.Metrics,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUser) {
			writeError(w, http.StatusBadRequest, "invalid_user", "user id does not resolve to an account")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toActivityView(*activity, status))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing X-User-ID header")
		return
	}

	activities, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	items := make([]ActivityView, 0, len(activities))
	for _, activity := range activities {
		items = append(items, toActivityView(activity, ""))
	}
	writeJSON(w, http.StatusOK, ListActivitiesResponse{Items: items})
}

// TrackActivityRequest is the payload for POST /api/activities.
type TrackActivityRequest struct {
	UserID         string         `json:"user_id"`
	ActivityType   string         `json:"activity_type"`
	DurationMin    int            `json:"duration_min"`
	CaloriesBurned int            `json:"calories_burned"`
	StartedAt      time.Time      `json:"started_at"`
	Metrics        map[string]any `json:"metrics,omitempty"`
}

// Validate ensures request correctness and resolves the activity type.
func (r TrackActivityRequest) Validate() (domain.ActivityType, error) {
	if strings.TrimSpace(r.UserID) == "" {
		return "", errors.New("user_id is required")
	}
	activityType, ok := domain.ParseActivityType(r.ActivityType)
	if !ok {
		return "", errors.New("activity_type is not a known type")
	}
	if r.DurationMin <= 0 {
		return "", errors.New("duration_min must be > 0")
	}
	if r.CaloriesBurned < 0 {
		return "", errors.New("calories_burned must be >= 0")
	}
	if r.StartedAt.IsZero() {
		return "", errors.New("started_at is required")
	}
	return activityType, nil
}

// ActivityView exposes full details about an activity.
type ActivityView struct {
	ActivityID     string         `json:"activity_id"`
	UserID         string         `json:"user_id"`
	ActivityType   string         `json:"activity_type"`
	DurationMin    int            `json:"duration_min"`
	CaloriesBurned int            `json:"calories_burned"`
	StartedAt      time.Time      `json:"started_at"`
	Metrics        map[string]any `json:"metrics,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	EventStatus    string         `json:"event_status,omitempty"`
}

// ListActivitiesResponse packages list results.
type ListActivitiesResponse struct {
	Items []ActivityView `json:"items"`
}

func toActivityView(activity domain.Activity, status domain.PublishStatus) ActivityView {
	return ActivityView{
		ActivityID:     activity.ID,
		UserID:         activity.UserID,
		ActivityType:   string(activity.ActivityType),
		DurationMin:    activity.DurationMin,
		CaloriesBurned: activity.CaloriesBurned,
		StartedAt:      activity.StartedAt,
		Metrics:        activity.Metrics,
		CreatedAt:      activity.CreatedAt,
		UpdatedAt:      activity.UpdatedAt,
		EventStatus:    string(status),
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
