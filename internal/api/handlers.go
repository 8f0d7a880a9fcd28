// Package api exposes HTTP handlers for the exercise log.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"example.com/exerciselog/internal/calorie"
	"example.com/exerciselog/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/activity-types", h.activityTypes).Methods(http.MethodGet)
	v1.HandleFunc("/estimate", h.estimate).Methods(http.MethodGet)
	v1.HandleFunc("/activities", h.createActivity).Methods(http.MethodPost)
	v1.HandleFunc("/progress", h.progress).Methods(http.MethodGet)
	v1.HandleFunc("/dashboard", h.dashboard).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activityTypes(w http.ResponseWriter, r *http.Request) {
	types := h.service.ActivityTypes()
	items := make([]ActivityTypeView, 0, len(types))
	for _, t := range types {
		items = append(items, ActivityTypeView{ActivityType: t.ActivityType.String(), Coefficient: t.Coefficient})
	}
	writeJSON(w, http.StatusOK, ActivityTypesResponse{Items: items})
}

// estimate serves the live preview. Query values are coerced the same way
// the form does: bad input becomes 0 and a missing weight takes the default.
func (h *Handler) estimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	est := h.service.Estimate(domain.EstimateInput{
		DurationMinutes: calorie.ParseNumber(q.Get("duration_min")),
		ActivityType:    calorie.ParseActivityType(q.Get("activity_type")),
		WeightKg:        calorie.ParseNumber(q.Get("weight_kg")),
	})
	writeJSON(w, http.StatusOK, EstimateResponse{
		ActivityType: est.ActivityType.String(),
		Coefficient:  est.Coefficient,
		Calories:     est.Calories,
	})
}

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	res, err := h.service.LogActivity(r.Context(), domain.LogActivityInput{
		ActivityType:    calorie.ParseActivityType(req.ActivityType),
		DurationMinutes: *req.DurationMin,
		WeightKg:        req.WeightKg,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDuration) || errors.Is(err, domain.ErrInvalidWeight) {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		log.Errorf("log activity [%s]: %s", req.ActivityType, err)
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	resp := CreateActivityResponse{
		Activity:      toActivityView(res.Record),
		Progress:      toProgressView(res.Progress),
		Today:         toTotalsView(res.Today),
		Notifications: make([]NotificationView, 0, len(res.Notifications)),
	}
	for _, n := range res.Notifications {
		resp.Notifications = append(resp.Notifications, NotificationView{
			Level:          string(n.Level),
			Message:        n.Message,
			DismissAfterMs: n.DismissAfter.Milliseconds(),
		})
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProgressView(h.service.Progress()))
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	dash := h.service.Dashboard()
	writeJSON(w, http.StatusOK, DashboardResponse{
		Today:    toTotalsView(dash.Today),
		Progress: toProgressView(dash.Progress),
	})
}

// CreateActivityRequest is the payload for POST /v1/activities.
type CreateActivityRequest struct {
	ActivityType string   `json:"activity_type"`
	DurationMin  *float64 `json:"duration_min"`
	WeightKg     float64  `json:"weight_kg,omitempty"`
}

// Validate checks the request shape. Value ranges are checked by the domain.
// An empty or unknown activity_type is logged as "other".
func (r CreateActivityRequest) Validate() error {
	if r.DurationMin == nil {
		return errors.New("duration_min is required")
	}
	return nil
}

// ActivityView exposes a logged activity.
type ActivityView struct {
	ActivityID   string    `json:"activity_id"`
	ActivityType string    `json:"activity_type"`
	DurationMin  float64   `json:"duration_min"`
	WeightKg     float64   `json:"weight_kg"`
	Calories     int       `json:"calories"`
	Date         string    `json:"date"`
	LoggedAt     time.Time `json:"logged_at"`
}

// ProgressView describes weekly progress.
type ProgressView struct {
	AccumulatedMinutes float64 `json:"accumulated_minutes"`
	TargetMinutes      float64 `json:"target_minutes"`
	Percentage         float64 `json:"percentage"`
	Label              string  `json:"label"`
	Status             string  `json:"status"`
}

// TotalsView describes the current period totals.
type TotalsView struct {
	Minutes  float64 `json:"minutes"`
	Calories int     `json:"calories"`
}

// NotificationView is a toast for the page to render.
type NotificationView struct {
	Level          string `json:"level"`
	Message        string `json:"message"`
	DismissAfterMs int64  `json:"dismiss_after_ms"`
}

// CreateActivityResponse describes the response body for create.
type CreateActivityResponse struct {
	Activity      ActivityView       `json:"activity"`
	Progress      ProgressView       `json:"progress"`
	Today         TotalsView         `json:"today"`
	Notifications []NotificationView `json:"notifications"`
}

// DashboardResponse packages dashboard totals.
type DashboardResponse struct {
	Today    TotalsView   `json:"today"`
	Progress ProgressView `json:"progress"`
}

// EstimateResponse is the live preview body.
type EstimateResponse struct {
	ActivityType string  `json:"activity_type"`
	Coefficient  float64 `json:"coefficient"`
	Calories     int     `json:"calories"`
}

// ActivityTypeView is one entry of the coefficient table.
type ActivityTypeView struct {
	ActivityType string  `json:"activity_type"`
	Coefficient  float64 `json:"coefficient"`
}

// ActivityTypesResponse lists selectable activity types.
type ActivityTypesResponse struct {
	Items []ActivityTypeView `json:"items"`
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
		log.Errorf("encode response: %s", err)
	}
}

func toActivityView(rec domain.ActivityRecord) ActivityView {
	return ActivityView{
		ActivityID:   rec.ID,
		ActivityType: rec.Type.String(),
		DurationMin:  rec.DurationMinutes,
		WeightKg:     rec.WeightKg,
		Calories:     rec.Calories,
		Date:         rec.Date,
		LoggedAt:     rec.LoggedAt,
	}
}

func toProgressView(p domain.ProgressSnapshot) ProgressView {
	return ProgressView{
		AccumulatedMinutes: p.AccumulatedMinutes,
		TargetMinutes:      p.TargetMinutes,
		Percentage:         p.Percentage,
		Label:              p.Label,
		Status:             string(p.Status),
	}
}

func toTotalsView(t domain.DailyTotals) TotalsView {
	return TotalsView{Minutes: t.Minutes, Calories: t.Calories}
}
