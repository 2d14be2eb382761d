package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/service"
	"github.com/leadscout/outreach-dashboard/internal/views"
)

// ExplorerServiceInterface defines the explorer service methods
type ExplorerServiceInterface interface {
	List(ctx context.Context) []domain.Business
	Search(ctx context.Context, query string) []domain.Business
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	Select(ctx context.Context, id string) error
	MapCenter(ctx context.Context) domain.Location
	FocusBusiness(ctx context.Context) *domain.Business
	UpdateSearchQuery(ctx context.Context, query string)
	SetRadius(ctx context.Context, radiusKm int) error
	ToggleAutoDiscover(ctx context.Context) bool
	AnalyzeArea(ctx context.Context)
}

// TrackingServiceInterface defines the tracking service methods
type TrackingServiceInterface interface {
	Table(ctx context.Context) []domain.Business
	Scoreboard(ctx context.Context) views.Scoreboard
	Feed(ctx context.Context, limit int) []views.FeedEntry
	HeadsUp(ctx context.Context) views.HeadsUp
	Events(ctx context.Context, businessID string) ([]domain.EmailEvent, error)
	Advance(ctx context.Context, businessID string) (*domain.Business, error)
	UpdateStatus(ctx context.Context, businessID string, status domain.BusinessStatus) (*domain.Business, error)
}

// BusinessHandler handles business exploration and tracking requests
type BusinessHandler struct {
	explorer ExplorerServiceInterface
	tracking TrackingServiceInterface
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(explorer ExplorerServiceInterface, tracking TrackingServiceInterface) *BusinessHandler {
	return &BusinessHandler{
		explorer: explorer,
		tracking: tracking,
	}
}

// List handles GET /api/v1/businesses. A ?q= parameter filters this
// response only; the stored search filter is changed via PUT /search.
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	var businesses []domain.Business
	switch {
	case r.URL.Query().Has("q"):
		businesses = h.explorer.Search(r.Context(), r.URL.Query().Get("q"))
	case r.URL.Query().Get("sort") == "funnel":
		businesses = h.tracking.Table(r.Context())
	default:
		businesses = h.explorer.List(r.Context())
	}

	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"data":  businesses,
		"total": len(businesses),
	})
}

// GetByID handles GET /api/v1/businesses/{id}
func (h *BusinessHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	biz, err := h.explorer.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			RenderError(w, http.StatusNotFound, "Business not found")
			return
		}
		RenderError(w, http.StatusInternalServerError, "Failed to get business")
		return
	}

	RenderJSON(w, http.StatusOK, biz)
}

// Select handles POST /api/v1/businesses/{id}/select
func (h *BusinessHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.explorer.Select(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			RenderError(w, http.StatusNotFound, "Business not found")
			return
		}
		RenderError(w, http.StatusInternalServerError, "Failed to select business")
		return
	}

	RenderJSON(w, http.StatusOK, map[string]string{"selected": id})
}

// Deselect handles DELETE /api/v1/businesses/selection
func (h *BusinessHandler) Deselect(w http.ResponseWriter, r *http.Request) {
	_ = h.explorer.Select(r.Context(), "")
	w.WriteHeader(http.StatusNoContent)
}

// Advance handles POST /api/v1/businesses/{id}/advance
func (h *BusinessHandler) Advance(w http.ResponseWriter, r *http.Request) {
	biz, err := h.tracking.Advance(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			RenderError(w, http.StatusNotFound, "Business not found")
			return
		}
		RenderError(w, http.StatusInternalServerError, "Failed to advance business")
		return
	}

	RenderJSON(w, http.StatusOK, biz)
}

// UpdateStatus handles PATCH /api/v1/businesses/{id}/status
func (h *BusinessHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.BusinessStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	biz, err := h.tracking.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBusinessNotFound):
			RenderError(w, http.StatusNotFound, "Business not found")
		case errors.Is(err, service.ErrInvalidStatus):
			RenderError(w, http.StatusBadRequest, "Invalid status")
		default:
			RenderError(w, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	RenderJSON(w, http.StatusOK, biz)
}

// Events handles GET /api/v1/businesses/{id}/events
func (h *BusinessHandler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := h.tracking.Events(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrBusinessNotFound) {
			RenderError(w, http.StatusNotFound, "Business not found")
			return
		}
		RenderError(w, http.StatusInternalServerError, "Failed to get events")
		return
	}

	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"data":  events,
		"total": len(events),
	})
}

// MapCenter handles GET /api/v1/map/center
func (h *BusinessHandler) MapCenter(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"center": h.explorer.MapCenter(r.Context()),
		"focus":  h.explorer.FocusBusiness(r.Context()),
	})
}

// UpdateSearch handles PUT /api/v1/search
func (h *BusinessHandler) UpdateSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.explorer.UpdateSearchQuery(r.Context(), req.Query)

	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"data": h.explorer.List(r.Context()),
	})
}

// SetRadius handles PUT /api/v1/search/radius
func (h *BusinessHandler) SetRadius(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RadiusKm int `json:"radius_km"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.explorer.SetRadius(r.Context(), req.RadiusKm); err != nil {
		RenderError(w, http.StatusBadRequest, "Radius must be a positive number of kilometers")
		return
	}

	RenderJSON(w, http.StatusOK, map[string]int{"radius_km": req.RadiusKm})
}

// ToggleAutoDiscover handles POST /api/v1/search/auto-discover
func (h *BusinessHandler) ToggleAutoDiscover(w http.ResponseWriter, r *http.Request) {
	enabled := h.explorer.ToggleAutoDiscover(r.Context())

	log.Printf("[BusinessHandler] auto-discover set to %s", strconv.FormatBool(enabled))

	RenderJSON(w, http.StatusOK, map[string]bool{"auto_discover": enabled})
}

// Analyze handles POST /api/v1/analyze
func (h *BusinessHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	h.explorer.AnalyzeArea(r.Context())

	RenderJSON(w, http.StatusAccepted, map[string]bool{"analyzing": true})
}
