package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/leadscout/outreach-dashboard/internal/views"
)

// DashboardServiceInterface defines the dashboard service methods
type DashboardServiceInterface interface {
	Overview(ctx context.Context) views.Overview
}

// StatsHandler handles dashboard aggregate requests
type StatsHandler struct {
	dashboard DashboardServiceInterface
	tracking  TrackingServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(dashboard DashboardServiceInterface, tracking TrackingServiceInterface) *StatsHandler {
	return &StatsHandler{
		dashboard: dashboard,
		tracking:  tracking,
	}
}

// defaultFeedLimit caps the event feed when no limit param is given
const defaultFeedLimit = 6

// GetOverview handles GET /api/v1/overview
func (h *StatsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, http.StatusOK, h.dashboard.Overview(r.Context()))
}

// GetScoreboard handles GET /api/v1/scoreboard
func (h *StatsHandler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, http.StatusOK, h.tracking.Scoreboard(r.Context()))
}

// GetFeed handles GET /api/v1/events
func (h *StatsHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	limit := defaultFeedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			RenderError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	feed := h.tracking.Feed(r.Context(), limit)

	RenderJSON(w, http.StatusOK, map[string]interface{}{
		"data":  feed,
		"total": len(feed),
	})
}

// GetHeadsUp handles GET /api/v1/headsup
func (h *StatsHandler) GetHeadsUp(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, http.StatusOK, h.tracking.HeadsUp(r.Context()))
}
