package api

import (
	"net/http"

	"github.com/leadscout/outreach-dashboard/internal/api/handlers"
)

// Router sets up all API routes
type Router struct {
	mux        *http.ServeMux
	businesses *handlers.BusinessHandler
	send       *handlers.SendHandler
	templates  *handlers.TemplateHandler
	settings   *handlers.SettingsHandler
	stats      *handlers.StatsHandler
	export     *handlers.ExportHandler
}

// NewRouter creates a new Router
func NewRouter(
	businesses *handlers.BusinessHandler,
	send *handlers.SendHandler,
	templates *handlers.TemplateHandler,
	settings *handlers.SettingsHandler,
	stats *handlers.StatsHandler,
	export *handlers.ExportHandler,
) *Router {
	return &Router{
		mux:        http.NewServeMux(),
		businesses: businesses,
		send:       send,
		templates:  templates,
		settings:   settings,
		stats:      stats,
		export:     export,
	}
}

// Setup configures all routes. Per-request logging is only wired up in
// debug mode; the other middlewares always apply.
func (r *Router) Setup(token string, debug bool) http.Handler {
	// Business endpoints
	r.mux.HandleFunc("GET /api/v1/businesses", r.businesses.List)
	r.mux.HandleFunc("GET /api/v1/businesses/{id}", r.businesses.GetByID)
	r.mux.HandleFunc("POST /api/v1/businesses/{id}/select", r.businesses.Select)
	r.mux.HandleFunc("DELETE /api/v1/businesses/selection", r.businesses.Deselect)
	r.mux.HandleFunc("POST /api/v1/businesses/{id}/advance", r.businesses.Advance)
	r.mux.HandleFunc("PATCH /api/v1/businesses/{id}/status", r.businesses.UpdateStatus)
	r.mux.HandleFunc("GET /api/v1/businesses/{id}/events", r.businesses.Events)
	r.mux.HandleFunc("POST /api/v1/businesses/{id}/send", r.send.OpenConfirmation)

	// Map and discovery endpoints
	r.mux.HandleFunc("GET /api/v1/map/center", r.businesses.MapCenter)
	r.mux.HandleFunc("PUT /api/v1/search", r.businesses.UpdateSearch)
	r.mux.HandleFunc("PUT /api/v1/search/radius", r.businesses.SetRadius)
	r.mux.HandleFunc("POST /api/v1/search/auto-discover", r.businesses.ToggleAutoDiscover)
	r.mux.HandleFunc("POST /api/v1/analyze", r.businesses.Analyze)

	// Send workflow endpoints
	r.mux.HandleFunc("POST /api/v1/send/confirm", r.send.Confirm)
	r.mux.HandleFunc("POST /api/v1/send/cancel", r.send.Cancel)
	r.mux.HandleFunc("GET /api/v1/send/progress", r.send.Progress)
	r.mux.HandleFunc("POST /api/v1/send/pause", r.send.Pause)
	r.mux.HandleFunc("POST /api/v1/send/resume", r.send.Resume)

	// Template endpoints
	r.mux.HandleFunc("GET /api/v1/templates", r.templates.List)
	r.mux.HandleFunc("GET /api/v1/templates/preview", r.templates.Preview)
	r.mux.HandleFunc("GET /api/v1/templates/{id}", r.templates.GetVariant)
	r.mux.HandleFunc("PUT /api/v1/templates/{id}", r.templates.UpdateContent)
	r.mux.HandleFunc("POST /api/v1/templates/{id}/activate", r.templates.Activate)

	// Settings endpoints
	r.mux.HandleFunc("GET /api/v1/settings", r.settings.GetSettings)
	r.mux.HandleFunc("PATCH /api/v1/settings/credentials", r.settings.UpdateCredentials)
	r.mux.HandleFunc("PATCH /api/v1/settings/email", r.settings.UpdateEmailSettings)
	r.mux.HandleFunc("PATCH /api/v1/stats", r.settings.UpdateStats)
	r.mux.HandleFunc("GET /api/v1/error", r.settings.GetError)
	r.mux.HandleFunc("PUT /api/v1/error", r.settings.SetError)
	r.mux.HandleFunc("DELETE /api/v1/error", r.settings.ClearError)

	// Aggregate endpoints
	r.mux.HandleFunc("GET /api/v1/overview", r.stats.GetOverview)
	r.mux.HandleFunc("GET /api/v1/scoreboard", r.stats.GetScoreboard)
	r.mux.HandleFunc("GET /api/v1/events", r.stats.GetFeed)
	r.mux.HandleFunc("GET /api/v1/headsup", r.stats.GetHeadsUp)

	// Export endpoint
	r.mux.HandleFunc("GET /api/v1/export", r.export.Download)

	// Apply middleware
	middlewares := []func(http.Handler) http.Handler{Recovery}
	if debug {
		middlewares = append(middlewares, Logger)
	}
	middlewares = append(middlewares, CORS, SecurityHeaders, Auth(token))

	return Chain(r.mux, middlewares...)
}
