package handlers

import (
	"log"
	"net/http"

	"github.com/leadscout/outreach-dashboard/internal/export"
	"github.com/leadscout/outreach-dashboard/internal/views"
)

// ExportHandler handles data download requests
type ExportHandler struct {
	views *views.Views
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(v *views.Views) *ExportHandler {
	return &ExportHandler{views: v}
}

// Download handles GET /api/v1/export
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		RenderError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap := h.views.Snapshot()
	columns := export.ParseColumns(r.URL.Query().Get("columns"))

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+format.Filename())

	switch format {
	case export.FormatCSV:
		err = export.WriteCSV(w, snap.Businesses, columns)
	case export.FormatXLSX:
		err = export.WriteXLSX(w, snap.Businesses, snap.EmailEvents, columns)
	default:
		err = export.WriteJSON(w, snap.Businesses, snap.EmailEvents)
	}

	if err != nil {
		log.Printf("[ExportHandler] download failed: %v", err)
	}
}
