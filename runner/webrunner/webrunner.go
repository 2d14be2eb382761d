// Package webrunner serves the dashboard API: it assembles the
// in-memory store, the projection layer, the services, and the HTTP
// router, then runs the server until the context is cancelled.
package webrunner

import (
	"context"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leadscout/outreach-dashboard/internal/api"
	"github.com/leadscout/outreach-dashboard/internal/api/handlers"
	"github.com/leadscout/outreach-dashboard/internal/sequencer"
	"github.com/leadscout/outreach-dashboard/internal/service"
	"github.com/leadscout/outreach-dashboard/internal/store"
	"github.com/leadscout/outreach-dashboard/internal/views"
	"github.com/leadscout/outreach-dashboard/runner"
	"github.com/leadscout/outreach-dashboard/tlmt"
)

// WebRunner runs the dashboard API server
type WebRunner struct {
	cfg   *runner.Config
	srv   *http.Server
	store *store.Store
	seq   *sequencer.Sequencer
}

// New creates a new WebRunner
func New(cfg *runner.Config) (runner.Runner, error) {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	st := store.New()
	v := views.New(st)

	seq := sequencer.New(st,
		sequencer.WithInterval(cfg.TickInterval),
		sequencer.WithIncrement(cfg.TickIncrement),
	)
	scanner := sequencer.NewScanner(st,
		sequencer.WithScanDuration(cfg.ScanDuration),
	)

	// Services
	explorerSvc := service.NewExplorerService(st, v, scanner)
	trackingSvc := service.NewTrackingService(st, v)
	outreachSvc := service.NewOutreachService(st, v, seq)
	templateSvc := service.NewTemplateService(st, v)
	settingsSvc := service.NewSettingsService(st, v)
	dashboardSvc := service.NewDashboardService(v)

	// Handlers
	businessHandler := handlers.NewBusinessHandler(explorerSvc, trackingSvc)
	sendHandler := handlers.NewSendHandler(outreachSvc)
	templateHandler := handlers.NewTemplateHandler(templateSvc)
	settingsHandler := handlers.NewSettingsHandler(settingsSvc)
	statsHandler := handlers.NewStatsHandler(dashboardSvc, trackingSvc)
	exportHandler := handlers.NewExportHandler(v)

	// Router
	router := api.NewRouter(
		businessHandler,
		sendHandler,
		templateHandler,
		settingsHandler,
		statsHandler,
		exportHandler,
	)
	handler := router.Setup(cfg.APIToken, cfg.Debug)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return &WebRunner{
		cfg:   cfg,
		srv:   srv,
		store: st,
		seq:   seq,
	}, nil
}

// Run starts the dashboard server
func (w *WebRunner) Run(ctx context.Context) error {
	_ = runner.Telemetry().Send(ctx, tlmt.NewEvent("webrunner.Run", nil))

	egroup, ctx := errgroup.WithContext(ctx)

	egroup.Go(func() error {
		return w.startServer(ctx)
	})

	return egroup.Wait()
}

// Close waits for any in-flight send simulation to wind down
func (w *WebRunner) Close(_ context.Context) error {
	w.seq.Pause()
	w.seq.Wait()
	return nil
}

func (w *WebRunner) startServer(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := w.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
	}()

	log.Printf("dashboard API server starting on http://localhost%s", w.cfg.Addr)
	log.Printf("serving seeded demo data, nothing is persisted")
	log.Printf("API endpoints available at /api/v1/")

	err := w.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
