// Package exportrunner writes the seeded dashboard data to a file or
// stdout and exits. Useful for piping the demo dataset into other
// tools.
package exportrunner

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/leadscout/outreach-dashboard/internal/export"
	"github.com/leadscout/outreach-dashboard/internal/store"
	"github.com/leadscout/outreach-dashboard/runner"
	"github.com/leadscout/outreach-dashboard/tlmt"
)

// ExportRunner dumps the seed dataset in the configured format
type ExportRunner struct {
	cfg    *runner.Config
	store  *store.Store
	format export.Format
}

// New creates a new ExportRunner
func New(cfg *runner.Config) (runner.Runner, error) {
	format, err := export.ParseFormat(cfg.ExportFormat)
	if err != nil {
		return nil, err
	}

	return &ExportRunner{
		cfg:    cfg,
		store:  store.New(),
		format: format,
	}, nil
}

// Run writes the export and returns
func (e *ExportRunner) Run(ctx context.Context) error {
	_ = runner.Telemetry().Send(ctx, tlmt.NewEvent("exportrunner.Run", map[string]any{
		"format": string(e.format),
	}))

	out, closeFn, err := e.openOutput()
	if err != nil {
		return err
	}
	defer closeFn()

	snap := e.store.Snapshot()
	columns := export.ParseColumns(strings.Join(e.cfg.ExportColumns, ","))

	switch e.format {
	case export.FormatCSV:
		err = export.WriteCSV(out, snap.Businesses, columns)
	case export.FormatXLSX:
		err = export.WriteXLSX(out, snap.Businesses, snap.EmailEvents, columns)
	default:
		err = export.WriteJSON(out, snap.Businesses, snap.EmailEvents)
	}

	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	log.Printf("[ExportRunner] wrote %d businesses and %d events (%s)",
		len(snap.Businesses), len(snap.EmailEvents), e.format)

	return nil
}

// Close is a no-op
func (e *ExportRunner) Close(_ context.Context) error {
	return nil
}

func (e *ExportRunner) openOutput() (io.Writer, func(), error) {
	if e.cfg.ExportOutput == "" || e.cfg.ExportOutput == "stdout" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(e.cfg.ExportOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
