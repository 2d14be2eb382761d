package sequencer

import (
	"context"
	"log"
	"time"

	"github.com/leadscout/outreach-dashboard/internal/store"
)

// DefaultScanDuration paces the simulated area analysis
const DefaultScanDuration = 2500 * time.Millisecond

// Scanner runs the one-shot area analysis simulation: it flips the
// analyzing flag on, clears any stale error banner, and flips the flag
// back off after a fixed delay.
type Scanner struct {
	store    *store.Store
	duration time.Duration
}

// ScannerOption configures a Scanner
type ScannerOption func(*Scanner)

// WithScanDuration overrides the analysis delay
func WithScanDuration(d time.Duration) ScannerOption {
	return func(s *Scanner) {
		s.duration = d
	}
}

// NewScanner creates a Scanner over the given store
func NewScanner(st *store.Store, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		store:    st,
		duration: DefaultScanDuration,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Analyze starts the area scan and returns immediately. The analyzing
// flag clears after the configured delay or when ctx is cancelled,
// whichever comes first.
func (s *Scanner) Analyze(ctx context.Context) {
	s.store.Dispatch(store.SetAnalyzing{Value: true})
	s.store.Dispatch(store.SetError{})

	log.Printf("[Scanner] area analysis started")

	// Detach from the caller's context; the scan outlives the request
	ctx = context.WithoutCancel(ctx)

	go func() {
		timer := time.NewTimer(s.duration)
		defer timer.Stop()

		select {
		case <-ctx.Done():
		case <-timer.C:
		}

		s.store.Dispatch(store.SetAnalyzing{Value: false})

		log.Printf("[Scanner] area analysis finished")
	}()
}
