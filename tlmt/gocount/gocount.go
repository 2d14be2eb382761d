// Package gocount is an in-memory telemetry sink that tallies events
// by name. Useful for the demo dashboard, where nothing leaves the
// process.
package gocount

import (
	"context"
	"sync"

	"github.com/leadscout/outreach-dashboard/tlmt"
)

// Service counts telemetry events by name
type Service struct {
	mu     sync.Mutex
	counts map[string]int
}

// New creates a counting telemetry sink
func New() *Service {
	return &Service{
		counts: make(map[string]int),
	}
}

// Send tallies the event
func (s *Service) Send(_ context.Context, event tlmt.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[event.Name]++
	return nil
}

// Counts returns a copy of the tallies so far
func (s *Service) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.counts))
	for name, n := range s.counts {
		out[name] = n
	}
	return out
}

// Close is a no-op
func (s *Service) Close() error {
	return nil
}
