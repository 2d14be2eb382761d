// Package gonoop discards all telemetry events.
package gonoop

import (
	"context"

	"github.com/leadscout/outreach-dashboard/tlmt"
)

type service struct{}

// New returns a Telemetry implementation that drops every event.
func New() tlmt.Telemetry {
	return &service{}
}

func (s *service) Send(context.Context, tlmt.Event) error { return nil }

func (s *service) Close() error { return nil }
