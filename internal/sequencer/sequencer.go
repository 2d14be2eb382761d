// Package sequencer drives the simulated outreach automations: the
// recurring send-progress ticker and the one-shot area scan. Delays are
// fixed-duration local timers, not real I/O waits.
package sequencer

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/store"
)

// Common errors
var (
	// ErrSendInFlight rejects a new send while one is still running.
	// Only one send target is tracked at a time.
	ErrSendInFlight = errors.New("a send is already in flight")

	// ErrNoSendInFlight rejects resuming when nothing was started
	ErrNoSendInFlight = errors.New("no send in flight")
)

// Default pacing of the simulated send
const (
	DefaultTickInterval  = 700 * time.Millisecond
	DefaultTickIncrement = 12
)

// Sequencer advances sendProgress on a fixed interval while a send is in
// flight. On reaching 100 it flips the sending flag off, resets
// progress, marks the target business email_sent, and appends the
// matching engagement event. An external pause (the sending flag going
// false) tears the ticker down; progress persists so a resume picks up
// where it stopped.
type Sequencer struct {
	store     *store.Store
	interval  time.Duration
	increment int

	mu      sync.Mutex
	target  string
	taskID  uuid.UUID
	running bool
	done    chan struct{}
}

// Option configures a Sequencer
type Option func(*Sequencer)

// WithInterval overrides the tick interval
func WithInterval(d time.Duration) Option {
	return func(s *Sequencer) {
		s.interval = d
	}
}

// WithIncrement overrides the per-tick progress increment
func WithIncrement(n int) Option {
	return func(s *Sequencer) {
		s.increment = n
	}
}

// New creates a Sequencer over the given store
func New(st *store.Store, opts ...Option) *Sequencer {
	s := &Sequencer{
		store:     st,
		interval:  DefaultTickInterval,
		increment: DefaultTickIncrement,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start begins a send for one business: dispatches the queue action
// (which flips the sending flag on with progress at 10 and closes the
// confirmation dialog) and launches the tick loop. Returns the task id,
// or ErrSendInFlight when a send is already running.
func (s *Sequencer) Start(ctx context.Context, businessID string) (uuid.UUID, error) {
	s.mu.Lock()

	if s.target != "" {
		s.mu.Unlock()
		return uuid.Nil, ErrSendInFlight
	}

	s.target = businessID
	s.taskID = uuid.New()
	s.running = true
	s.done = make(chan struct{})
	taskID := s.taskID
	done := s.done

	s.mu.Unlock()

	s.store.Dispatch(store.QueueEmailSend{BusinessID: businessID})

	log.Printf("[Sequencer] send %s started for business %s", taskID, businessID)

	// Detach from the caller's (usually request-scoped) context; the
	// tick loop outlives the HTTP request that started it.
	go s.run(context.WithoutCancel(ctx), businessID, done)

	return taskID, nil
}

// Resume restarts the tick loop for a paused send, picking up from
// whatever sendProgress persisted. Flips the sending flag back on.
// While the loop is still alive (an unneeded resume, or a pause it has
// not observed yet) this is a no-op: only one tick loop ever drives a
// send.
func (s *Sequencer) Resume(ctx context.Context) error {
	s.mu.Lock()

	if s.target == "" {
		s.mu.Unlock()
		return ErrNoSendInFlight
	}

	target := s.target

	// The flag flips back on under the lock, before the running check:
	// a loop about to tear itself down re-reads it under this same lock
	// and stays alive, and a loop completing holds the lock until its
	// mutations land, so the flag can never go stale.
	s.store.Dispatch(store.SetSending{Value: true})

	if s.running {
		s.mu.Unlock()
		return nil
	}

	s.running = true
	done := make(chan struct{})
	s.done = done

	s.mu.Unlock()

	log.Printf("[Sequencer] send resumed for business %s", target)

	go s.run(context.WithoutCancel(ctx), target, done)

	return nil
}

// Pause flips the sending flag off; the running tick loop observes it
// and tears itself down. The in-flight target and its progress persist.
func (s *Sequencer) Pause() {
	s.store.Dispatch(store.SetSending{Value: false})
}

// InFlight reports the current send target, if any
func (s *Sequencer) InFlight() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.target, s.target != ""
}

// Wait blocks until the current tick loop exits (completion, pause, or
// context cancellation). Returns immediately when nothing is running.
func (s *Sequencer) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (s *Sequencer) run(ctx context.Context, businessID string, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()

			log.Printf("[Sequencer] send for %s stopped: %v", businessID, ctx.Err())
			return
		case <-ticker.C:
			snap := s.store.Snapshot()

			// Paused externally; keep the target so a resume can
			// continue from the persisted progress. Re-read under the
			// lock so a concurrent resume either sees the loop still
			// running or finds it already torn down, never both.
			if !snap.IsSendingEmails {
				s.mu.Lock()
				if s.store.Snapshot().IsSendingEmails {
					s.mu.Unlock()
					continue
				}
				s.running = false
				s.mu.Unlock()

				log.Printf("[Sequencer] send for %s paused at %d%%", businessID, snap.SendProgress)
				return
			}

			progress := snap.SendProgress + s.increment
			if progress > 100 {
				progress = 100
			}

			s.store.Dispatch(store.SetSendProgress{Value: progress})

			if progress >= 100 {
				s.complete(businessID)
				return
			}
		}
	}
}

// complete applies the completion mutations under the sequencer lock so
// a concurrent Resume observes either the send still running or the
// target already cleared, never a half-finished state.
func (s *Sequencer) complete(businessID string) {
	s.mu.Lock()

	s.store.Dispatch(store.SetSending{Value: false})
	s.store.Dispatch(store.SetSendProgress{Value: 0})
	s.store.Dispatch(store.UpdateBusinessStatus{BusinessID: businessID, Status: domain.StatusEmailSent})
	s.store.AppendEvent(businessID, domain.StatusEmailSent)

	s.target = ""
	s.taskID = uuid.Nil
	s.running = false
	s.mu.Unlock()

	log.Printf("[Sequencer] send completed for business %s", businessID)
}
