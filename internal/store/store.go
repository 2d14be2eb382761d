// Package store holds the single in-memory state aggregate for the
// dashboard and the closed action vocabulary that advances it. One Store
// instance is constructed at startup and handed to every consumer; there
// is no ambient global.
package store

import (
	"log"
	"sync"
	"time"

	"github.com/leadscout/outreach-dashboard/internal/domain"
)

// Store is the single-writer state container. Dispatch applies one
// action atomically; readers get deep-copied snapshots and can never
// observe an intermediate state. The engagement event log is held next
// to the reducer state and merged into snapshots at read time.
type Store struct {
	mu       sync.RWMutex
	state    domain.AppState
	events   []domain.EmailEvent
	eventSeq int
	version  uint64
	now      func() time.Time
	subs     []chan struct{}
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the store's time source (tests)
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store seeded with the initial demo dataset
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s.init(domain.Seed(s.now()))
}

// NewWithState creates a store from an explicit initial state (tests)
func NewWithState(state domain.AppState, opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s.init(state)
}

func (s *Store) init(state domain.AppState) *Store {
	state = state.Clone()

	// The event log lives outside the reducer state; the counter starts
	// past the seeded events and only ever increases.
	s.events = state.EmailEvents
	s.eventSeq = len(s.events)
	state.EmailEvents = nil
	s.state = state

	return s
}

// Dispatch applies one action. The transition is synchronous and atomic:
// it fully applies before any other dispatch or snapshot can observe it.
func (s *Store) Dispatch(action Action) {
	if action == nil {
		return
	}

	s.mu.Lock()
	s.state = reduce(s.state, action, s.now())
	s.version++
	s.mu.Unlock()

	s.notify()
}

// AppendEvent records one engagement event derived from a status
// transition and returns it. The log is append-only: nothing is ever
// merged, removed, or deduplicated, and the id comes from a monotonic
// counter rather than the log length.
func (s *Store) AppendEvent(businessID string, status domain.BusinessStatus) domain.EmailEvent {
	s.mu.Lock()

	s.eventSeq++
	event := domain.EmailEvent{
		ID:         domain.EventID(s.eventSeq),
		BusinessID: businessID,
		Type:       domain.EventTypeForStatus(status),
		Timestamp:  s.now().UTC(),
	}
	s.events = append(s.events, event)
	s.version++

	s.mu.Unlock()

	log.Printf("[Store] event %s recorded: %s for %s", event.ID, event.Type, businessID)

	s.notify()

	return event
}

// Snapshot returns a deep copy of the current state with the event log
// merged in
func (s *Store) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state.Clone()
	snap.EmailEvents = domain.CloneEvents(s.events)

	return snap
}

// Version returns the change counter. It increases on every dispatch and
// every appended event, and is what derived views key their memoization
// on.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Subscribe returns a channel that receives a signal after every state
// change. Notifications are best-effort: a slow subscriber coalesces
// signals instead of blocking the writer.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	return ch
}

func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
