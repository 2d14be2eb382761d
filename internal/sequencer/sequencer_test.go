package sequencer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/store"
)

func fastSequencer(s *store.Store) *Sequencer {
	return New(s, WithInterval(time.Millisecond), WithIncrement(12))
}

func TestSendRunsToCompletion(t *testing.T) {
	s := store.New()
	seq := fastSequencer(s)

	taskID, err := seq.Start(context.Background(), "biz-001")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, taskID)

	// The queue action applies synchronously
	snap := s.Snapshot()
	assert.True(t, snap.IsSendingEmails)
	assert.Equal(t, 10, snap.SendProgress)

	seq.Wait()

	snap = s.Snapshot()
	assert.False(t, snap.IsSendingEmails)
	assert.Zero(t, snap.SendProgress)

	biz := domain.FindBusiness(snap.Businesses, "biz-001")
	require.NotNil(t, biz)
	assert.Equal(t, domain.StatusEmailSent, biz.Status)

	// Completion appended exactly one engagement event for the target
	last := snap.EmailEvents[len(snap.EmailEvents)-1]
	assert.Equal(t, "biz-001", last.BusinessID)
	assert.Equal(t, domain.EventSent, last.Type)

	_, inFlight := seq.InFlight()
	assert.False(t, inFlight)
}

func TestStartRejectsSecondSend(t *testing.T) {
	s := store.New()
	seq := New(s, WithInterval(time.Hour))

	_, err := seq.Start(context.Background(), "biz-001")
	require.NoError(t, err)

	_, err = seq.Start(context.Background(), "biz-004")
	assert.ErrorIs(t, err, ErrSendInFlight)

	// The first target is untouched
	target, inFlight := seq.InFlight()
	assert.True(t, inFlight)
	assert.Equal(t, "biz-001", target)
}

func TestPausePersistsProgress(t *testing.T) {
	s := store.New()
	seq := New(s, WithInterval(5*time.Millisecond), WithIncrement(12))

	_, err := seq.Start(context.Background(), "biz-001")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return s.Snapshot().SendProgress > 10
	}, time.Second, time.Millisecond)

	seq.Pause()
	seq.Wait()

	snap := s.Snapshot()
	assert.False(t, snap.IsSendingEmails)
	assert.Greater(t, snap.SendProgress, 10)
	assert.Less(t, snap.SendProgress, 100)

	// Paused, not abandoned: the target survives
	target, inFlight := seq.InFlight()
	assert.True(t, inFlight)
	assert.Equal(t, "biz-001", target)
}

func TestResumeContinuesToCompletion(t *testing.T) {
	s := store.New()
	seq := New(s, WithInterval(time.Millisecond), WithIncrement(40))

	_, err := seq.Start(context.Background(), "biz-001")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return s.Snapshot().SendProgress > 10
	}, time.Second, time.Millisecond)

	seq.Pause()
	seq.Wait()

	require.NoError(t, seq.Resume(context.Background()))
	seq.Wait()

	snap := s.Snapshot()
	assert.False(t, snap.IsSendingEmails)
	assert.Zero(t, snap.SendProgress)

	biz := domain.FindBusiness(snap.Businesses, "biz-001")
	require.NotNil(t, biz)
	assert.Equal(t, domain.StatusEmailSent, biz.Status)

	_, inFlight := seq.InFlight()
	assert.False(t, inFlight)
}

func TestResumeWhileSendingIsNoOp(t *testing.T) {
	s := store.New()
	seq := New(s, WithInterval(5*time.Millisecond), WithIncrement(10))

	before := s.Version()
	eventsBefore := len(s.Snapshot().EmailEvents)

	_, err := seq.Start(context.Background(), "biz-001")
	require.NoError(t, err)

	// Resuming an active send must not launch a second tick loop
	require.NoError(t, seq.Resume(context.Background()))

	seq.Wait()

	// Exactly one loop drove the send: the queue action, the resume's
	// sending flag, nine ticks (10 → 100 by 10), three completion
	// dispatches, and one appended event.
	assert.Equal(t, before+15, s.Version())

	snap := s.Snapshot()
	assert.Len(t, snap.EmailEvents, eventsBefore+1)
	assert.False(t, snap.IsSendingEmails)
	assert.Zero(t, snap.SendProgress)

	biz := domain.FindBusiness(snap.Businesses, "biz-001")
	require.NotNil(t, biz)
	assert.Equal(t, domain.StatusEmailSent, biz.Status)

	_, inFlight := seq.InFlight()
	assert.False(t, inFlight)
}

func TestResumeWithoutSend(t *testing.T) {
	s := store.New()
	seq := fastSequencer(s)

	assert.ErrorIs(t, seq.Resume(context.Background()), ErrNoSendInFlight)
}

func TestProgressNeverExceedsHundred(t *testing.T) {
	s := store.New()
	seq := New(s, WithInterval(time.Millisecond), WithIncrement(37))

	_, err := seq.Start(context.Background(), "biz-004")
	require.NoError(t, err)

	seq.Wait()

	// 10 → 47 → 84 → capped at 100, then reset on completion
	assert.Zero(t, s.Snapshot().SendProgress)
}

func TestScannerClearsAnalyzingFlag(t *testing.T) {
	s := store.New()

	// Raise a stale error banner; starting a scan clears it
	s.Dispatch(store.SetError{Message: "previous failure"})

	scanner := NewScanner(s, WithScanDuration(5*time.Millisecond))
	scanner.Analyze(context.Background())

	snap := s.Snapshot()
	assert.True(t, snap.IsAnalyzing)
	assert.Empty(t, snap.ErrorMessage)

	require.Eventually(t, func() bool {
		return !s.Snapshot().IsAnalyzing
	}, time.Second, time.Millisecond)
}
