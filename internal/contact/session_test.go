package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"skc.dev/internal/mailer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.err
}

func (r *recordingSender) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func newTestSession(t *testing.T, sender mailer.Sender, clock *fakeClock) *Session {
	t.Helper()
	s := NewSession("test", Options{
		Sender:   sender,
		Clock:    clock,
		Logger:   zaptest.NewLogger(t),
		Location: time.UTC,
	})
	t.Cleanup(s.Close)
	return s
}

func fill(t *testing.T, s *Session) {
	t.Helper()
	for field, value := range map[Field]string{
		FieldName:    "Jane Doe",
		FieldEmail:   "jane@example.com",
		FieldMessage: "Hello there",
	} {
		_, err := s.Edit(field, value)
		require.NoError(t, err)
	}
}

func TestSession_EmptyFieldsSkipDelivery(t *testing.T) {
	sender := &recordingSender{}
	s := newTestSession(t, sender, newFakeClock())

	_, err := s.Edit(FieldName, "   ")
	require.NoError(t, err)

	snap, err := s.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MissingRequired, verr.Kind)
	assert.Equal(t, MsgMissingRequired, snap.Error)
	assert.False(t, snap.Locked)
	assert.Zero(t, sender.calls())
}

func TestSession_InvalidEmail(t *testing.T) {
	sender := &recordingSender{}
	s := newTestSession(t, sender, newFakeClock())
	fill(t, s)
	_, _ = s.Edit(FieldEmail, "jane-at-example")

	snap, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, MsgInvalidEmail, snap.Error)
	assert.Zero(t, sender.calls())
}

func TestSession_SuccessThenAutoReset(t *testing.T) {
	sender := &recordingSender{}
	clock := newFakeClock()
	s := newTestSession(t, sender, clock)
	fill(t, s)

	snap, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Submitted, snap.State)
	assert.Equal(t, Fields{}, snap.Fields)
	assert.Empty(t, snap.Error)
	assert.Equal(t, int64(5000), snap.ResetAfterMs)

	require.Equal(t, 1, sender.calls())
	assert.Equal(t, mailer.Message{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: DefaultSubject,
		Message: "Hello there",
		Date:    "October 18, 2026 at 09:30 AM",
	}, sender.sent[0])

	clock.Advance(4999 * time.Millisecond)
	assert.Equal(t, Submitted, s.Snapshot().State)

	clock.Advance(time.Millisecond)
	snap = s.Snapshot()
	assert.Equal(t, Idle, snap.State)
	assert.Zero(t, snap.ResetAfterMs)
}

func TestSession_FailurePreservesFieldsAndEditClearsError(t *testing.T) {
	sender := &recordingSender{err: &mailer.DeliveryError{Provider: "emailjs", Status: 412, Text: "Invalid grant"}}
	s := newTestSession(t, sender, newFakeClock())
	fill(t, s)
	before := s.Snapshot().Fields

	snap, err := s.Submit(context.Background())
	var derr *mailer.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, Failed, snap.State)
	assert.Equal(t, "Invalid grant", snap.Error)
	assert.Equal(t, before, snap.Fields)
	assert.False(t, snap.Locked)

	snap, err = s.Edit(FieldSubject, "Hi")
	require.NoError(t, err)
	assert.Empty(t, snap.Error)
	assert.Equal(t, Idle, snap.State)
}

func TestSession_GenericFailureUsesFallback(t *testing.T) {
	sender := &recordingSender{err: errors.New("dial tcp: refused")}
	s := newTestSession(t, sender, newFakeClock())
	fill(t, s)

	snap, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, mailer.FallbackMessage, snap.Error)
}

func TestSession_LockedDuringDelivery(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	sender := mailer.SenderFunc(func(ctx context.Context, msg mailer.Message) error {
		close(started)
		<-release
		return nil
	})
	s := newTestSession(t, sender, newFakeClock())
	fill(t, s)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()

	<-started
	snap := s.Snapshot()
	assert.Equal(t, Submitting, snap.State)
	assert.True(t, snap.Locked)

	_, err := s.Edit(FieldName, "Someone Else")
	assert.ErrorIs(t, err, ErrSubmitting)
	_, err = s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitting)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, Submitted, s.Snapshot().State)
}

func TestSession_CloseStopsResetTimer(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, &recordingSender{}, clock)
	fill(t, s)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, clock.pending())

	s.Close()
	assert.Zero(t, clock.pending())

	clock.Advance(time.Minute)
	assert.Equal(t, Submitted, s.Snapshot().State)
}

func TestSession_CustomResetDelayAndLocation(t *testing.T) {
	clock := newFakeClock()
	sender := &recordingSender{}
	s := NewSession("x", Options{
		Sender:     sender,
		Clock:      clock,
		ResetDelay: 2 * time.Second,
		Location:   time.FixedZone("NPT", 5*3600+45*60),
	})
	defer s.Close()
	fill(t, s)

	snap, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2000), snap.ResetAfterMs)
	assert.Equal(t, "October 18, 2026 at 03:15 PM", sender.sent[0].Date)

	clock.Advance(2 * time.Second)
	assert.Equal(t, Idle, s.Snapshot().State)
}
