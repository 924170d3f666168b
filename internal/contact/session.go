package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"skc.dev/internal/mailer"
)

// DefaultResetDelay is how long the success notice stays before the form reverts to idle
const DefaultResetDelay = 5 * time.Second

// Options configures sessions
type Options struct {
	Sender     mailer.Sender
	Clock      Clock
	Location   *time.Location
	ResetDelay time.Duration
	Logger     *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = RealClock()
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.ResetDelay <= 0 {
		o.ResetDelay = DefaultResetDelay
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Snapshot is a point-in-time view of a session, safe to render or encode
type Snapshot struct {
	ID           string `json:"id"`
	State        State  `json:"state"`
	Fields       Fields `json:"fields"`
	Error        string `json:"error,omitempty"`
	Locked       bool   `json:"locked"`
	ResetAfterMs int64  `json:"reset_after_ms,omitempty"`
}

// Session is one visitor's contact form
type Session struct {
	id   string
	opts Options

	mu         sync.Mutex
	form       Form
	timer      Timer
	lastActive time.Time
	closed     bool
}

// NewSession creates an idle session
func NewSession(id string, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		id:         id,
		opts:       opts,
		lastActive: opts.Clock.Now(),
	}
}

func (s *Session) ID() string { return s.id }

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:     s.id,
		State:  s.form.State(),
		Fields: s.form.Fields(),
		Error:  s.form.ErrorMessage(),
		Locked: s.form.Locked(),
	}
	if snap.State == Submitted {
		snap.ResetAfterMs = s.opts.ResetDelay.Milliseconds()
	}
	return snap
}

// Edit applies a field edit event
func (s *Session) Edit(field Field, value string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = s.opts.Clock.Now()
	err := s.form.Edit(field, value)
	return s.snapshotLocked(), err
}

// Submit validates the form and delivers it. The lock is released during
// delivery so concurrent readers observe Submitting.
func (s *Session) Submit(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	now := s.opts.Clock.Now()
	s.lastActive = now

	fields, err := s.form.BeginSubmit()
	if err != nil {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, err
	}
	msg := NewMessage(fields, now.In(s.opts.Location))
	s.mu.Unlock()

	sendErr := s.opts.Sender.Send(ctx, msg)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sendErr != nil {
		s.opts.Logger.Warn("contact delivery failed",
			zap.String("session", s.id),
			zap.Error(sendErr))
		_ = s.form.Fail(sendErr)
		return s.snapshotLocked(), sendErr
	}

	_ = s.form.Succeed()
	s.opts.Logger.Info("contact message sent", zap.String("session", s.id))

	if !s.closed {
		s.timer = s.opts.Clock.AfterFunc(s.opts.ResetDelay, s.resetElapsed)
	}
	return s.snapshotLocked(), nil
}

func (s *Session) resetElapsed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timer = nil
	if err := s.form.Reset(); err != nil && !errors.Is(err, ErrInvalidTransition) {
		s.opts.Logger.Error("contact reset failed", zap.String("session", s.id), zap.Error(err))
	}
}

// Close stops the pending reset timer, if any
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

// idleSince reports when the session last saw activity. A session that is
// submitting or waiting on its reset timer is never idle.
func (s *Session) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form.State() == Submitting || s.timer != nil {
		return time.Time{}, false
	}
	return s.lastActive, true
}
