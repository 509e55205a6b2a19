package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSession struct {
	token       string
	exp         time.Time
	hasExp      bool
	invalidated int
}

func (s *fakeSession) Authenticated() bool { return s.token != "" }

func (s *fakeSession) ExpiresAt() (time.Time, bool) { return s.exp, s.hasExp }

func (s *fakeSession) Invalidate(context.Context) {
	s.invalidated++
	s.token = ""
}

func newTestWorker(s Session, now time.Time) *SessionExpiryWorker {
	w := NewSessionExpiryWorker(s, zap.NewNop())
	w.now = func() time.Time { return now }
	return w
}

// ============ TESTS ============

// TestCheckInvalidatesExpiredToken - expired JWT ends the session
func TestCheckInvalidatesExpiredToken(t *testing.T) {
	now := time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)
	s := &fakeSession{token: "tok", exp: now.Add(-time.Second), hasExp: true}

	assert.True(t, newTestWorker(s, now).check(context.Background()))
	assert.Equal(t, 1, s.invalidated)
	assert.False(t, s.Authenticated())
}

// TestCheckKeepsValidSession - valid token is left alone
func TestCheckKeepsValidSession(t *testing.T) {
	now := time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)

	cases := map[string]*fakeSession{
		"not expired":  {token: "tok", exp: now.Add(time.Hour), hasExp: true},
		"no exp claim": {token: "opaque"},
		"signed out":   {exp: now.Add(-time.Hour), hasExp: true},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, newTestWorker(s, now).check(context.Background()))
			assert.Zero(t, s.invalidated)
		})
	}
}

func TestStartStopsWithContext(t *testing.T) {
	s := &fakeSession{}
	w := newTestWorker(s, time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
