package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Session is what the worker needs from the session manager.
type Session interface {
	Authenticated() bool
	ExpiresAt() (time.Time, bool)
	Invalidate(ctx context.Context)
}

// SessionExpiryWorker drops the session once the token's exp claim has
// passed, so the auth prompt shows up without waiting for the next 401.
type SessionExpiryWorker struct {
	session      Session
	tickInterval time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

func NewSessionExpiryWorker(session Session, logger *zap.Logger) *SessionExpiryWorker {
	return &SessionExpiryWorker{
		session:      session,
		tickInterval: time.Minute,
		now:          time.Now,
		logger:       logger,
	}
}

func (w *SessionExpiryWorker) Start(ctx context.Context) {
	w.logger.Info("session expiry worker started", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.check(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("session expiry worker stopped")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

// check reports whether it invalidated the session.
func (w *SessionExpiryWorker) check(ctx context.Context) bool {
	if !w.session.Authenticated() {
		return false
	}
	exp, ok := w.session.ExpiresAt()
	if !ok || w.now().Before(exp) {
		return false
	}

	w.logger.Info("token expired", zap.Time("exp", exp))
	w.session.Invalidate(ctx)
	return true
}
