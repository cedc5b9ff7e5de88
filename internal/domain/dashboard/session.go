package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// ErrSessionStopped is returned by Start once Stop has been called.
var ErrSessionStopped = errors.New("dashboard session stopped")

// Session keeps one dashboard fresh. It owns the selected city and unit and at most
// one refresh loop, which re-renders at every interval boundary of the wall clock.
type Session struct {
	id       uuid.UUID
	svc      Service
	clock    clockwork.Clock
	interval time.Duration
	logger   *slog.Logger
	updates  chan Response

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

// SessionFactory hands out sessions sharing one dashboard service.
type SessionFactory struct {
	svc      Service
	clock    clockwork.Clock
	interval time.Duration
	logger   *slog.Logger
}

// NewSessionFactory is a wire provider for refresh sessions.
func NewSessionFactory(cfg Config, svc Service, clock clockwork.Clock, logger *slog.Logger) *SessionFactory {
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionFactory{svc: svc, clock: clock, interval: interval, logger: logger}
}

// New creates an idle session.
func (f *SessionFactory) New() *Session {
	id := uuid.New()
	return &Session{
		id:       id,
		svc:      f.svc,
		clock:    f.clock,
		interval: f.interval,
		logger:   f.logger.With("component", "dashboard.session", "session", id.String()),
		updates:  make(chan Response, 1),
	}
}

// ID identifies the session in logs and stream events.
func (s *Session) ID() uuid.UUID { return s.id }

// Updates delivers every render, the first one included. Only the latest unread
// render is kept. The channel is closed by Stop.
func (s *Session) Updates() <-chan Response { return s.updates }

// Start renders req and replaces any running refresh loop with one for req.
// A failed render leaves the previous loop untouched.
func (s *Session) Start(ctx context.Context, req Request) (Response, error) {
	first, err := s.svc.Build(ctx, req)
	if err != nil {
		return Response{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return Response{}, ErrSessionStopped
	}
	s.halt()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	go s.run(loopCtx, req, first, done)

	s.logger.Info("dashboard session started", "city", req.City, "unit", req.Unit)
	return first, nil
}

// Stop ends the refresh loop and closes Updates. It is safe to call more than once.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.halt()
	s.stopped = true
	close(s.updates)
}

// halt cancels the running loop and waits for it to exit. Callers hold mu.
func (s *Session) halt() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

func (s *Session) run(ctx context.Context, req Request, first Response, done chan struct{}) {
	defer close(done)
	s.publish(ctx, first)
	req.Refresh = true

	for {
		timer := s.clock.NewTimer(untilBoundary(s.clock.Now(), s.interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.Chan():
		}

		resp, err := s.svc.Build(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Warn("dashboard refresh failed", "city", req.City, "error", err)
			continue
		}
		s.publish(ctx, resp)
	}
}

func (s *Session) publish(ctx context.Context, resp Response) {
	// drop a stale unread render
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- resp:
	case <-ctx.Done():
	}
}

// untilBoundary returns the delay to the next multiple of interval.
func untilBoundary(now time.Time, interval time.Duration) time.Duration {
	next := now.Truncate(interval).Add(interval)
	return next.Sub(now)
}
