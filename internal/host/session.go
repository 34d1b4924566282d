package host

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/username/goviet-ime/internal/engine"
)

// ErrRateLimited is returned by Do when a session's call budget is
// exhausted; the caller should back off and retry.
var ErrRateLimited = errors.New("host: session rate limit exceeded")

// ErrUnknownSession is returned when a session id has no engine.
var ErrUnknownSession = errors.New("host: unknown session id")

// session pairs one engine with the mutex that serializes calls into it
// per spec.md §5 ("guarding the engine with a mutex held for the full
// duration of each call") and a per-session rate limiter so one noisy
// client can't starve the others sharing a process.
type session struct {
	mu      sync.Mutex
	engine  *engine.Engine
	limiter *rate.Limiter
	touched time.Time
}

// SessionStore holds one engine per session id, for hosts (like the
// httpd binary) serving more than one text field concurrently. A host
// that only ever needs a single engine (the D-Bus daemon, the CLI) can
// skip this type and call Dispatch directly against its own Engine.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	rateRPS  rate.Limit
	burst    int
}

// NewSessionStore returns an empty store. rateRPS/burst configure the
// per-session token bucket handed to every session it creates.
func NewSessionStore(rateRPS float64, burst int) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*session),
		rateRPS:  rate.Limit(rateRPS),
		burst:    burst,
	}
}

// Open creates a fresh session with the given settings and returns its
// id.
func (s *SessionStore) Open(settings engine.Settings) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{
		engine:  engine.New(settings, nil),
		limiter: rate.NewLimiter(s.rateRPS, s.burst),
		touched: time.Now(),
	}
	return id
}

// Close discards a session's engine.
func (s *SessionStore) Close(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *SessionStore) get(id uuid.UUID) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return sess, nil
}

// Do runs op against the session's engine under its mutex, after
// checking the session's rate limiter. This is the §5 serialization
// boundary: at most one operation is ever in flight per engine.
func (s *SessionStore) Do(id uuid.UUID, op Op, req Request) (engine.Result, error) {
	sess, err := s.get(id)
	if err != nil {
		return engine.Result{}, err
	}
	if !sess.limiter.Allow() {
		return engine.Result{}, ErrRateLimited
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touched = time.Now()
	return Dispatch(sess.engine, op, req), nil
}
