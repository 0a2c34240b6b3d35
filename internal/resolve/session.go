package resolve

import "sync"

// Session coordinates resolutions issued from a single consumer surface with
// last-request-wins semantics. Begin hands out a monotonically increasing
// generation token and supersedes any outstanding resolution; Accept reports
// whether a completed resolution is still the current one, so callers drop
// stale results instead of displaying them. Independent surfaces use
// independent Sessions; Sessions never coordinate with each other.
type Session struct {
	mu     sync.Mutex
	gen    uint64
	active bool
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{}
}

// Begin registers a new resolution and returns its token. Any resolution
// still outstanding is superseded: its eventual Accept will return false.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.active = true
	return s.gen
}

// Accept reports whether the resolution identified by token is still current,
// and if so marks the session idle. A token from a superseded request, or a
// second Accept of the same token, returns false.
func (s *Session) Accept(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active || token != s.gen {
		return false
	}
	s.active = false
	return true
}

// Busy reports whether a resolution is outstanding. Consumers disable their
// search affordance while true.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Cancel abandons any outstanding resolution without accepting a result.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}
