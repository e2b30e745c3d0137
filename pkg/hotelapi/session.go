package hotelapi

import (
	"errors"
	"sync"

	"github.com/me/hotelx/pkg/model"
)

// Session owns the current token pair. It is created once and handed to every
// client; login, registration, and refresh write to it, logout clears it.
// Callers read the pair at call start and must tolerate it changing between
// calls but never mid-call (reads return copies).
//
// Refresh is serialized: when several calls hit 401 at once, one performs the
// refresh and the rest wait for its outcome instead of each invoking the
// refresh endpoint.
type Session struct {
	mu       sync.Mutex
	pair     *model.TokenPair
	gen      uint64 // bumped on every commit or clear
	inflight *refreshState
}

type refreshState struct {
	done chan struct{}
	err  error
}

// NewSession returns an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// Set commits a new token pair.
func (s *Session) Set(pair model.TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := pair
	s.pair = &p
	s.gen++
}

// Clear drops the token pair, leaving the session unauthenticated.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = nil
	s.gen++
}

// Pair returns a copy of the current token pair, if any.
func (s *Session) Pair() (model.TokenPair, bool) {
	pair, _, ok := s.snapshot()
	return pair, ok
}

// Authenticated reports whether a token pair is held.
func (s *Session) Authenticated() bool {
	_, ok := s.Pair()
	return ok
}

// Principal decodes the identity carried by the current access token. It is
// recomputed from the pair on every call; an empty session or an undecodable
// token yields the anonymous principal.
func (s *Session) Principal() Principal {
	pair, ok := s.Pair()
	if !ok {
		return Principal{}
	}
	return DecodePrincipal(pair.JWT)
}

// snapshot returns the pair together with the session generation it was read
// at, so a later refresh can detect that the pair has already been replaced.
func (s *Session) snapshot() (model.TokenPair, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pair == nil {
		return model.TokenPair{}, s.gen, false
	}
	return *s.pair, s.gen, true
}

// refresh exchanges the stale pair for a fresh one via do, committing the
// result on success. gen is the generation the caller's pair was read at:
// if the session has moved on since (another caller already refreshed, or a
// new login happened), the exchange is skipped and the caller simply retries
// with the committed pair. Concurrent callers at the same generation share a
// single in-flight exchange.
func (s *Session) refresh(gen uint64, do func(stale model.TokenPair) (model.TokenPair, error)) error {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return nil
	}
	if st := s.inflight; st != nil {
		s.mu.Unlock()
		<-st.done
		return st.err
	}
	if s.pair == nil {
		s.mu.Unlock()
		return errors.New("no session to refresh")
	}
	stale := *s.pair
	st := &refreshState{done: make(chan struct{})}
	s.inflight = st
	s.mu.Unlock()

	pair, err := do(stale)

	s.mu.Lock()
	if err == nil {
		p := pair
		s.pair = &p
		s.gen++
	}
	st.err = err
	s.inflight = nil
	s.mu.Unlock()

	close(st.done)
	return err
}
