package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions in memory. Sessions idle for longer than the TTL are
// dropped by Sweep.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a new empty session.
func (st *Store) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := newSession(uuid.New().String(), st.now())
	st.sessions[s.ID] = s
	return s
}

// Get returns a live session and marks it as used.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if st.expired(s, now) {
		delete(st.sessions, id)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Sweep removes expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	removed := 0
	for id, s := range st.sessions {
		if st.expired(s, now) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) TTL() time.Duration {
	return st.ttl
}

func (st *Store) expired(s *Session, now time.Time) bool {
	return now.Sub(s.lastSeen) > st.ttl
}
