package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/preston-bernstein/nha-sim-service/internal/domain/seasons"
)

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// MemoryStore keeps a thread-safe set of season sessions in memory. When a limit is set,
// saving a new session past the limit evicts the oldest one.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]seasons.Session
	order    []string
	limit    int
}

// NewMemoryStore constructs an empty MemoryStore. A limit <= 0 means unbounded.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]seasons.Session),
		limit:    limit,
	}
}

// ListSessions returns every session, oldest first.
func (s *MemoryStore) ListSessions() []seasons.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]seasons.Session, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.sessions[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// GetSession retrieves a session by ID.
func (s *MemoryStore) GetSession(id string) (seasons.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// SaveSession inserts or replaces a session.
func (s *MemoryStore) SaveSession(sess seasons.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; !ok {
		s.order = append(s.order, sess.ID)
	}
	s.sessions[sess.ID] = sess
	s.evictLocked()
}

// UpdateSession applies fn to the stored session under the write lock. The session is only
// written back when fn returns nil.
func (s *MemoryStore) UpdateSession(id string, fn func(*seasons.Session) error) (seasons.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return seasons.Session{}, ErrSessionNotFound
	}
	if err := fn(&sess); err != nil {
		return seasons.Session{}, err
	}
	s.sessions[id] = sess
	return sess, nil
}

// Len returns the number of stored sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) evictLocked() {
	if s.limit <= 0 {
		return
	}
	for len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
	}
}
