package game

import "sync"

// SessionStore maps a room identifier to at most one live session, creating
// one lazily on first access. Stores are independent instances, not process
// globals, so tests can build isolated ones.
type SessionStore struct {
	mu       sync.RWMutex
	points   PointSource
	sessions map[string]*Session
}

// NewSessionStore returns a store whose sessions draw base points from src.
func NewSessionStore(src PointSource) *SessionStore {
	return &SessionStore{
		points:   src,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for roomID, creating it if absent.
func (st *SessionStore) Get(roomID string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[roomID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	// Double-check after acquiring write lock.
	if s, ok := st.sessions[roomID]; ok {
		return s
	}
	s = NewSession(st.points)
	st.sessions[roomID] = s
	return s
}
