package server

import (
	"sync"
	"time"

	"revtrain/internal/workflow"
)

// registry holds live practice sessions in memory, keyed by session ID.
// A session belongs to exactly one user; lookups check ownership.
type registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
}

// entry pairs a session with its own lock. The workflow state has a single
// writer and no internal locking, so concurrent requests for the same
// session (a double-submitted review, a read during grading) serialize on
// this mutex.
type entry struct {
	mu       sync.Mutex
	session  *workflow.Session
	lastSeen time.Time
}

func newRegistry(ttl time.Duration) *registry {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
}

func (r *registry) put(sess *workflow.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	r.sessions[sess.ID] = &entry{session: sess, lastSeen: time.Now()}
}

// get returns the entry if it exists and belongs to userID. The caller
// locks the entry before touching the session.
func (r *registry) get(sessionID, userID string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[sessionID]
	if !ok || e.session.UserID != userID {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e, true
}

func (r *registry) drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// evictLocked removes sessions idle past the TTL. Called with the lock held.
func (r *registry) evictLocked() {
	cutoff := time.Now().Add(-r.ttl)
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}
