package conditionsearch

import (
	"sync"
	"time"
)

const sweepInterval = time.Minute

// searchSessionRegistry keeps live search sessions in memory. Sessions own
// debounce timers and in-flight lookups, so they stay process-local and
// expire after a period of inactivity.
type searchSessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*searchSession
	ttl      time.Duration
	done     chan struct{}
}

func newSearchSessionRegistry(ttl time.Duration) *searchSessionRegistry {
	registry := &searchSessionRegistry{
		sessions: make(map[string]*searchSession),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go registry.sweep()
	return registry
}

func (r *searchSessionRegistry) add(session *searchSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.id] = session
}

func (r *searchSessionRegistry) get(sessionID string) (*searchSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	return session, ok
}

func (r *searchSessionRegistry) stop() {
	close(r.done)
}

func (r *searchSessionRegistry) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case now := <-ticker.C:
			r.mu.Lock()
			for id, session := range r.sessions {
				session.mu.Lock()
				expired := now.Sub(session.lastActive) > r.ttl
				if expired {
					session.reset()
				}
				session.mu.Unlock()
				if expired {
					delete(r.sessions, id)
				}
			}
			r.mu.Unlock()
		}
	}
}
