// Package registry tracks live conversation sessions. Each session owns one
// dialogue engine; the registry is the single owner of engine lifecycles, so
// shutdown is a deterministic sweep rather than a garbage collection hope.
package registry

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/LuckyNugget/YourFoodie/pkg/chat"
)

// EngineFactory creates a fresh dialogue engine for a new session
type EngineFactory func() *chat.Engine

// Registry is a concurrency-safe map of session id to dialogue engine
type Registry struct {
	factory EngineFactory
	seq     atomic.Int64

	mu       sync.Mutex
	sessions map[string]*chat.Engine
}

// New creates a registry producing engines via the given factory
func New(factory EngineFactory) *Registry {
	return &Registry{factory: factory, sessions: make(map[string]*chat.Engine)}
}

// Create registers a new session and returns its engine. An empty id gets a
// timestamp-derived one with a per-process counter suffix, so concurrent
// creates on a coarse clock cannot collide. Re-creating an existing id
// replaces the session, the previous engine is closed first.
func (r *Registry) Create(sessionID string) (string, *chat.Engine) {
	if sessionID == "" {
		sessionID = fmt.Sprintf("session_%d_%d", time.Now().UnixNano(), r.seq.Add(1))
	}

	engine := r.factory()

	r.mu.Lock()
	if prev, ok := r.sessions[sessionID]; ok {
		lgr.Printf("[INFO] session %s recreated, closing previous engine", sessionID)
		prev.Close()
	}
	r.sessions[sessionID] = engine
	count := len(r.sessions)
	r.mu.Unlock()

	lgr.Printf("[DEBUG] session %s created, %d active", sessionID, count)
	return sessionID, engine
}

// Get returns the engine for the session, or false if the session is unknown
func (r *Registry) Get(sessionID string) (*chat.Engine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	engine, ok := r.sessions[sessionID]
	return engine, ok
}

// Remove closes and drops the session. Removing an unknown id is a no-op
// returning false.
func (r *Registry) Remove(sessionID string) bool {
	r.mu.Lock()
	engine, ok := r.sessions[sessionID]
	if ok {
		delete(r.sessions, sessionID)
	}
	count := len(r.sessions)
	r.mu.Unlock()

	if !ok {
		return false
	}
	engine.Close()
	lgr.Printf("[DEBUG] session %s removed, %d active", sessionID, count)
	return true
}

// Count returns the number of active sessions
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Shutdown closes every active session. The registry stays usable afterwards
// but is expected to be discarded.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	engines := make([]*chat.Engine, 0, len(r.sessions))
	for id, engine := range r.sessions {
		engines = append(engines, engine)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, engine := range engines {
		engine.Close()
	}
	lgr.Printf("[INFO] registry shutdown, %d sessions closed", len(engines))
}
