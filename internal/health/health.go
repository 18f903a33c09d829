package health

import (
	"sync"
	"time"
)

// Status is the last known state of a backend.
type Status struct {
	Healthy     bool      `json:"healthy"`
	LastCheck   time.Time `json:"last_check"`
	LastSuccess time.Time `json:"last_success,omitzero"`
	Failures    int       `json:"failures"`
	Message     string    `json:"message,omitempty"`
}

// Tracker records the outcome of calls to external backends.
// A backend nobody has called yet is not reported.
type Tracker struct {
	mu       sync.RWMutex
	backends map[string]*Status
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		backends: make(map[string]*Status),
	}
}

func (t *Tracker) entry(name string) *Status {
	s, ok := t.backends[name]
	if !ok {
		s = &Status{}
		t.backends[name] = s
	}
	return s
}

// Success marks a backend call as succeeded.
func (t *Tracker) Success(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	s := t.entry(name)
	s.Healthy = true
	s.LastCheck = now
	s.LastSuccess = now
	s.Message = ""
}

// Failure marks a backend call as failed.
func (t *Tracker) Failure(name string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.entry(name)
	s.Healthy = false
	s.LastCheck = time.Now()
	s.Failures++
	if err != nil {
		s.Message = err.Error()
	}
}

// Get returns a copy of the status of a backend, or nil if unknown.
func (t *Tracker) Get(name string) *Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.backends[name]
	if !ok {
		return nil
	}
	cp := *s
	return &cp
}

// Snapshot returns a copy of every recorded status.
func (t *Tracker) Snapshot() map[string]Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]Status, len(t.backends))
	for name, s := range t.backends {
		out[name] = *s
	}
	return out
}

// Healthy reports whether the last call to every recorded backend succeeded.
func (t *Tracker) Healthy() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, s := range t.backends {
		if !s.Healthy {
			return false
		}
	}
	return true
}
