// Package event registers callbacks by event name and runs them on dispatch.
package event

import "sync"

// Listener is a callback run when its event is dispatched
type Listener func()

// Target keeps listeners per event name. The zero value is ready to use.
type Target struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

// NewTarget creates a target with no listeners
func NewTarget() *Target {
	return &Target{
		listeners: make(map[string][]Listener),
	}
}

// AddEventListener registers fn for event. A function registered twice runs twice.
func (t *Target) AddEventListener(event string, fn Listener) {
	if fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listeners == nil {
		t.listeners = make(map[string][]Listener)
	}
	t.listeners[event] = append(t.listeners[event], fn)
}

// Dispatch runs the listeners for event in registration order and returns
// how many ran.
func (t *Target) Dispatch(event string) int {
	t.mu.RLock()
	fns := make([]Listener, len(t.listeners[event]))
	copy(fns, t.listeners[event])
	t.mu.RUnlock()

	// Listeners run unlocked so they may register more listeners.
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}
