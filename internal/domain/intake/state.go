package intake

import (
	"sync"
	"time"
)

// SubmitState is the submit-button state for one visitor session.
type SubmitState string

const (
	StateIdle    SubmitState = "idle"
	StateLoading SubmitState = "loading"
	StateSuccess SubmitState = "success"
)

// stateTracker serializes submissions per session with an in-flight
// guard and drives the success→idle auto-reset. Result display is
// independent of the button state, so success only lives for the reset
// delay.
type stateTracker struct {
	mu       sync.Mutex
	states   map[string]SubmitState
	inFlight map[string]bool
}

func newStateTracker() *stateTracker {
	return &stateTracker{
		states:   make(map[string]SubmitState),
		inFlight: make(map[string]bool),
	}
}

// begin claims the in-flight guard. A second submit intent while one is
// in flight is a no-op for the caller.
func (t *stateTracker) begin(sessionID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight[sessionID] {
		return false
	}
	t.inFlight[sessionID] = true
	return true
}

func (t *stateTracker) finish(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inFlight, sessionID)
}

func (t *stateTracker) set(sessionID string, state SubmitState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if state == StateIdle {
		delete(t.states, sessionID)
		return
	}
	t.states[sessionID] = state
}

func (t *stateTracker) get(sessionID string) SubmitState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.states[sessionID]; ok {
		return s
	}
	return StateIdle
}

// succeed flips the session to success and schedules the reset back to
// idle. The timer only resets a still-successful state so a newer
// loading transition is never clobbered.
func (t *stateTracker) succeed(sessionID string, resetAfter time.Duration) {
	t.set(sessionID, StateSuccess)
	time.AfterFunc(resetAfter, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.states[sessionID] == StateSuccess {
			delete(t.states, sessionID)
		}
	})
}
