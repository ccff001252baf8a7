// Package syncstatus drives the sync badge in the UI. The transition
// is a fixed-delay state change, not a real network protocol, and
// carries no data consistency guarantee — local storage is already the
// source of truth by the time the badge spins.
package syncstatus

import (
	"sync"
	"time"
)

// State is the badge state.
type State string

const (
	StateIdle    State = "idle"
	StateSyncing State = "syncing"
	StateError   State = "error"
)

// Status is what the UI polls.
type Status struct {
	State        State `json:"state"`
	Online       bool  `json:"online"`
	LastSyncedAt int64 `json:"last_synced_at,omitempty"` // unix milliseconds
}

// Tracker is the cosmetic sync state machine.
type Tracker struct {
	mu         sync.Mutex
	state      State
	online     bool
	lastSynced int64
	delay      time.Duration
	timer      *time.Timer
}

// DefaultDelay matches the simulated sync spinner duration.
const DefaultDelay = 2 * time.Second

// NewTracker creates a tracker that settles back to idle after delay.
func NewTracker(delay time.Duration) *Tracker {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Tracker{state: StateIdle, online: true, delay: delay}
}

// Trigger starts a simulated sync. Offline trackers flip straight to
// the error state instead.
func (t *Tracker) Trigger() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.online {
		t.state = StateError
		return
	}
	t.state = StateSyncing
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, t.finish)
}

func (t *Tracker) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateSyncing {
		t.state = StateIdle
		t.lastSynced = time.Now().UnixMilli()
	}
}

// SetOnline flips the simulated connectivity flag. Coming back online
// clears a sticky error.
func (t *Tracker) SetOnline(online bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.online = online
	if online && t.state == StateError {
		t.state = StateIdle
	}
}

// Status returns the current badge state.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Status{State: t.state, Online: t.online, LastSyncedAt: t.lastSynced}
}
