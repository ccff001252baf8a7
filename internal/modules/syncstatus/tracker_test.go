package syncstatus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsmart/shopsmart-backend/internal/modules/syncstatus"
)

func TestTrigger_SettlesBackToIdle(t *testing.T) {
	tracker := syncstatus.NewTracker(10 * time.Millisecond)

	tracker.Trigger()
	assert.Equal(t, syncstatus.StateSyncing, tracker.Status().State)

	require.Eventually(t, func() bool {
		return tracker.Status().State == syncstatus.StateIdle
	}, time.Second, 5*time.Millisecond)
	assert.NotZero(t, tracker.Status().LastSyncedAt)
}

func TestTrigger_OfflineGoesToError(t *testing.T) {
	tracker := syncstatus.NewTracker(10 * time.Millisecond)
	tracker.SetOnline(false)

	tracker.Trigger()
	assert.Equal(t, syncstatus.StateError, tracker.Status().State)

	// Back online clears the sticky error.
	tracker.SetOnline(true)
	assert.Equal(t, syncstatus.StateIdle, tracker.Status().State)
}
