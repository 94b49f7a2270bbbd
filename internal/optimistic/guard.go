// Package optimistic holds the building blocks for user-facing actions that
// update local state before the backing write is confirmed.
package optimistic

import "sync/atomic"

// Guard lets one call through at a time. Calls that arrive while another is in
// flight are dropped, not queued.
type Guard struct {
	busy atomic.Bool
}

// Do runs fn unless a previous call is still running. ran is false when the call
// was dropped. The guard is released when fn returns, panics included.
func (g *Guard) Do(fn func() error) (ran bool, err error) {
	if !g.busy.CompareAndSwap(false, true) {
		return false, nil
	}
	defer g.busy.Store(false)
	return true, fn()
}

// InFlight reports whether a call is running.
func (g *Guard) InFlight() bool {
	return g.busy.Load()
}
