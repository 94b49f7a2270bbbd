package optimistic

import "sync"

// State is the lifecycle position of a Toggle.
type State int

const (
	Idle State = iota
	Pending
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Toggle holds a locally displayed value that is changed ahead of its write.
// Overlapping Apply calls on one Toggle must be prevented by the caller, usually
// with a Guard.
type Toggle[T any] struct {
	mu    sync.Mutex
	value T
	state State
}

// NewToggle returns an idle Toggle showing initial.
func NewToggle[T any](initial T) *Toggle[T] {
	return &Toggle[T]{value: initial}
}

// Value returns the value currently shown.
func (t *Toggle[T]) Value() T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// State returns the current lifecycle position of the toggle.
func (t *Toggle[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Apply shows next immediately, then runs write. On success the toggle settles
// on next; on failure the previous value comes back, the toggle returns to
// Idle and write's error is returned.
func (t *Toggle[T]) Apply(next T, write func() error) error {
	t.mu.Lock()
	prior := t.value
	t.value = next
	t.state = Pending
	t.mu.Unlock()

	err := write()

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.value = prior
		t.state = Idle
		return err
	}
	t.state = Settled
	return nil
}
