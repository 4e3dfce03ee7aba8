// Package guard provides the execution-in-progress token held by every
// mutating engine operation. An external contract callback that re-enters
// the engine while the token is held must be rejected outright.
package guard

// Guard single-token mutual exclusion
type Guard struct {
	ch chan struct{}
}

// New new guard
func New() *Guard {
	return &Guard{
		ch: make(chan struct{}, 1),
	}
}

// Enter tries to take the token, reporting false if it is already held.
func (g *Guard) Enter() bool {
	select {
	case g.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Exit releases the token. Must be called on every exit path, including
// failure paths.
func (g *Guard) Exit() {
	select {
	case <-g.ch:
	default:
	}
}
