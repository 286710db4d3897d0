package auth

import "time"

type TransitionKind string

const (
	TransitionLogin          TransitionKind = "login"
	TransitionLoginFailed    TransitionKind = "login_failed"
	TransitionLockedOut      TransitionKind = "locked_out"
	TransitionRejected       TransitionKind = "login_rejected"
	TransitionSessionExpired TransitionKind = "session_expired"
	TransitionLogout         TransitionKind = "logout"
)

// Transition is emitted whenever the guard changes the auth state, so that
// subscribers (metrics, audit log) can follow it without polling.
type Transition struct {
	Kind     TransitionKind
	Username string
	At       time.Time
}

// OnTransition registers fn. Listeners run after the guard lock is released
// and may call back into the guard.
func (g *Guard) OnTransition(fn func(Transition)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
}

func (g *Guard) notify(events []Transition) {
	if len(events) == 0 {
		return
	}
	g.mu.Lock()
	listeners := make([]func(Transition), len(g.listeners))
	copy(listeners, g.listeners)
	g.mu.Unlock()

	for _, e := range events {
		for _, fn := range listeners {
			fn(e)
		}
	}
}
