// Package guard gates navigation on session state. Two states only,
// driven by the session store: there is no loading state beyond the one
// initial check performed at construction.
package guard

import (
	"sync"

	"churchtrack.com/churchtrack/session"
)

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

const (
	LoginPath   = "/login"
	DefaultPath = "/dashboard"
)

// Decision is the outcome of a navigation check: either proceed, or go
// somewhere else first.
type Decision struct {
	Allow      bool
	RedirectTo string
}

type Guard struct {
	sessions *session.Store

	mu    sync.Mutex
	state State
}

// New builds a guard and performs the initial session check, so the first
// routing decision never races a cold store.
func New(sessions *session.Store) *Guard {
	g := &Guard{sessions: sessions}
	g.Refresh()
	return g
}

// Refresh re-reads the session store, the single source of truth.
func (g *Guard) Refresh() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sessions.Current() != nil {
		g.state = Authenticated
	} else {
		g.state = Unauthenticated
	}
	return g.state
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// HandleUnauthenticated is wired as the API client's rejection callback.
// By the time it fires the store is already torn down; the guard just
// records the transition.
func (g *Guard) HandleUnauthenticated() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Unauthenticated
}

// Decide gates entry to a view. Protected views require an authenticated
// session; the login view bounces an already-authenticated admin to the
// default protected view.
func (g *Guard) Decide(protected bool) Decision {
	authenticated := g.Refresh() == Authenticated
	if protected && !authenticated {
		return Decision{RedirectTo: LoginPath}
	}
	if !protected && authenticated {
		return Decision{RedirectTo: DefaultPath}
	}
	return Decision{Allow: true}
}
