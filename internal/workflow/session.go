package workflow

import (
	"context"
	"log"

	"lunareats/internal/gateway"
)

// Session drives the session lifecycle: bootstrap, login, logout.
type Session struct {
	store   *Store
	gw      gateway.Gateway
	alerter Alerter
}

// NewSession creates a session controller over the store and gateway.
func NewSession(store *Store, gw gateway.Gateway, alerter Alerter) *Session {
	return &Session{
		store:   store,
		gw:      gw,
		alerter: alerter,
	}
}

// Initialize probes backend reachability once, then attempts to restore an
// existing session. An unreachable backend leaves the client disconnected
// and unauthenticated; a failed identity resolution is not an error, just
// the absence of an active session.
func (c *Session) Initialize(ctx context.Context) {
	if err := c.gw.Probe(ctx); err != nil {
		log.Printf("Backend connection failed: %v", err)
		c.store.apply(func(s State) State {
			s.BackendConnected = false
			return setUser(s, nil)
		})
		return
	}

	c.store.apply(func(s State) State {
		s.BackendConnected = true
		return s
	})

	user, err := c.gw.CurrentIdentity(ctx)
	if err != nil {
		// No active session; fall back to the landing screen silently.
		c.store.apply(func(s State) State { return setUser(s, nil) })
		return
	}
	c.store.apply(func(s State) State { return setUser(s, user) })
}

// Login opens a session and resolves the identity behind it. Any failure
// surfaces as an alert and leaves the client unauthenticated with no
// partial state.
func (c *Session) Login(ctx context.Context, email, password string) {
	if err := c.gw.CreateSession(ctx, email, password); err != nil {
		log.Printf("Login failed: %v", err)
		c.alerter.Alert("Login failed. Please check your credentials.")
		c.store.apply(func(s State) State { return setUser(s, nil) })
		return
	}

	user, err := c.gw.CurrentIdentity(ctx)
	if err != nil {
		log.Printf("Login failed: %v", err)
		c.alerter.Alert("Login failed. Please check your credentials.")
		c.store.apply(func(s State) State { return setUser(s, nil) })
		return
	}

	c.store.apply(func(s State) State { return setUser(s, user) })
}

// Logout terminates the session unconditionally and returns to the landing
// screen. Destroy errors are ignorable; the session is gone either way.
func (c *Session) Logout(ctx context.Context) {
	_ = c.gw.DestroySession(ctx)
	c.store.apply(func(s State) State { return setUser(s, nil) })
}
