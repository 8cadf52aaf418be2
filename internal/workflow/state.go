// Package workflow implements the client-side ordering flow: session
// bootstrap, restaurant and menu browsing, cart assembly, order submission,
// and order history presentation. All persistent state lives behind the
// gateway; everything here is a transient copy.
package workflow

import (
	"sync"

	"lunareats/internal/models"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseInitializing    Phase = "initializing"
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticated   Phase = "authenticated"
)

// State is the full client-side application state. It is a value: transition
// functions take a State and return a new one, never mutating shared slices.
type State struct {
	Phase            Phase
	BackendConnected bool
	User             *models.User

	Restaurants        []models.Restaurant
	SelectedRestaurant *models.Restaurant
	MenuItems          []models.MenuItem
	Orders             []models.Order

	Cart           []models.CartLine
	DeliveryCrater string
	CartOpen       bool
}

// Store owns the State and serializes every mutation through one mutex.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore creates a store in the initializing phase.
func NewStore() *Store {
	return &Store{state: State{Phase: PhaseInitializing}}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// apply runs a transition function under the store's mutex.
func (s *Store) apply(fn func(State) State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
}

// addLine appends a staged copy of a menu item to the cart. Duplicates are
// allowed; the same item twice is two lines.
func addLine(s State, item models.MenuItem) State {
	lines := make([]models.CartLine, 0, len(s.Cart)+1)
	lines = append(lines, s.Cart...)
	lines = append(lines, models.LineFromMenuItem(item))
	s.Cart = lines
	return s
}

// clearCart drops every cart line.
func clearCart(s State) State {
	s.Cart = nil
	return s
}

// setDestination records the delivery crater.
func setDestination(s State, crater string) State {
	s.DeliveryCrater = crater
	return s
}

// setUser records the session identity and the matching phase.
func setUser(s State, user *models.User) State {
	s.User = user
	if user != nil {
		s.Phase = PhaseAuthenticated
	} else {
		s.Phase = PhaseUnauthenticated
	}
	return s
}
