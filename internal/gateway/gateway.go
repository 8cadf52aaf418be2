// Package gateway defines the remote-data-access contract the ordering
// workflow is written against. The backend behind it owns all persistent
// state and authentication; the workflow only ever holds transient copies.
package gateway

import (
	"context"
	"errors"

	"lunareats/internal/models"
)

// ErrNoSession is returned by identity and order operations when no session
// is active.
var ErrNoSession = errors.New("no active session")

// Gateway is the boundary between the client workflow and the backend.
//
// No operation retries or re-authenticates; every failure is terminal for
// that attempt and surfaces to the caller.
type Gateway interface {
	// Probe checks backend reachability. A single attempt, no retry loop.
	Probe(ctx context.Context) error

	// CreateSession authenticates and opens a session. Fails on invalid
	// credentials.
	CreateSession(ctx context.Context, email, password string) error

	// DestroySession terminates the session. Idempotent; destroying an
	// absent session is not an error.
	DestroySession(ctx context.Context) error

	// CurrentIdentity resolves the session's user, or fails with
	// ErrNoSession when none is active.
	CurrentIdentity(ctx context.Context) (*models.User, error)

	// ListRestaurants fetches the full restaurant collection.
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)

	// ListMenuItems fetches the menu items filtered by restaurant.
	ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error)

	// ListOrders fetches the session user's orders, restaurant included,
	// newest first.
	ListOrders(ctx context.Context) ([]models.Order, error)

	// CreateOrder submits a new order and returns the created record with
	// its server-assigned ID and default status.
	CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error)
}
