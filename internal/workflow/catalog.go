package workflow

import (
	"context"
	"log"

	"lunareats/internal/gateway"
	"lunareats/internal/models"
)

// Browser loads the restaurant catalog, per-restaurant menus, and the order
// history. Fetch failures are logged and leave prior data untouched; the
// catalog never raises user-facing alerts.
type Browser struct {
	store *Store
	gw    gateway.Gateway

	// menuGen invalidates in-flight menu fetches: a response whose
	// generation is no longer current belongs to a superseded selection
	// and is discarded.
	menuGen uint64
}

// NewBrowser creates a catalog browser over the store and gateway.
func NewBrowser(store *Store, gw gateway.Gateway) *Browser {
	return &Browser{
		store: store,
		gw:    gw,
	}
}

// LoadRestaurants fetches the full restaurant collection. An empty result
// replaces the list with an empty one; a failure keeps whatever was loaded
// before.
func (b *Browser) LoadRestaurants(ctx context.Context) {
	restaurants, err := b.gw.ListRestaurants(ctx)
	if err != nil {
		log.Printf("Failed to load restaurants: %v", err)
		return
	}
	b.store.apply(func(s State) State {
		s.Restaurants = restaurants
		return s
	})
}

// LoadOrders fetches the order history, newest first. Independent of
// LoadRestaurants; the two may run concurrently.
func (b *Browser) LoadOrders(ctx context.Context) {
	orders, err := b.gw.ListOrders(ctx)
	if err != nil {
		log.Printf("Failed to load orders: %v", err)
		return
	}
	b.store.apply(func(s State) State {
		s.Orders = orders
		return s
	})
}

// SelectRestaurant makes restaurant the active selection and fetches its
// menu, replacing any previously loaded one. A stale response, superseded
// by a later selection, is discarded.
func (b *Browser) SelectRestaurant(ctx context.Context, restaurant models.Restaurant) {
	var gen uint64
	b.store.apply(func(s State) State {
		b.menuGen++
		gen = b.menuGen
		r := restaurant
		s.SelectedRestaurant = &r
		return s
	})

	items, err := b.gw.ListMenuItems(ctx, restaurant.ID)
	if err != nil {
		log.Printf("Failed to load menu for restaurant %s: %v", restaurant.ID, err)
		return
	}

	b.store.apply(func(s State) State {
		if gen != b.menuGen {
			// A newer selection owns the menu now.
			return s
		}
		s.MenuItems = items
		return s
	})
}

// ClearSelection returns to the restaurant list. The cart is deliberately
// left intact across restaurant navigation.
func (b *Browser) ClearSelection() {
	b.store.apply(func(s State) State {
		s.SelectedRestaurant = nil
		s.MenuItems = nil
		return s
	})
}
