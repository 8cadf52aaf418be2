package workflow

import (
	"context"
	"log"
	"strings"

	"lunareats/internal/gateway"
	"lunareats/internal/models"
)

// Checkout accumulates cart lines and submits orders.
type Checkout struct {
	store   *Store
	gw      gateway.Gateway
	alerter Alerter
}

// NewCheckout creates a checkout over the store and gateway.
func NewCheckout(store *Store, gw gateway.Gateway, alerter Alerter) *Checkout {
	return &Checkout{
		store:   store,
		gw:      gw,
		alerter: alerter,
	}
}

// AddItem stages a copy of a menu item in the cart. No stock or
// availability check; the same item may be added repeatedly.
func (c *Checkout) AddItem(item models.MenuItem) {
	c.store.apply(func(s State) State { return addLine(s, item) })
}

// SetDeliveryCrater records the delivery destination.
func (c *Checkout) SetDeliveryCrater(crater string) {
	c.store.apply(func(s State) State { return setDestination(s, crater) })
}

// OpenCart shows the cart panel.
func (c *Checkout) OpenCart() {
	c.store.apply(func(s State) State {
		s.CartOpen = true
		return s
	})
}

// CloseCart hides the cart panel.
func (c *Checkout) CloseCart() {
	c.store.apply(func(s State) State {
		s.CartOpen = false
		return s
	})
}

// Total recomputes the cart total from the current lines. Never cached.
func (c *Checkout) Total() float64 {
	return models.CartTotal(c.store.State().Cart)
}

// Summary renders the cart lines for display, one "name price" row per
// line, or the empty-cart message.
func (c *Checkout) Summary() string {
	cart := c.store.State().Cart
	if len(cart) == 0 {
		return "Your cart is empty."
	}
	rows := make([]string, 0, len(cart))
	for _, line := range cart {
		rows = append(rows, line.Name+" "+models.FormatUSD(line.Price))
	}
	return strings.Join(rows, "\n")
}

// SubmitOrder validates the cart and destination, then submits the order.
//
// A validation failure alerts and performs no gateway call. On success the
// new order is prepended to the history and the cart, destination, panel,
// and restaurant selection are all reset. On failure everything is left in
// place so the user can retry.
func (c *Checkout) SubmitOrder(ctx context.Context) {
	s := c.store.State()
	if len(s.Cart) == 0 || strings.TrimSpace(s.DeliveryCrater) == "" || s.SelectedRestaurant == nil {
		c.alerter.Alert("Please add items to your cart and specify a delivery crater.")
		return
	}

	itemIDs := make([]string, 0, len(s.Cart))
	for _, line := range s.Cart {
		itemIDs = append(itemIDs, line.MenuItemID)
	}

	draft := models.OrderDraft{
		RestaurantID:   s.SelectedRestaurant.ID,
		DeliveryCrater: s.DeliveryCrater,
		TotalPrice:     models.CartTotal(s.Cart),
		ItemIDs:        itemIDs,
	}

	order, err := c.gw.CreateOrder(ctx, draft)
	if err != nil {
		log.Printf("Failed to place order: %v", err)
		c.alerter.Alert("There was an error placing your order.")
		return
	}

	c.store.apply(func(s State) State {
		orders := make([]models.Order, 0, len(s.Orders)+1)
		orders = append(orders, *order)
		orders = append(orders, s.Orders...)
		s.Orders = orders
		s = clearCart(s)
		s = setDestination(s, "")
		s.CartOpen = false
		s.SelectedRestaurant = nil
		s.MenuItems = nil
		return s
	})
	c.alerter.Alert("Order placed successfully!")
}
