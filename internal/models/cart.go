package models

import "fmt"

// CartLine is a client-local staged copy of a menu item awaiting submission.
// It has no identity beyond its position in the cart and is never persisted.
type CartLine struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

// LineFromMenuItem copies the fields of a menu item into a cart line.
func LineFromMenuItem(item MenuItem) CartLine {
	return CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
	}
}

// CartTotal sums the line prices. Zero for an empty cart. Callers recompute
// on every read; the total is never cached.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price
	}
	return total
}

// FormatUSD renders an amount the way the order screens display it, e.g. "$19.75".
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
