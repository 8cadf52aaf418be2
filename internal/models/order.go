package models

import "time"

// OrderStatus is the delivery lifecycle state of an order. Only the backend
// (admin endpoint or broker consumer) advances it; the customer workflow
// merely renders whatever value is reported.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusInTransit OrderStatus = "in_transit"
	StatusDelivered OrderStatus = "delivered"
)

// statusRank orders the lifecycle. Transitions must be monotonic: an order
// never moves to a lower rank.
var statusRank = map[OrderStatus]int{
	StatusPending:   0,
	StatusPreparing: 1,
	StatusInTransit: 2,
	StatusDelivered: 3,
}

// Known reports whether s is one of the fixed lifecycle statuses.
func (s OrderStatus) Known() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next keeps the lifecycle
// monotonic. Forward jumps are allowed, backwards moves are not.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// Order represents a placed customer order.
type Order struct {
	ID             string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string      `json:"user_id" gorm:"type:varchar(36);index"`
	RestaurantID   string      `json:"restaurant_id" gorm:"type:varchar(36);index"`
	Restaurant     *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	DeliveryCrater string      `json:"delivery_crater"`
	TotalPrice     float64     `json:"total_price"` // Fixed at submission time, never recomputed later
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// OrderDraft is the submission payload for a new order. ItemIDs carries the
// menu items behind the client-computed total so the server can verify it.
type OrderDraft struct {
	RestaurantID   string   `json:"restaurant_id" validate:"required"`
	DeliveryCrater string   `json:"delivery_crater" validate:"required"`
	TotalPrice     float64  `json:"total_price" validate:"gte=0"`
	ItemIDs        []string `json:"item_ids"`
}
