package workflow

import "lunareats/internal/models"

// StatusBadge is the presentation of an order status.
type StatusBadge struct {
	Icon  string
	Color string
	Label string
}

var statusBadges = map[models.OrderStatus]StatusBadge{
	models.StatusPending:   {Icon: "clock", Color: "yellow", Label: "Pending"},
	models.StatusPreparing: {Icon: "cog", Color: "blue", Label: "Preparing"},
	models.StatusInTransit: {Icon: "truck", Color: "indigo", Label: "In Transit"},
	models.StatusDelivered: {Icon: "check-circle", Color: "green", Label: "Delivered"},
}

// BadgeFor maps a status to its badge. Unrecognized or missing statuses
// render as pending rather than failing.
func BadgeFor(status models.OrderStatus) StatusBadge {
	if badge, ok := statusBadges[status]; ok {
		return badge
	}
	return statusBadges[models.StatusPending]
}
