package repositories

import (
	"lunareats/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAllByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	// Delete(id string) error // Orders are never deleted, only advanced through the lifecycle.
}
