package repositories

import (
	"lunareats/internal/models"
)

// MenuItemRepository defines the interface for menu item data access.
type MenuItemRepository interface {
	GetByRestaurant(restaurantID string) ([]models.MenuItem, error)
	GetByID(id string) (*models.MenuItem, error)
	Create(item *models.MenuItem) error
}
