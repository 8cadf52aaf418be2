package services

import (
	"fmt"

	"lunareats/internal/models"
	"lunareats/internal/repositories"
)

// CatalogService handles business logic for browsing restaurants and menus.
type CatalogService struct {
	restaurantRepo repositories.RestaurantRepository
	menuRepo       repositories.MenuItemRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(restaurantRepo repositories.RestaurantRepository, menuRepo repositories.MenuItemRepository) *CatalogService {
	return &CatalogService{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
	}
}

// ListRestaurants retrieves the full restaurant collection.
func (s *CatalogService) ListRestaurants() ([]models.Restaurant, error) {
	return s.restaurantRepo.GetAll()
}

// GetRestaurantByID retrieves a single restaurant by its ID.
func (s *CatalogService) GetRestaurantByID(id string) (*models.Restaurant, error) {
	return s.restaurantRepo.GetByID(id)
}

// ListMenu retrieves the menu items for a restaurant. The restaurant must exist.
func (s *CatalogService) ListMenu(restaurantID string) ([]models.MenuItem, error) {
	if _, err := s.restaurantRepo.GetByID(restaurantID); err != nil {
		return nil, err
	}
	return s.menuRepo.GetByRestaurant(restaurantID)
}

// CreateRestaurant adds a restaurant to the catalog. Admin/seed path only.
func (s *CatalogService) CreateRestaurant(restaurant *models.Restaurant) error {
	return s.restaurantRepo.Create(restaurant)
}

// CreateMenuItem adds a menu item to a restaurant's menu. Admin/seed path only.
func (s *CatalogService) CreateMenuItem(item *models.MenuItem) error {
	if _, err := s.restaurantRepo.GetByID(item.RestaurantID); err != nil {
		return fmt.Errorf("cannot add menu item: %w", err)
	}
	return s.menuRepo.Create(item)
}
