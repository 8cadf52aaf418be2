package services

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"lunareats/internal/models"
	"lunareats/internal/repositories"
	"lunareats/pkg/rabbitmq"

	"github.com/google/uuid"
)

// totalTolerance is the largest acceptable drift between the client-computed
// total and the total recomputed from current menu prices.
const totalTolerance = 0.01

// OrderEventPublisher publishes order lifecycle events.
type OrderEventPublisher interface {
	PublishOrderCreated(event rabbitmq.OrderEvent) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo      repositories.OrderRepository
	menuRepo       repositories.MenuItemRepository
	restaurantRepo repositories.RestaurantRepository
	publisher      OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, menuRepo repositories.MenuItemRepository, restaurantRepo repositories.RestaurantRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
		publisher:      publisher,
	}
}

// ListOrdersForUser retrieves a user's orders, newest first, with restaurants included.
func (s *OrderService) ListOrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetAllByUser(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder creates a new order for the given user.
//
// When the draft carries menu item IDs, the total is recomputed from current
// menu prices and the client-computed total must agree within a cent. The
// stored total is fixed at submission time and never recomputed afterwards.
func (s *OrderService) CreateOrder(userID string, draft models.OrderDraft) (*models.Order, error) {
	if strings.TrimSpace(draft.DeliveryCrater) == "" {
		return nil, fmt.Errorf("delivery crater is required")
	}

	restaurant, err := s.restaurantRepo.GetByID(draft.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("restaurant %s not found: %w", draft.RestaurantID, err)
	}

	total := draft.TotalPrice
	if len(draft.ItemIDs) > 0 {
		var serverTotal float64
		for _, itemID := range draft.ItemIDs {
			item, err := s.menuRepo.GetByID(itemID)
			if err != nil {
				return nil, fmt.Errorf("menu item %s not found: %w", itemID, err)
			}
			serverTotal += item.Price
		}
		if math.Abs(serverTotal-draft.TotalPrice) > totalTolerance {
			return nil, fmt.Errorf("order total mismatch: client sent %.2f, menu prices sum to %.2f", draft.TotalPrice, serverTotal)
		}
		total = serverTotal
	}

	newOrder := &models.Order{
		ID:             uuid.New().String(),
		UserID:         userID,
		RestaurantID:   restaurant.ID,
		Restaurant:     restaurant,
		DeliveryCrater: draft.DeliveryCrater,
		TotalPrice:     total,
		Status:         models.StatusPending, // Initial status
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// Event publishing is best effort; a broker outage must not fail the order.
	if s.publisher != nil {
		event := rabbitmq.OrderEvent{
			OrderID:      newOrder.ID,
			UserID:       newOrder.UserID,
			RestaurantID: newOrder.RestaurantID,
			Status:       string(newOrder.Status),
			TotalPrice:   newOrder.TotalPrice,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", newOrder.ID, err)
		}
	} else {
		log.Println("Order event publisher is not initialized. Skipping message publication.")
	}

	return newOrder, nil
}

// UpdateOrderStatus advances the status of an existing order. Transitions are
// monotonic: moving backwards through the lifecycle is rejected.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !status.Known() {
		return fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}

	if !order.Status.CanAdvanceTo(status) {
		return fmt.Errorf("cannot move order %s from %s back to %s", id, order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// ApplyOrderEvent applies a queue event to the order store. Status changes
// originate from the kitchen and courier systems; they go through the same
// monotonic transition check as the admin endpoint. Other event types carry
// nothing to apply and are logged.
func (s *OrderService) ApplyOrderEvent(event rabbitmq.OrderEvent) error {
	switch event.Type {
	case rabbitmq.EventOrderStatusChanged:
		if err := s.UpdateOrderStatus(event.OrderID, models.OrderStatus(event.Status)); err != nil {
			return fmt.Errorf("failed to apply status change for order %s: %w", event.OrderID, err)
		}
		log.Printf("Order %s advanced to %s", event.OrderID, event.Status)
		return nil
	default:
		log.Printf("Ignoring order event %s for order %s", event.Type, event.OrderID)
		return nil
	}
}
