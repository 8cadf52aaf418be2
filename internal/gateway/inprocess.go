package gateway

import (
	"context"
	"fmt"
	"sync"

	"lunareats/internal/models"
	"lunareats/internal/services"
)

// InProcess binds the Gateway contract directly to the backend services.
// It holds the session token the way a browser client would, so identity
// resolution goes through the same JWT path as the HTTP surface.
type InProcess struct {
	auth    *services.AuthService
	catalog *services.CatalogService
	orders  *services.OrderService

	mu    sync.Mutex
	token string
}

// NewInProcess creates a gateway bound to the given services.
func NewInProcess(auth *services.AuthService, catalog *services.CatalogService, orders *services.OrderService) *InProcess {
	return &InProcess{
		auth:    auth,
		catalog: catalog,
		orders:  orders,
	}
}

// Probe reports reachability. The in-process backend is reachable whenever
// its services are wired.
func (g *InProcess) Probe(ctx context.Context) error {
	if g.auth == nil || g.catalog == nil || g.orders == nil {
		return fmt.Errorf("backend services are not wired")
	}
	return nil
}

// CreateSession authenticates and stores the issued token as the session.
func (g *InProcess) CreateSession(ctx context.Context, email, password string) error {
	token, err := g.auth.LoginUser(email, password)
	if err != nil {
		return err
	}
	g.mu.Lock()
	g.token = token
	g.mu.Unlock()
	return nil
}

// DestroySession drops the session token. Idempotent.
func (g *InProcess) DestroySession(ctx context.Context) error {
	g.mu.Lock()
	g.token = ""
	g.mu.Unlock()
	return nil
}

// CurrentIdentity resolves the user behind the session token.
func (g *InProcess) CurrentIdentity(ctx context.Context) (*models.User, error) {
	userID, err := g.sessionUserID()
	if err != nil {
		return nil, err
	}
	user, err := g.auth.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// ListRestaurants fetches the full restaurant collection.
func (g *InProcess) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return g.catalog.ListRestaurants()
}

// ListMenuItems fetches a restaurant's menu.
func (g *InProcess) ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	return g.catalog.ListMenu(restaurantID)
}

// ListOrders fetches the session user's order history, newest first.
func (g *InProcess) ListOrders(ctx context.Context) ([]models.Order, error) {
	userID, err := g.sessionUserID()
	if err != nil {
		return nil, err
	}
	return g.orders.ListOrdersForUser(userID)
}

// CreateOrder submits a new order for the session user.
func (g *InProcess) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	userID, err := g.sessionUserID()
	if err != nil {
		return nil, err
	}
	return g.orders.CreateOrder(userID, draft)
}

// sessionUserID validates the held token and extracts its subject.
func (g *InProcess) sessionUserID() (string, error) {
	g.mu.Lock()
	token := g.token
	g.mu.Unlock()

	if token == "" {
		return "", ErrNoSession
	}
	claims, err := g.auth.ValidateToken(token)
	if err != nil {
		return "", ErrNoSession
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrNoSession
	}
	return userID, nil
}
