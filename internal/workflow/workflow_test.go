package workflow_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"lunareats/internal/gateway"
	"lunareats/internal/models"
	"lunareats/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGateway is a mock implementation of gateway.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Probe(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGateway) CreateSession(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockGateway) DestroySession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGateway) CurrentIdentity(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockGateway) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *MockGateway) ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockGateway) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockGateway) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// alertRecorder captures user-facing alerts.
type alertRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (a *alertRecorder) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *alertRecorder) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}

func TestCartTotalRecomputedFromLines(t *testing.T) {
	assert.Zero(t, models.CartTotal(nil))
	assert.Zero(t, models.CartTotal([]models.CartLine{}))

	cart := []models.CartLine{
		{MenuItemID: "1", Name: "Moon Pie", Price: 12.50},
		{MenuItemID: "2", Name: "Crater Cola", Price: 7.25},
		{MenuItemID: "2", Name: "Crater Cola", Price: 7.25}, // duplicate line
	}
	assert.InDelta(t, 27.00, models.CartTotal(cart), 0.001)
}

func TestSubmitOrderPreconditionsBlockNetworkCalls(t *testing.T) {
	gw := new(MockGateway)
	alerts := &alertRecorder{}
	store := workflow.NewStore()
	checkout := workflow.NewCheckout(store, gw, alerts)
	browser := workflow.NewBrowser(store, gw)

	restaurant := models.Restaurant{ID: "rest-1", Name: "Mare Imbrium Grill"}
	gw.On("ListMenuItems", mock.Anything, "rest-1").Return([]models.MenuItem{}, nil)
	browser.SelectRestaurant(context.Background(), restaurant)

	// Empty cart
	checkout.SetDeliveryCrater("Tycho")
	checkout.SubmitOrder(context.Background())

	// Blank destination
	checkout.AddItem(models.MenuItem{ID: "item-1", Name: "Moon Pie", Price: 12.50})
	checkout.SetDeliveryCrater("   ")
	checkout.SubmitOrder(context.Background())

	gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	assert.Len(t, alerts.all(), 2)
	assert.Equal(t, "Please add items to your cart and specify a delivery crater.", alerts.all()[0])
}

func TestSubmitOrderSuccessResetsStateAndPrependsHistory(t *testing.T) {
	gw := new(MockGateway)
	alerts := &alertRecorder{}
	store := workflow.NewStore()
	checkout := workflow.NewCheckout(store, gw, alerts)
	browser := workflow.NewBrowser(store, gw)

	older := models.Order{ID: "order-old", Status: models.StatusDelivered}
	gw.On("ListOrders", mock.Anything).Return([]models.Order{older}, nil).Once()
	browser.LoadOrders(context.Background())

	restaurant := models.Restaurant{ID: "rest-1", Name: "Mare Imbrium Grill"}
	gw.On("ListMenuItems", mock.Anything, "rest-1").Return([]models.MenuItem{}, nil)
	browser.SelectRestaurant(context.Background(), restaurant)

	checkout.AddItem(models.MenuItem{ID: "item-1", Name: "Moon Pie", Price: 12.50})
	checkout.AddItem(models.MenuItem{ID: "item-2", Name: "Crater Cola", Price: 7.25})
	checkout.SetDeliveryCrater("Tranquility Base")
	checkout.OpenCart()

	created := &models.Order{
		ID:             "order-new",
		RestaurantID:   "rest-1",
		DeliveryCrater: "Tranquility Base",
		TotalPrice:     19.75,
		Status:         models.StatusPending,
	}
	gw.On("CreateOrder", mock.Anything, mock.MatchedBy(func(draft models.OrderDraft) bool {
		return draft.RestaurantID == "rest-1" &&
			draft.DeliveryCrater == "Tranquility Base" &&
			draft.TotalPrice > 19.74 && draft.TotalPrice < 19.76 &&
			len(draft.ItemIDs) == 2
	})).Return(created, nil).Once()

	checkout.SubmitOrder(context.Background())

	s := store.State()
	assert.Empty(t, s.Cart)
	assert.Empty(t, s.DeliveryCrater)
	assert.False(t, s.CartOpen)
	assert.Nil(t, s.SelectedRestaurant)
	require.Len(t, s.Orders, 2)
	assert.Equal(t, "order-new", s.Orders[0].ID)
	assert.Equal(t, "order-old", s.Orders[1].ID)
	assert.Contains(t, alerts.all(), "Order placed successfully!")
	gw.AssertExpectations(t)
}

func TestSubmitOrderFailureKeepsStateForRetry(t *testing.T) {
	gw := new(MockGateway)
	alerts := &alertRecorder{}
	store := workflow.NewStore()
	checkout := workflow.NewCheckout(store, gw, alerts)
	browser := workflow.NewBrowser(store, gw)

	restaurant := models.Restaurant{ID: "rest-1", Name: "Mare Imbrium Grill"}
	gw.On("ListMenuItems", mock.Anything, "rest-1").Return([]models.MenuItem{}, nil)
	browser.SelectRestaurant(context.Background(), restaurant)

	checkout.AddItem(models.MenuItem{ID: "item-1", Name: "Moon Pie", Price: 12.50})
	checkout.SetDeliveryCrater("Tycho")

	gw.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("backend exploded")).Once()
	checkout.SubmitOrder(context.Background())

	s := store.State()
	assert.Len(t, s.Cart, 1)
	assert.Equal(t, "Tycho", s.DeliveryCrater)
	require.NotNil(t, s.SelectedRestaurant)
	assert.Equal(t, "rest-1", s.SelectedRestaurant.ID)
	assert.Empty(t, s.Orders)
	assert.Contains(t, alerts.all(), "There was an error placing your order.")
}

func TestSelectRestaurantReplacesMenuEntirely(t *testing.T) {
	gw := new(MockGateway)
	store := workflow.NewStore()
	browser := workflow.NewBrowser(store, gw)

	menuA := []models.MenuItem{{ID: "a-1", Name: "Moon Pie"}, {ID: "a-2", Name: "Regolith Ramen"}}
	menuB := []models.MenuItem{{ID: "b-1", Name: "Crater Cola"}}
	gw.On("ListMenuItems", mock.Anything, "rest-a").Return(menuA, nil).Once()
	gw.On("ListMenuItems", mock.Anything, "rest-b").Return(menuB, nil).Once()

	browser.SelectRestaurant(context.Background(), models.Restaurant{ID: "rest-a"})
	assert.Equal(t, menuA, store.State().MenuItems)

	browser.SelectRestaurant(context.Background(), models.Restaurant{ID: "rest-b"})
	s := store.State()
	assert.Equal(t, menuB, s.MenuItems)
	require.NotNil(t, s.SelectedRestaurant)
	assert.Equal(t, "rest-b", s.SelectedRestaurant.ID)
}

// blockingGateway stalls one menu fetch until released, to simulate a slow
// response arriving after the user has already switched restaurants.
type blockingGateway struct {
	MockGateway
	block   chan struct{} // closed to release the stalled fetch
	started chan struct{} // closed once the stalled fetch is in flight
}

func (g *blockingGateway) ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	if restaurantID == "rest-slow" {
		close(g.started)
		<-g.block
		return []models.MenuItem{{ID: "slow-1", Name: "Stale Scone"}}, nil
	}
	return []models.MenuItem{{ID: "fast-1", Name: "Fresh Fries"}}, nil
}

func TestStaleMenuResponseIsDiscarded(t *testing.T) {
	gw := &blockingGateway{
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	store := workflow.NewStore()
	browser := workflow.NewBrowser(store, gw)

	done := make(chan struct{})
	go func() {
		browser.SelectRestaurant(context.Background(), models.Restaurant{ID: "rest-slow"})
		close(done)
	}()

	<-gw.started
	// The user switches restaurants while the first fetch is still in flight.
	browser.SelectRestaurant(context.Background(), models.Restaurant{ID: "rest-fast"})

	close(gw.block)
	<-done

	s := store.State()
	require.Len(t, s.MenuItems, 1)
	assert.Equal(t, "Fresh Fries", s.MenuItems[0].Name)
	require.NotNil(t, s.SelectedRestaurant)
	assert.Equal(t, "rest-fast", s.SelectedRestaurant.ID)
}

func TestLoadRestaurantsFailureKeepsPriorList(t *testing.T) {
	gw := new(MockGateway)
	store := workflow.NewStore()
	browser := workflow.NewBrowser(store, gw)

	restaurants := []models.Restaurant{{ID: "rest-1", Name: "Mare Imbrium Grill"}}
	gw.On("ListRestaurants", mock.Anything).Return(restaurants, nil).Once()
	browser.LoadRestaurants(context.Background())
	assert.Equal(t, restaurants, store.State().Restaurants)

	gw.On("ListRestaurants", mock.Anything).Return(nil, fmt.Errorf("backend unavailable")).Once()
	browser.LoadRestaurants(context.Background())
	assert.Equal(t, restaurants, store.State().Restaurants) // prior list untouched
}

func TestBadgeForUnknownStatusRendersPending(t *testing.T) {
	assert.Equal(t, "Pending", workflow.BadgeFor(models.StatusPending).Label)
	assert.Equal(t, "Preparing", workflow.BadgeFor(models.StatusPreparing).Label)
	assert.Equal(t, "In Transit", workflow.BadgeFor(models.StatusInTransit).Label)
	assert.Equal(t, "Delivered", workflow.BadgeFor(models.StatusDelivered).Label)

	assert.Equal(t, "Pending", workflow.BadgeFor("teleported").Label)
	assert.Equal(t, "Pending", workflow.BadgeFor("").Label)
}

func TestMoonPieCheckoutScenario(t *testing.T) {
	gw := new(MockGateway)
	alerts := &alertRecorder{}
	store := workflow.NewStore()
	checkout := workflow.NewCheckout(store, gw, alerts)
	browser := workflow.NewBrowser(store, gw)

	restaurant := models.Restaurant{ID: "rest-1", Name: "Mare Imbrium Grill"}
	gw.On("ListMenuItems", mock.Anything, "rest-1").Return([]models.MenuItem{}, nil)
	browser.SelectRestaurant(context.Background(), restaurant)

	checkout.AddItem(models.MenuItem{ID: "1", Name: "Moon Pie", Price: 12.50})
	checkout.AddItem(models.MenuItem{ID: "2", Name: "Crater Cola", Price: 7.25})
	checkout.SetDeliveryCrater("Tranquility Base")

	assert.Equal(t, "$19.75", models.FormatUSD(checkout.Total()))

	created := &models.Order{ID: "order-1", Status: models.StatusPending, TotalPrice: 19.75}
	gw.On("CreateOrder", mock.Anything, mock.Anything).Return(created, nil).Once()
	checkout.SubmitOrder(context.Background())

	assert.Equal(t, "Your cart is empty.", checkout.Summary())
	assert.Contains(t, alerts.all(), "Order placed successfully!")
}

func TestInitializeProbeFailureLandsDisconnected(t *testing.T) {
	gw := new(MockGateway)
	alerts := &alertRecorder{}
	store := workflow.NewStore()
	session := workflow.NewSession(store, gw, alerts)

	assert.Equal(t, workflow.PhaseInitializing, store.State().Phase)

	gw.On("Probe", mock.Anything).Return(fmt.Errorf("connection refused")).Once()
	session.Initialize(context.Background())

	s := store.State()
	assert.False(t, s.BackendConnected)
	assert.Equal(t, workflow.PhaseUnauthenticated, s.Phase)
	assert.Nil(t, s.User)
	// A stored session token is irrelevant: identity is never resolved.
	gw.AssertNotCalled(t, "CurrentIdentity", mock.Anything)
	assert.Empty(t, alerts.all())
}

func TestInitializeRestoresSession(t *testing.T) {
	gw := new(MockGateway)
	store := workflow.NewStore()
	session := workflow.NewSession(store, gw, &alertRecorder{})

	user := &models.User{ID: "user-1", Name: "Demo Customer", Role: models.RoleCustomer}
	gw.On("Probe", mock.Anything).Return(nil).Once()
	gw.On("CurrentIdentity", mock.Anything).Return(user, nil).Once()
	session.Initialize(context.Background())

	s := store.State()
	assert.True(t, s.BackendConnected)
	assert.Equal(t, workflow.PhaseAuthenticated, s.Phase)
	assert.Equal(t, user, s.User)
}

func TestInitializeWithoutSessionFallsBackSilently(t *testing.T) {
	gw := new(MockGateway)
	alerts := &alertRecorder{}
	store := workflow.NewStore()
	session := workflow.NewSession(store, gw, alerts)

	gw.On("Probe", mock.Anything).Return(nil).Once()
	gw.On("CurrentIdentity", mock.Anything).Return(nil, gateway.ErrNoSession).Once()
	session.Initialize(context.Background())

	s := store.State()
	assert.True(t, s.BackendConnected)
	assert.Equal(t, workflow.PhaseUnauthenticated, s.Phase)
	assert.Nil(t, s.User)
	assert.Empty(t, alerts.all()) // no session is not an error
}

func TestLoginInvalidCredentials(t *testing.T) {
	gw := new(MockGateway)
	alerts := &alertRecorder{}
	store := workflow.NewStore()
	session := workflow.NewSession(store, gw, alerts)

	gw.On("CreateSession", mock.Anything, "customer@lunareats.io", "wrong").
		Return(fmt.Errorf("invalid credentials")).Once()
	session.Login(context.Background(), "customer@lunareats.io", "wrong")

	s := store.State()
	assert.Equal(t, workflow.PhaseUnauthenticated, s.Phase)
	assert.Nil(t, s.User)
	assert.Contains(t, alerts.all(), "Login failed. Please check your credentials.")
	gw.AssertNotCalled(t, "CurrentIdentity", mock.Anything)
}

func TestLoginAndLogout(t *testing.T) {
	gw := new(MockGateway)
	store := workflow.NewStore()
	session := workflow.NewSession(store, gw, &alertRecorder{})

	user := &models.User{ID: "user-1", Name: "Demo Customer"}
	gw.On("CreateSession", mock.Anything, "customer@lunareats.io", "password").Return(nil).Once()
	gw.On("CurrentIdentity", mock.Anything).Return(user, nil).Once()
	session.Login(context.Background(), "customer@lunareats.io", "password")

	assert.Equal(t, workflow.PhaseAuthenticated, store.State().Phase)
	assert.Equal(t, user, store.State().User)

	gw.On("DestroySession", mock.Anything).Return(nil).Once()
	session.Logout(context.Background())

	s := store.State()
	assert.Equal(t, workflow.PhaseUnauthenticated, s.Phase)
	assert.Nil(t, s.User)
	gw.AssertExpectations(t)
}

func TestCartPersistsAcrossRestaurantNavigation(t *testing.T) {
	gw := new(MockGateway)
	store := workflow.NewStore()
	checkout := workflow.NewCheckout(store, gw, &alertRecorder{})
	browser := workflow.NewBrowser(store, gw)

	gw.On("ListMenuItems", mock.Anything, mock.Anything).Return([]models.MenuItem{}, nil)

	browser.SelectRestaurant(context.Background(), models.Restaurant{ID: "rest-a"})
	checkout.AddItem(models.MenuItem{ID: "a-1", Name: "Moon Pie", Price: 12.50})

	browser.ClearSelection()
	browser.SelectRestaurant(context.Background(), models.Restaurant{ID: "rest-b"})
	checkout.AddItem(models.MenuItem{ID: "b-1", Name: "Crater Cola", Price: 7.25})

	s := store.State()
	assert.Len(t, s.Cart, 2) // lines from both restaurants coexist
	assert.InDelta(t, 19.75, models.CartTotal(s.Cart), 0.001)
}
