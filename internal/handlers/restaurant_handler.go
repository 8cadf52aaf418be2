package handlers

import (
	"fmt"
	"log"
	"strings"

	"lunareats/internal/models"
	"lunareats/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RestaurantHandler handles HTTP requests for the restaurant catalog.
type RestaurantHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(service *services.CatalogService) *RestaurantHandler {
	return &RestaurantHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app. Reads are
// open to any authenticated user; writes are the admin seeding path.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	restaurantRoutes := router.Group("/restaurants")
	restaurantRoutes.Get("/", h.HandleGetRestaurants)
	restaurantRoutes.Get("/:id/menu", h.HandleGetMenu)
	restaurantRoutes.Post("/", admin, h.HandleCreateRestaurant)
	restaurantRoutes.Post("/:id/menu", admin, h.HandleCreateMenuItem)
}

// HandleGetRestaurants retrieves the full restaurant collection.
func (h *RestaurantHandler) HandleGetRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.service.ListRestaurants()
	if err != nil {
		log.Printf("Error getting restaurants: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve restaurants",
			"error":   err.Error(),
		})
	}
	return c.JSON(restaurants)
}

// HandleGetMenu retrieves the menu items for one restaurant.
func (h *RestaurantHandler) HandleGetMenu(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	items, err := h.service.ListMenu(restaurantID)
	if err != nil {
		log.Printf("Error getting menu for restaurant %s: %v", restaurantID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Restaurant with ID %s not found", restaurantID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve menu",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleCreateRestaurant adds a restaurant to the catalog.
func (h *RestaurantHandler) HandleCreateRestaurant(c *fiber.Ctx) error {
	var restaurant models.Restaurant
	if err := c.BodyParser(&restaurant); err != nil {
		log.Printf("Error parsing restaurant request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(restaurant); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateRestaurant(&restaurant); err != nil {
		log.Printf("Error creating restaurant: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create restaurant",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(restaurant)
}

// HandleCreateMenuItem adds a menu item to a restaurant.
func (h *RestaurantHandler) HandleCreateMenuItem(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing menu item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	item.RestaurantID = c.Params("id")

	if err := h.validate.Struct(item); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateMenuItem(&item); err != nil {
		log.Printf("Error creating menu item: %v", err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Restaurant with ID %s not found", item.RestaurantID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create menu item",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}
