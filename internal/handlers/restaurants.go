package handlers

import (
	"github.com/gofiber/fiber/v3"

	"platewatch/internal/db"
	"platewatch/internal/models"
)

// RestaurantHandler serves the read-only restaurant listing.
type RestaurantHandler struct {
	db *db.DB
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(database *db.DB) *RestaurantHandler {
	return &RestaurantHandler{db: database}
}

// List returns all restaurants.
func (h *RestaurantHandler) List(c fiber.Ctx) error {
	restaurants, err := h.db.GetAllRestaurants(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	// Ensure a non-null array in JSON
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}

	return jsonSuccess(c, restaurants)
}
