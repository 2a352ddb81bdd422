package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"platewatch/internal/db"
	"platewatch/internal/metrics"
	"platewatch/internal/models"
	"platewatch/internal/storage"
)

// UpdateHandler handles price-update submission and moderation.
type UpdateHandler struct {
	db    *db.DB
	store *storage.Store
}

// NewUpdateHandler creates a new price-update handler.
func NewUpdateHandler(database *db.DB, store *storage.Store) *UpdateHandler {
	return &UpdateHandler{db: database, store: store}
}

// Submit accepts a multipart price-update submission with photo evidence.
// The restaurant and submitter are recorded as given; nothing checks they
// exist.
func (h *UpdateHandler) Submit(c fiber.Ctx) error {
	restaurantName := c.FormValue("restaurant_name")
	itemName := c.FormValue("item_name")
	newPrice := c.FormValue("new_price")
	submittedBy := c.FormValue("submitted_by")

	photo, err := c.FormFile("photo")
	if restaurantName == "" || itemName == "" || newPrice == "" || submittedBy == "" || err != nil {
		return jsonError(c, fiber.StatusBadRequest, "restaurant_name, item_name, new_price, submitted_by and photo are required")
	}

	f, err := photo.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	imagePath, err := h.store.SaveImage(restaurantName+"_"+itemName, f)
	if err != nil {
		return respondError(c, err)
	}

	update := &models.PriceUpdate{
		RestaurantName:      restaurantName,
		ItemName:            itemName,
		NewPrice:            newPrice,
		SubmittedByUsername: submittedBy,
		ImagePath:           &imagePath,
	}
	if err := h.db.CreatePriceUpdate(c.Context(), update); err != nil {
		return respondError(c, err)
	}

	metrics.RecordSubmission("price_update")

	return jsonCreated(c, fiber.Map{
		"message": "price update submitted successfully",
		"id":      update.ID,
	})
}

// pendingUpdateResponse is the moderation-queue projection. Old price and
// status are intentionally omitted.
type pendingUpdateResponse struct {
	ID             uuid.UUID `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	ItemName       string    `json:"item_name"`
	NewPrice       string    `json:"new_price"`
	SubmittedBy    string    `json:"submitted_by"`
	ImagePath      *string   `json:"image_path"`
}

// ListPending returns all price updates awaiting moderation.
func (h *UpdateHandler) ListPending(c fiber.Ctx) error {
	updates, err := h.db.GetPendingPriceUpdates(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	resp := make([]pendingUpdateResponse, len(updates))
	for i, u := range updates {
		resp[i] = pendingUpdateResponse{
			ID:             u.ID,
			RestaurantName: u.RestaurantName,
			ItemName:       u.ItemName,
			NewPrice:       u.NewPrice,
			SubmittedBy:    u.SubmittedByUsername,
			ImagePath:      u.ImagePath,
		}
	}

	return jsonSuccess(c, resp)
}

// Approve marks a price update approved.
func (h *UpdateHandler) Approve(c fiber.Ctx) error {
	return h.moderate(c, models.StatusApproved)
}

// Reject marks a price update rejected.
func (h *UpdateHandler) Reject(c fiber.Ctx) error {
	return h.moderate(c, models.StatusRejected)
}

// moderate sets the moderation status. Last write wins: there is no guard
// against re-moderating an already moderated update.
func (h *UpdateHandler) moderate(c fiber.Ctx, status string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid update id")
	}

	if err := h.db.SetPriceUpdateStatus(c.Context(), id, status); err != nil {
		return respondError(c, err)
	}

	metrics.RecordModeration(status)

	return jsonSuccess(c, fiber.Map{
		"message": "price update " + status,
	})
}
