package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"platewatch/internal/db"
	"platewatch/internal/metrics"
	"platewatch/internal/models"
	"platewatch/internal/storage"
)

// ClaimHandler handles restaurant-claim submission and listing.
//
// Claims carry the same three-state moderation lifecycle as price updates,
// but no approve/reject route is exposed yet; verification happens out of
// band.
type ClaimHandler struct {
	db    *db.DB
	store *storage.Store
}

// NewClaimHandler creates a new claim handler.
func NewClaimHandler(database *db.DB, store *storage.Store) *ClaimHandler {
	return &ClaimHandler{db: database, store: store}
}

// Submit accepts a multipart ownership-claim submission with proof image.
func (h *ClaimHandler) Submit(c fiber.Ctx) error {
	restaurantName := c.FormValue("restaurantName")
	contactName := c.FormValue("contactName")
	contactEmail := c.FormValue("contactEmail")
	phone := c.FormValue("phone")
	message := c.FormValue("message")
	submittedBy := c.FormValue("submitted_by_username")

	proof, err := c.FormFile("proofImage")
	if restaurantName == "" || contactName == "" || contactEmail == "" || submittedBy == "" || err != nil {
		return jsonError(c, fiber.StatusBadRequest, "restaurantName, contactName, contactEmail, submitted_by_username and proofImage are required")
	}

	f, err := proof.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	proofPath, err := h.store.SaveImage("claim_"+restaurantName, f)
	if err != nil {
		return respondError(c, err)
	}

	claim := &models.ClaimRequest{
		RestaurantName:      restaurantName,
		ContactName:         contactName,
		ContactEmail:        contactEmail,
		Phone:               nilIfEmpty(phone),
		Message:             nilIfEmpty(message),
		SubmittedByUsername: submittedBy,
		ProofImagePath:      &proofPath,
	}
	if err := h.db.CreateClaimRequest(c.Context(), claim); err != nil {
		return respondError(c, err)
	}

	metrics.RecordSubmission("claim_request")

	return jsonCreated(c, fiber.Map{
		"message": "claim request submitted successfully",
		"id":      claim.ID,
	})
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// pendingClaimResponse is the verification-queue projection.
type pendingClaimResponse struct {
	ID             uuid.UUID `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	ContactName    string    `json:"contact_name"`
	ContactEmail   string    `json:"contact_email"`
	Phone          *string   `json:"phone"`
	Message        *string   `json:"message"`
	SubmittedBy    string    `json:"submitted_by"`
	ProofImagePath *string   `json:"proof_image_path"`
}

// ListPending returns all claim requests awaiting verification.
func (h *ClaimHandler) ListPending(c fiber.Ctx) error {
	claims, err := h.db.GetPendingClaimRequests(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	resp := make([]pendingClaimResponse, len(claims))
	for i, cl := range claims {
		resp[i] = pendingClaimResponse{
			ID:             cl.ID,
			RestaurantName: cl.RestaurantName,
			ContactName:    cl.ContactName,
			ContactEmail:   cl.ContactEmail,
			Phone:          cl.Phone,
			Message:        cl.Message,
			SubmittedBy:    cl.SubmittedByUsername,
			ProofImagePath: cl.ProofImagePath,
		}
	}

	return jsonSuccess(c, resp)
}
