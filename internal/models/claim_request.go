package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimRequest represents a user's assertion of ownership over a restaurant
// listing, pending administrative verification.
type ClaimRequest struct {
	ID                  uuid.UUID `json:"id"`
	RestaurantName      string    `json:"restaurant_name"`
	ContactName         string    `json:"contact_name"`
	ContactEmail        string    `json:"contact_email"`
	Phone               *string   `json:"phone"`
	Message             *string   `json:"message"`
	SubmittedByUsername string    `json:"submitted_by"`
	ProofImagePath      *string   `json:"proof_image_path"`
	Status              string    `json:"status"` // pending, approved, rejected
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
