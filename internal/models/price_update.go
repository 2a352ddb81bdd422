package models

import (
	"time"

	"github.com/google/uuid"
)

// Moderation status constants, shared by price updates and claim requests.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PriceUpdate represents a crowdsourced menu-price correction awaiting
// moderation. Prices are stored as submitted; the service does not parse
// them.
type PriceUpdate struct {
	ID                  uuid.UUID `json:"id"`
	RestaurantName      string    `json:"restaurant_name"`
	ItemName            string    `json:"item_name"`
	OldPrice            *string   `json:"old_price"`
	NewPrice            string    `json:"new_price"`
	SubmittedByUsername string    `json:"submitted_by"`
	Status              string    `json:"status"` // pending, approved, rejected
	ImagePath           *string   `json:"image_path"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// IsPending returns true if the update has not been moderated yet.
func (p *PriceUpdate) IsPending() bool {
	return p.Status == StatusPending
}
