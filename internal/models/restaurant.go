package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant represents a listed restaurant. Rows are seeded out of band;
// the API only reads them.
type Restaurant struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Category      string    `json:"category"`
	Price         string    `json:"price"`
	Tags          string    `json:"tags"`
	Distance      string    `json:"distance"`
	Rating        *float64  `json:"rating"`
	OwnerUsername *string   `json:"owner_username"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
