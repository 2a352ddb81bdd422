package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"platewatch/internal/models"
)

// foreignKeyViolation is the Postgres error code for FK constraint violations.
const foreignKeyViolation = "23503"

// CreateClaimRequest inserts a new claim request with status pending.
// The submitting user must exist; the FK constraint enforces it.
func (d *DB) CreateClaimRequest(ctx context.Context, claim *models.ClaimRequest) error {
	query := `
		INSERT INTO claim_requests (restaurant_name, contact_name, contact_email, phone, message, submitted_by_username, proof_image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at, updated_at
	`

	err := d.Pool.QueryRow(ctx, query,
		claim.RestaurantName,
		claim.ContactName,
		claim.ContactEmail,
		claim.Phone,
		claim.Message,
		claim.SubmittedByUsername,
		claim.ProofImagePath,
	).Scan(&claim.ID, &claim.Status, &claim.CreatedAt, &claim.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return ErrUnknownSubmitter
		}
		return err
	}
	return nil
}

// GetPendingClaimRequests retrieves all claim requests still awaiting
// verification, oldest first.
func (d *DB) GetPendingClaimRequests(ctx context.Context) ([]models.ClaimRequest, error) {
	query := `
		SELECT id, restaurant_name, contact_name, contact_email, phone, message,
			submitted_by_username, proof_image_path, status, created_at, updated_at
		FROM claim_requests
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []models.ClaimRequest
	for rows.Next() {
		var c models.ClaimRequest
		if err := rows.Scan(
			&c.ID, &c.RestaurantName, &c.ContactName, &c.ContactEmail, &c.Phone, &c.Message,
			&c.SubmittedByUsername, &c.ProofImagePath, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}

	return claims, rows.Err()
}

// CountClaimRequestsByStatus returns claim request counts grouped by status.
func (d *DB) CountClaimRequestsByStatus(ctx context.Context) (map[string]int, error) {
	return d.countByStatus(ctx, "claim_requests")
}
