package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"platewatch/internal/models"
)

// CreatePriceUpdate inserts a new price update with status pending.
func (d *DB) CreatePriceUpdate(ctx context.Context, update *models.PriceUpdate) error {
	query := `
		INSERT INTO price_updates (restaurant_name, item_name, old_price, new_price, submitted_by_username, image_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at, updated_at
	`

	return d.Pool.QueryRow(ctx, query,
		update.RestaurantName,
		update.ItemName,
		update.OldPrice,
		update.NewPrice,
		update.SubmittedByUsername,
		update.ImagePath,
	).Scan(&update.ID, &update.Status, &update.CreatedAt, &update.UpdatedAt)
}

// GetPriceUpdateByID retrieves a price update by its UUID.
func (d *DB) GetPriceUpdateByID(ctx context.Context, id uuid.UUID) (*models.PriceUpdate, error) {
	query := `
		SELECT id, restaurant_name, item_name, old_price, new_price,
			submitted_by_username, status, image_path, created_at, updated_at
		FROM price_updates WHERE id = $1
	`

	var u models.PriceUpdate
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.RestaurantName,
		&u.ItemName,
		&u.OldPrice,
		&u.NewPrice,
		&u.SubmittedByUsername,
		&u.Status,
		&u.ImagePath,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPriceUpdateNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// GetPendingPriceUpdates retrieves all price updates still awaiting
// moderation, oldest first.
func (d *DB) GetPendingPriceUpdates(ctx context.Context) ([]models.PriceUpdate, error) {
	query := `
		SELECT id, restaurant_name, item_name, old_price, new_price,
			submitted_by_username, status, image_path, created_at, updated_at
		FROM price_updates
		WHERE status = 'pending'
		ORDER BY created_at ASC
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []models.PriceUpdate
	for rows.Next() {
		var u models.PriceUpdate
		if err := rows.Scan(
			&u.ID, &u.RestaurantName, &u.ItemName, &u.OldPrice, &u.NewPrice,
			&u.SubmittedByUsername, &u.Status, &u.ImagePath, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}

	return updates, rows.Err()
}

// SetPriceUpdateStatus sets the moderation status of a price update.
// Last write wins; repeated calls keep re-setting the same status.
func (d *DB) SetPriceUpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE price_updates SET status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := d.Pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPriceUpdateNotFound
	}
	return nil
}

// CountPriceUpdatesByStatus returns price update counts grouped by status.
func (d *DB) CountPriceUpdatesByStatus(ctx context.Context) (map[string]int, error) {
	return d.countByStatus(ctx, "price_updates")
}

func (d *DB) countByStatus(ctx context.Context, table string) (map[string]int, error) {
	// table is a compile-time constant, never user input
	rows, err := d.Pool.Query(ctx, `SELECT status, COUNT(*) FROM `+table+` GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
