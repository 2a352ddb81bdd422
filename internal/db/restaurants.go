package db

import (
	"context"

	"platewatch/internal/models"
)

// GetAllRestaurants retrieves all restaurants ordered by name. The listing
// is read-only; rows are seeded out of band.
func (d *DB) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	query := `
		SELECT id, name, address, lat, lng, category, price,
			COALESCE(tags, ''), COALESCE(distance, ''), rating, owner_username,
			created_at, updated_at
		FROM restaurants
		ORDER BY name ASC
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Address, &r.Lat, &r.Lng, &r.Category, &r.Price,
			&r.Tags, &r.Distance, &r.Rating, &r.OwnerUsername,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}

	return restaurants, rows.Err()
}
