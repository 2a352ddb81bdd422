package db

import (
	"context"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"platewatch/migrations"
)

// DB wraps a pgxpool connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New creates a new database connection pool.
func New(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (d *DB) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Ping checks database connectivity.
func (d *DB) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() {
	d.Pool.Close()
}

// SeedDevRestaurants inserts test restaurants for development. Skips rows
// that already exist.
func (d *DB) SeedDevRestaurants(ctx context.Context) error {
	restaurants := []struct {
		name     string
		address  string
		lat, lng float64
		category string
		price    string
	}{
		{"Gostilna Pri Marku", "Trubarjeva 12, Ljubljana", 46.0511, 14.5086, "slovenian", "$$"},
		{"Pizzeria Luna", "Cankarjeva 3, Ljubljana", 46.0514, 14.5030, "pizza", "$"},
		{"Sushi Central", "Slovenska 44, Ljubljana", 46.0569, 14.5046, "japanese", "$$$"},
	}

	query := `
		INSERT INTO restaurants (name, address, lat, lng, category, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO NOTHING
	`

	for _, r := range restaurants {
		if _, err := d.Pool.Exec(ctx, query, r.name, r.address, r.lat, r.lng, r.category, r.price); err != nil {
			return fmt.Errorf("failed to seed restaurant %s: %w", r.name, err)
		}
	}

	return nil
}
