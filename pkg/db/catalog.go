package db

import (
	"context"
	"fmt"
)

// CreateRestaurant inserts a restaurant into the catalog
func (db *DB) CreateRestaurant(ctx context.Context, r *Restaurant) error {
	query := `
		INSERT INTO restaurants (name, cuisine_type, address, phone, price_range, rating, is_open)
		VALUES (:name, :cuisine_type, :address, :phone, :price_range, :rating, :is_open)
	`
	result, err := db.conn.NamedExecContext(ctx, query, r)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	r.ID = id
	return nil
}

// CreateEvent inserts an event for a restaurant
func (db *DB) CreateEvent(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (restaurant_id, title, tagline, event_type, start_date, end_date,
		                    start_time, end_time, discount_percent, is_active)
		VALUES (:restaurant_id, :title, :tagline, :event_type, :start_date, :end_date,
		        :start_time, :end_time, :discount_percent, :is_active)
	`
	result, err := db.conn.NamedExecContext(ctx, query, e)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	e.ID = id
	return nil
}

// GetAllRestaurants retrieves all restaurants ordered by rating
func (db *DB) GetAllRestaurants(ctx context.Context) ([]Restaurant, error) {
	var restaurants []Restaurant
	query := `SELECT * FROM restaurants ORDER BY rating DESC`
	err := db.conn.SelectContext(ctx, &restaurants, query)
	if err != nil {
		return nil, fmt.Errorf("get restaurants: %w", err)
	}
	return restaurants, nil
}

// GetRestaurantsByCuisine retrieves restaurants whose cuisine type contains
// the given substring, case-insensitively, ordered by rating
func (db *DB) GetRestaurantsByCuisine(ctx context.Context, cuisine string) ([]Restaurant, error) {
	var restaurants []Restaurant
	query := `
		SELECT * FROM restaurants
		WHERE cuisine_type LIKE ? COLLATE NOCASE
		ORDER BY rating DESC
	`
	err := db.conn.SelectContext(ctx, &restaurants, query, "%"+cuisine+"%")
	if err != nil {
		return nil, fmt.Errorf("get restaurants by cuisine: %w", err)
	}
	return restaurants, nil
}

// GetRestaurantsByPriceRange retrieves restaurants with an exact price range match
func (db *DB) GetRestaurantsByPriceRange(ctx context.Context, priceRange string) ([]Restaurant, error) {
	var restaurants []Restaurant
	query := `
		SELECT * FROM restaurants
		WHERE price_range = ?
		ORDER BY rating DESC
	`
	err := db.conn.SelectContext(ctx, &restaurants, query, priceRange)
	if err != nil {
		return nil, fmt.Errorf("get restaurants by price range: %w", err)
	}
	return restaurants, nil
}

// GetActiveEvents retrieves all active events joined with their restaurant,
// highest discount first
func (db *DB) GetActiveEvents(ctx context.Context) ([]EventWithRestaurant, error) {
	var events []EventWithRestaurant
	query := `
		SELECT
			e.*,
			r.name AS restaurant_name,
			r.address AS restaurant_address,
			r.cuisine_type AS restaurant_cuisine,
			r.rating AS restaurant_rating
		FROM events e
		JOIN restaurants r ON e.restaurant_id = r.id
		WHERE e.is_active = 1
		ORDER BY e.discount_percent DESC, e.id
	`
	err := db.conn.SelectContext(ctx, &events, query)
	if err != nil {
		return nil, fmt.Errorf("get active events: %w", err)
	}
	return events, nil
}

// GetEventsByType retrieves active events of a specific type (late_night,
// happy_hour, etc.), highest discount first
func (db *DB) GetEventsByType(ctx context.Context, eventType string) ([]EventWithRestaurant, error) {
	var events []EventWithRestaurant
	query := `
		SELECT
			e.*,
			r.name AS restaurant_name,
			r.address AS restaurant_address,
			r.cuisine_type AS restaurant_cuisine,
			r.rating AS restaurant_rating
		FROM events e
		JOIN restaurants r ON e.restaurant_id = r.id
		WHERE e.event_type = ? AND e.is_active = 1
		ORDER BY e.discount_percent DESC, e.id
	`
	err := db.conn.SelectContext(ctx, &events, query, eventType)
	if err != nil {
		return nil, fmt.Errorf("get events by type: %w", err)
	}
	return events, nil
}
