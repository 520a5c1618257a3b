package db

import "time"

// Restaurant represents a catalog restaurant entry
type Restaurant struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	CuisineType string    `db:"cuisine_type" json:"cuisineType"`
	Address     string    `db:"address" json:"address"`
	Phone       string    `db:"phone" json:"phone"`
	PriceRange  string    `db:"price_range" json:"priceRange"`
	Rating      float64   `db:"rating" json:"rating"`
	IsOpen      bool      `db:"is_open" json:"isOpen"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

// Event represents a restaurant deal or event
type Event struct {
	ID              int64     `db:"id" json:"id"`
	RestaurantID    int64     `db:"restaurant_id" json:"restaurantId"`
	Title           string    `db:"title" json:"title"`
	Tagline         string    `db:"tagline" json:"tagline"`
	EventType       string    `db:"event_type" json:"eventType"`
	StartDate       string    `db:"start_date" json:"startDate"`
	EndDate         string    `db:"end_date" json:"endDate"`
	StartTime       string    `db:"start_time" json:"startTime"`
	EndTime         string    `db:"end_time" json:"endTime"`
	DiscountPercent int       `db:"discount_percent" json:"discountPercent"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
}

// EventWithRestaurant represents an event joined with its owning restaurant's
// display fields
type EventWithRestaurant struct {
	Event
	RestaurantName    string  `db:"restaurant_name" json:"restaurantName"`
	RestaurantAddress string  `db:"restaurant_address" json:"restaurantAddress"`
	RestaurantCuisine string  `db:"restaurant_cuisine" json:"restaurantCuisine"`
	RestaurantRating  float64 `db:"restaurant_rating" json:"restaurantRating"`
}

// Preference represents a durable user dining preference record
type Preference struct {
	ID              int64     `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"userId"`
	PreferenceType  string    `db:"preference_type" json:"preferenceType"`
	PreferenceValue string    `db:"preference_value" json:"preferenceValue"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}
