package db

import (
	"context"
	"fmt"
)

// Seed populates the catalog with the sample dataset, skipping if restaurants
// already exist
func (db *DB) Seed(ctx context.Context) error {
	var count int
	if err := db.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM restaurants"); err != nil {
		return fmt.Errorf("count restaurants: %w", err)
	}
	if count > 0 {
		return nil
	}

	restaurants := []Restaurant{
		{Name: "Mario's Late Night Pizza", CuisineType: "Italian", Address: "123 Main St, Downtown",
			Phone: "(555) 123-4567", PriceRange: "$$", Rating: 4.5, IsOpen: true},
		{Name: "Midnight Tacos", CuisineType: "Mexican", Address: "456 Food Ave, Midtown",
			Phone: "(555) 987-6543", PriceRange: "$", Rating: 4.2, IsOpen: true},
	}

	for i := range restaurants {
		if err := db.CreateRestaurant(ctx, &restaurants[i]); err != nil {
			return fmt.Errorf("seed restaurant %q: %w", restaurants[i].Name, err)
		}
	}

	events := []Event{
		{RestaurantID: restaurants[0].ID, Title: "Late Night Special",
			Tagline:   "50% off all pizzas after 11 PM - Perfect for night owls!",
			EventType: "late_night", StartDate: "2025-09-13", EndDate: "2025-12-31",
			StartTime: "23:00", EndTime: "02:00", DiscountPercent: 50, IsActive: true},
		{RestaurantID: restaurants[0].ID, Title: "Happy Hour Pizza",
			Tagline:   "Buy one pizza, get second 25% off during dinner rush",
			EventType: "happy_hour", StartDate: "2025-09-13", EndDate: "2025-12-31",
			StartTime: "17:00", EndTime: "19:00", DiscountPercent: 25, IsActive: true},
		{RestaurantID: restaurants[0].ID, Title: "Weekend Brunch Special",
			Tagline:   "Free garlic bread with any pizza order on weekends",
			EventType: "weekend_special", StartDate: "2025-09-14", EndDate: "2025-12-29",
			StartTime: "10:00", EndTime: "14:00", DiscountPercent: 15, IsActive: true},
		{RestaurantID: restaurants[1].ID, Title: "Midnight Munchies",
			Tagline:   "3 tacos + drink for $7 after midnight - Beat the late night hunger!",
			EventType: "late_night", StartDate: "2025-09-13", EndDate: "2025-12-31",
			StartTime: "00:00", EndTime: "03:00", DiscountPercent: 40, IsActive: true},
		{RestaurantID: restaurants[1].ID, Title: "Taco Tuesday",
			Tagline:   "$1.50 tacos all day every Tuesday - Can't beat this deal!",
			EventType: "weekly_special", StartDate: "2025-09-17", EndDate: "2025-12-31",
			StartTime: "11:00", EndTime: "23:00", DiscountPercent: 60, IsActive: true},
		{RestaurantID: restaurants[1].ID, Title: "Golden Hour Margaritas",
			Tagline:   "Half price margaritas during sunset - Perfect with tacos!",
			EventType: "golden_hour", StartDate: "2025-09-13", EndDate: "2025-12-31",
			StartTime: "17:30", EndTime: "19:30", DiscountPercent: 50, IsActive: true},
	}

	for i := range events {
		if err := db.CreateEvent(ctx, &events[i]); err != nil {
			return fmt.Errorf("seed event %q: %w", events[i].Title, err)
		}
	}

	return nil
}
