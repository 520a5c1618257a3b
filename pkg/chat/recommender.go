package chat

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/LuckyNugget/YourFoodie/pkg/db"
)

// Recommender selects and ranks catalog entries for a preference profile.
// Two sequential filters (cuisine substring, exact budget) plus fixed
// discount-descending event ordering - no scoring model, no randomization.
type Recommender struct {
	store             Store
	enforceEventDates bool
	now               func() time.Time
}

// NewRecommender creates a recommender over the given store. When
// enforceEventDates is set, events outside their start/end date window are
// excluded in addition to the active flag.
func NewRecommender(store Store, enforceEventDates bool) *Recommender {
	return &Recommender{store: store, enforceEventDates: enforceEventDates, now: time.Now}
}

// Recommend returns restaurants matching the profile and currently active
// events. Restaurant and event lookups run concurrently.
func (r *Recommender) Recommend(ctx context.Context, profile Profile) ([]db.Restaurant, []db.EventWithRestaurant, error) {
	var restaurants []db.Restaurant
	var events []db.EventWithRestaurant

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := r.matchRestaurants(gctx, profile)
		if err != nil {
			return err
		}
		restaurants = res
		return nil
	})

	g.Go(func() error {
		evts, err := r.store.GetActiveEvents(gctx)
		if err != nil {
			return fmt.Errorf("get active events: %w", err)
		}
		events = evts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if r.enforceEventDates {
		events = r.filterEventWindow(events)
	}

	// the store orders by discount already, re-sort to keep the contract
	// independent of storage details; stable to preserve equal-discount order
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].DiscountPercent > events[j].DiscountPercent
	})

	return restaurants, events, nil
}

// matchRestaurants applies the cuisine and budget filters in sequence
func (r *Recommender) matchRestaurants(ctx context.Context, profile Profile) ([]db.Restaurant, error) {
	if profile.CuisinePreference == "" {
		if profile.BudgetRange != "" {
			restaurants, err := r.store.GetRestaurantsByPriceRange(ctx, profile.BudgetRange)
			if err != nil {
				return nil, fmt.Errorf("get restaurants by price range: %w", err)
			}
			return restaurants, nil
		}
		restaurants, err := r.store.GetAllRestaurants(ctx)
		if err != nil {
			return nil, fmt.Errorf("get all restaurants: %w", err)
		}
		return restaurants, nil
	}

	restaurants, err := r.store.GetRestaurantsByCuisine(ctx, profile.CuisinePreference)
	if err != nil {
		return nil, fmt.Errorf("get restaurants by cuisine: %w", err)
	}

	if profile.BudgetRange == "" {
		return restaurants, nil
	}

	matched := make([]db.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if restaurant.PriceRange == profile.BudgetRange {
			matched = append(matched, restaurant)
		}
	}
	return matched, nil
}

// filterEventWindow drops events whose date range excludes today. Events with
// unparsable or missing dates pass through - the window is advisory data.
func (r *Recommender) filterEventWindow(events []db.EventWithRestaurant) []db.EventWithRestaurant {
	const layout = "2006-01-02"
	today := r.now().Format(layout)

	filtered := make([]db.EventWithRestaurant, 0, len(events))
	for _, event := range events {
		if event.StartDate != "" {
			if _, err := time.Parse(layout, event.StartDate); err == nil && event.StartDate > today {
				continue
			}
		}
		if event.EndDate != "" {
			if _, err := time.Parse(layout, event.EndDate); err == nil && event.EndDate < today {
				continue
			}
		}
		filtered = append(filtered, event)
	}
	return filtered
}
