package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuckyNugget/YourFoodie/pkg/chat/mocks"
	"github.com/LuckyNugget/YourFoodie/pkg/db"
)

func TestRecommender_FilterSequence(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected []string
	}{
		{name: "cuisine and budget", profile: Profile{CuisinePreference: "Italian", BudgetRange: "$"}, expected: []string{"Mario's Late Night Pizza"}},
		{name: "cuisine only", profile: Profile{CuisinePreference: "Mexican"}, expected: []string{"Midnight Tacos"}},
		{name: "budget only", profile: Profile{BudgetRange: "$$"}, expected: []string{"Uptown Bistro"}},
		{name: "no filters returns everything", profile: Profile{}, expected: []string{"Mario's Late Night Pizza", "Midnight Tacos", "Uptown Bistro"}},
		{name: "budget excludes cuisine matches", profile: Profile{CuisinePreference: "Italian", BudgetRange: "$$$$"}, expected: []string{}},
	}

	restaurants := []db.Restaurant{
		{ID: 1, Name: "Mario's Late Night Pizza", CuisineType: "Italian", PriceRange: "$", Rating: 4.5},
		{ID: 2, Name: "Midnight Tacos", CuisineType: "Mexican", PriceRange: "$", Rating: 4.2},
		{ID: 3, Name: "Uptown Bistro", CuisineType: "French", PriceRange: "$$", Rating: 4.8},
	}

	store := &mocks.StoreMock{
		GetAllRestaurantsFunc: func(ctx context.Context) ([]db.Restaurant, error) { return restaurants, nil },
		GetRestaurantsByCuisineFunc: func(ctx context.Context, cuisine string) ([]db.Restaurant, error) {
			var res []db.Restaurant
			for _, r := range restaurants {
				if r.CuisineType == cuisine {
					res = append(res, r)
				}
			}
			return res, nil
		},
		GetRestaurantsByPriceRangeFunc: func(ctx context.Context, priceRange string) ([]db.Restaurant, error) {
			var res []db.Restaurant
			for _, r := range restaurants {
				if r.PriceRange == priceRange {
					res = append(res, r)
				}
			}
			return res, nil
		},
		GetActiveEventsFunc: func(ctx context.Context) ([]db.EventWithRestaurant, error) { return nil, nil },
	}

	rec := NewRecommender(store, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, _, err := rec.Recommend(context.Background(), tt.profile)
			require.NoError(t, err)
			names := make([]string, 0, len(matched))
			for _, r := range matched {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestRecommender_EventOrdering(t *testing.T) {
	events := []db.EventWithRestaurant{
		{Event: db.Event{ID: 1, Title: "small deal", DiscountPercent: 10}},
		{Event: db.Event{ID: 2, Title: "big deal", DiscountPercent: 60}},
		{Event: db.Event{ID: 3, Title: "first equal", DiscountPercent: 25}},
		{Event: db.Event{ID: 4, Title: "second equal", DiscountPercent: 25}},
	}
	store := &mocks.StoreMock{
		GetAllRestaurantsFunc: func(ctx context.Context) ([]db.Restaurant, error) { return nil, nil },
		GetActiveEventsFunc:   func(ctx context.Context) ([]db.EventWithRestaurant, error) { return events, nil },
	}

	_, got, err := NewRecommender(store, false).Recommend(context.Background(), Profile{})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, int64(2), got[0].ID, "highest discount first")
	assert.Equal(t, int64(3), got[1].ID, "equal discounts keep their relative order")
	assert.Equal(t, int64(4), got[2].ID)
	assert.Equal(t, int64(1), got[3].ID)
}

func TestRecommender_EventDateWindow(t *testing.T) {
	events := []db.EventWithRestaurant{
		{Event: db.Event{ID: 1, Title: "current", StartDate: "2025-01-01", EndDate: "2027-01-01", DiscountPercent: 10}},
		{Event: db.Event{ID: 2, Title: "expired", StartDate: "2024-01-01", EndDate: "2024-06-01", DiscountPercent: 90}},
		{Event: db.Event{ID: 3, Title: "future", StartDate: "2030-01-01", EndDate: "2030-06-01", DiscountPercent: 80}},
		{Event: db.Event{ID: 4, Title: "no dates", DiscountPercent: 20}},
		{Event: db.Event{ID: 5, Title: "garbage dates", StartDate: "whenever", EndDate: "later", DiscountPercent: 30}},
	}
	store := &mocks.StoreMock{
		GetAllRestaurantsFunc: func(ctx context.Context) ([]db.Restaurant, error) { return nil, nil },
		GetActiveEventsFunc:   func(ctx context.Context) ([]db.EventWithRestaurant, error) { return events, nil },
	}

	t.Run("disabled keeps every active event", func(t *testing.T) {
		_, got, err := NewRecommender(store, false).Recommend(context.Background(), Profile{})
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("enabled drops events outside the window", func(t *testing.T) {
		rec := NewRecommender(store, true)
		rec.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

		_, got, err := rec.Recommend(context.Background(), Profile{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		// discount-ordered: garbage(30) > no dates(20) > current(10)
		assert.Equal(t, int64(5), got[0].ID, "unparsable dates pass through")
		assert.Equal(t, int64(4), got[1].ID, "missing dates pass through")
		assert.Equal(t, int64(1), got[2].ID)
	})
}

func TestRecommender_StoreErrors(t *testing.T) {
	t.Run("restaurant lookup failure", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetAllRestaurantsFunc: func(ctx context.Context) ([]db.Restaurant, error) { return nil, errors.New("boom") },
			GetActiveEventsFunc:   func(ctx context.Context) ([]db.EventWithRestaurant, error) { return nil, nil },
		}
		_, _, err := NewRecommender(store, false).Recommend(context.Background(), Profile{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "get all restaurants")
	})

	t.Run("event lookup failure", func(t *testing.T) {
		store := &mocks.StoreMock{
			GetAllRestaurantsFunc: func(ctx context.Context) ([]db.Restaurant, error) { return nil, nil },
			GetActiveEventsFunc: func(ctx context.Context) ([]db.EventWithRestaurant, error) {
				return nil, errors.New("boom")
			},
		}
		_, _, err := NewRecommender(store, false).Recommend(context.Background(), Profile{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "get active events")
	})
}
