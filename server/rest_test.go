package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuckyNugget/YourFoodie/pkg/chat"
	chatmocks "github.com/LuckyNugget/YourFoodie/pkg/chat/mocks"
	"github.com/LuckyNugget/YourFoodie/pkg/db"
	"github.com/LuckyNugget/YourFoodie/pkg/llm"
	"github.com/LuckyNugget/YourFoodie/pkg/registry"
	"github.com/LuckyNugget/YourFoodie/server/mocks"
)

// testStack builds a server over a real registry with mocked storage and
// generation, close to production wiring
func testStack(t *testing.T) *httptest.Server {
	store := &chatmocks.StoreMock{
		GetAllRestaurantsFunc: func(ctx context.Context) ([]db.Restaurant, error) {
			return []db.Restaurant{{ID: 1, Name: "Mario's Late Night Pizza", CuisineType: "Italian", PriceRange: "$", Rating: 4.5}}, nil
		},
		GetRestaurantsByCuisineFunc: func(ctx context.Context, cuisine string) ([]db.Restaurant, error) {
			return []db.Restaurant{{ID: 1, Name: "Mario's Late Night Pizza", CuisineType: "Italian", PriceRange: "$", Rating: 4.5}}, nil
		},
		GetRestaurantsByPriceRangeFunc: func(ctx context.Context, priceRange string) ([]db.Restaurant, error) {
			return nil, nil
		},
		GetActiveEventsFunc: func(ctx context.Context) ([]db.EventWithRestaurant, error) { return nil, nil },
		SaveUserPreferenceFunc: func(ctx context.Context, userID, prefType, prefValue string) (int64, error) {
			return 1, nil
		},
		GetUserPreferencesFunc: func(ctx context.Context, userID string) ([]db.Preference, error) { return nil, nil },
	}
	gen := &chatmocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, system string, turns []llm.Turn) (string, error) {
			return "generated reply", nil
		},
	}

	reg := registry.New(func() *chat.Engine { return chat.NewEngine(store, gen, chat.Config{}) })
	t.Cleanup(reg.Shutdown)

	catalog := &mocks.CatalogMock{
		GetAllRestaurantsFunc: store.GetAllRestaurantsFunc,
		GetActiveEventsFunc:   store.GetActiveEventsFunc,
		GetEventsByTypeFunc: func(ctx context.Context, eventType string) ([]db.EventWithRestaurant, error) {
			return nil, nil
		},
	}

	srv := New(testConfig(), reg, catalog, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRest_ChatFlow(t *testing.T) {
	ts := testStack(t)

	// start a session
	resp := postJSON(t, ts.URL+"/api/chat/start", map[string]string{"userId": "user_rest"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	start := decodeBody(t, resp)
	assert.Equal(t, true, start["success"])
	assert.Equal(t, "generated reply", start["message"])
	assert.Equal(t, true, start["needsResponse"])
	assert.Equal(t, "profile_building", start["step"])
	assert.Equal(t, "cuisine_preference", start["questionType"])
	sessionID, ok := start["sessionId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, sessionID)

	// answer the first question
	resp = postJSON(t, ts.URL+"/api/chat/message", map[string]string{"sessionId": sessionID, "message": "Italian"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msg := decodeBody(t, resp)
	assert.Equal(t, true, msg["success"])
	assert.Equal(t, "profile_building", msg["step"])
	assert.Equal(t, "budget_range", msg["questionType"])

	// end the session
	resp = postJSON(t, ts.URL+"/api/chat/end", map[string]string{"sessionId": sessionID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	end := decodeBody(t, resp)
	assert.Equal(t, true, end["success"])

	// ended session is gone
	resp = postJSON(t, ts.URL+"/api/chat/message", map[string]string{"sessionId": sessionID, "message": "hello"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRest_MessageUnknownSession(t *testing.T) {
	ts := testStack(t)

	resp := postJSON(t, ts.URL+"/api/chat/message", map[string]string{"sessionId": "no-such-session", "message": "hi"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "session not found", body["error"], "distinct payload lets clients restart")
}

func TestRest_BadRequests(t *testing.T) {
	ts := testStack(t)

	tests := []struct {
		name string
		url  string
		body string
	}{
		{"start with broken json", "/api/chat/start", "{not json"},
		{"message without session", "/api/chat/message", `{"message":"hi"}`},
		{"message without text", "/api/chat/message", `{"sessionId":"s1"}`},
		{"end without session", "/api/chat/end", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+tt.url, "application/json", bytes.NewReader([]byte(tt.body)))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRest_EndUnknownSession(t *testing.T) {
	ts := testStack(t)

	resp := postJSON(t, ts.URL+"/api/chat/end", map[string]string{"sessionId": "never-was"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRest_StartAsksForFreshSession(t *testing.T) {
	store := &chatmocks.StoreMock{
		GetUserPreferencesFunc: func(ctx context.Context, userID string) ([]db.Preference, error) { return nil, nil },
	}
	gen := &chatmocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, system string, turns []llm.Turn) (string, error) { return "ok", nil },
	}

	reg := &mocks.RegistryMock{
		CreateFunc: func(sessionID string) (string, *chat.Engine) {
			return "s-new", chat.NewEngine(store, gen, chat.Config{})
		},
	}

	srv := New(testConfig(), reg, &mocks.CatalogMock{}, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp := postJSON(t, ts.URL+"/api/chat/start", map[string]string{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "s-new", body["sessionId"])
	require.Len(t, reg.CreateCalls(), 1)
	assert.Empty(t, reg.CreateCalls()[0].SessionID, "transport always asks for a fresh id")
}

func TestRest_Restaurants(t *testing.T) {
	ts := testStack(t)

	resp, err := http.Get(ts.URL + "/api/restaurants")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	restaurants, ok := body["restaurants"].([]interface{})
	require.True(t, ok)
	require.Len(t, restaurants, 1)
}

func TestRest_Events(t *testing.T) {
	events := []db.EventWithRestaurant{
		{Event: db.Event{ID: 1, Title: "Happy Hour", EventType: "happy_hour", DiscountPercent: 50}, RestaurantName: "Mario's"},
	}
	catalog := &mocks.CatalogMock{
		GetActiveEventsFunc: func(ctx context.Context) ([]db.EventWithRestaurant, error) { return events, nil },
		GetEventsByTypeFunc: func(ctx context.Context, eventType string) ([]db.EventWithRestaurant, error) {
			if eventType == "happy_hour" {
				return events, nil
			}
			return nil, nil
		},
	}
	srv := New(testConfig(), &mocks.RegistryMock{}, catalog, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	t.Run("all active", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/events")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["events"], 1)
		assert.Len(t, catalog.GetActiveEventsCalls(), 1)
	})

	t.Run("filtered by type", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/events?type=happy_hour")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Len(t, body["events"], 1)
		require.Len(t, catalog.GetEventsByTypeCalls(), 1)
		assert.Equal(t, "happy_hour", catalog.GetEventsByTypeCalls()[0].EventType)
	})
}

func TestRest_CatalogErrors(t *testing.T) {
	catalog := &mocks.CatalogMock{
		GetAllRestaurantsFunc: func(ctx context.Context) ([]db.Restaurant, error) { return nil, errors.New("boom") },
		GetActiveEventsFunc:   func(ctx context.Context) ([]db.EventWithRestaurant, error) { return nil, errors.New("boom") },
	}
	srv := New(testConfig(), &mocks.RegistryMock{}, catalog, "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	for _, path := range []string{"/api/restaurants", "/api/events"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)
		resp.Body.Close()
	}
}
