package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/LuckyNugget/YourFoodie/pkg/chat"
)

// chatStartRequest opens a new conversation session
type chatStartRequest struct {
	UserID string `json:"userId"`
}

// chatMessageRequest carries one user turn for an existing session
type chatMessageRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// chatEndRequest closes a session
type chatEndRequest struct {
	SessionID string `json:"sessionId"`
}

// chatResponse wraps an engine reply with the transport envelope
type chatResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId,omitempty"`
	*chat.Reply
}

// chatStartHandler creates a session and returns the opening message
func (s *Server) chatStartHandler(w http.ResponseWriter, r *http.Request) {
	var req chatStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	sessionID, engine := s.registry.Create("")
	reply, err := engine.StartConversation(r.Context(), req.UserID)
	if err != nil {
		lgr.Printf("[ERROR] failed to start conversation for %q: %v", req.UserID, err)
		s.registry.Remove(sessionID)
		renderError(w, r, fmt.Errorf("failed to start conversation"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, chatResponse{Success: true, SessionID: sessionID, Reply: reply})
}

// chatMessageHandler advances an existing session by one turn. An unknown
// session gets a distinct 404 so clients can restart instead of retrying.
func (s *Server) chatMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.Message == "" {
		renderError(w, r, fmt.Errorf("sessionId and message are required"), http.StatusBadRequest)
		return
	}

	engine, ok := s.registry.Get(req.SessionID)
	if !ok {
		renderError(w, r, fmt.Errorf("session not found"), http.StatusNotFound)
		return
	}

	reply, err := engine.ProcessResponse(r.Context(), req.Message)
	if err != nil {
		lgr.Printf("[ERROR] failed to process message for session %s: %v", req.SessionID, err)
		renderError(w, r, fmt.Errorf("failed to process message"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, chatResponse{Success: true, SessionID: req.SessionID, Reply: reply})
}

// chatEndHandler closes a session and releases its state
func (s *Server) chatEndHandler(w http.ResponseWriter, r *http.Request) {
	var req chatEndRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		renderError(w, r, fmt.Errorf("sessionId is required"), http.StatusBadRequest)
		return
	}

	if !s.registry.Remove(req.SessionID) {
		renderError(w, r, fmt.Errorf("session not found"), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Thanks for chatting! Hope to help you find great food soon!",
	})
}

// restaurantsHandler returns the full restaurant catalog
func (s *Server) restaurantsHandler(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.catalog.GetAllRestaurants(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get restaurants: %v", err)
		renderError(w, r, fmt.Errorf("failed to get restaurants"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"success": true, "restaurants": restaurants})
}

// eventsHandler returns active events, optionally filtered by type
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var events interface{}
	var err error
	if eventType := r.URL.Query().Get("type"); eventType != "" {
		events, err = s.catalog.GetEventsByType(ctx, eventType)
	} else {
		events, err = s.catalog.GetActiveEvents(ctx)
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to get events: %v", err)
		renderError(w, r, fmt.Errorf("failed to get events"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"success": true, "events": events})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]interface{}{"success": false, "error": errMsg})
}
