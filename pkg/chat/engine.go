package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/LuckyNugget/YourFoodie/pkg/db"
	"github.com/LuckyNugget/YourFoodie/pkg/llm"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// Store is the preference and catalog storage boundary
type Store interface {
	GetAllRestaurants(ctx context.Context) ([]db.Restaurant, error)
	GetRestaurantsByCuisine(ctx context.Context, cuisine string) ([]db.Restaurant, error)
	GetRestaurantsByPriceRange(ctx context.Context, priceRange string) ([]db.Restaurant, error)
	GetActiveEvents(ctx context.Context) ([]db.EventWithRestaurant, error)
	GetEventsByType(ctx context.Context, eventType string) ([]db.EventWithRestaurant, error)
	SaveUserPreference(ctx context.Context, userID, prefType, prefValue string) (int64, error)
	GetUserPreferences(ctx context.Context, userID string) ([]db.Preference, error)
}

// Generator is the external text-generation boundary
type Generator interface {
	Generate(ctx context.Context, system string, turns []llm.Turn) (string, error)
}

// Config holds dialogue engine settings
type Config struct {
	HistoryLimit      int  // max conversation turns kept and sent to the generator
	MaxCatalogItems   int  // max restaurants/events included in generation prompts
	EnforceEventDates bool // filter events by date window in addition to the active flag
}

// Reply is the engine's response to one conversation turn
type Reply struct {
	Message       string                   `json:"message"`
	NeedsResponse bool                     `json:"needsResponse"`
	Step          Step                     `json:"step"`
	Question      Question                 `json:"questionType,omitempty"`
	Options       []string                 `json:"options,omitempty"`
	Restaurants   []db.Restaurant          `json:"restaurants,omitempty"`
	Events        []db.EventWithRestaurant `json:"events,omitempty"`
}

// Engine owns the state of a single conversation session: dialogue step,
// question progress, collected answers and turn history. All mutation goes
// through StartConversation and ProcessResponse; the internal mutex makes
// single-flight-per-session an enforced invariant rather than a transport
// layer promise.
type Engine struct {
	store Store
	gen   Generator
	rec   *Recommender
	cfg   Config

	mu             sync.Mutex
	closed         bool
	userID         string
	step           Step
	questionIndex  int
	questionsAsked []Question
	responses      map[Question]string
	history        []llm.Turn
}

// NewEngine creates a dialogue engine over the given store and generator
func NewEngine(store Store, gen Generator, cfg Config) *Engine {
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = 20
	}
	if cfg.MaxCatalogItems == 0 {
		cfg.MaxCatalogItems = 3
	}

	return &Engine{
		store:     store,
		gen:       gen,
		rec:       NewRecommender(store, cfg.EnforceEventDates),
		cfg:       cfg,
		step:      StepGreeting,
		responses: make(map[Question]string),
	}
}

// Step returns the current dialogue step
func (e *Engine) Step() Step {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.step
}

// QuestionsAsked returns the identifiers of questions answered so far, in order
func (e *Engine) QuestionsAsked() []Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Question, len(e.questionsAsked))
	copy(out, e.questionsAsked)
	return out
}

// StartConversation initializes a fresh session for the user. Prior stored
// preferences only pick the opening branch - returning users get a
// welcome-back summary and jump straight to recommendation_ready, new users
// enter profile building with the first scheduled question. Session state is
// reset either way.
func (e *Engine) StartConversation(ctx context.Context, userID string) (*Reply, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if userID == "" {
		userID = fmt.Sprintf("user_%d", time.Now().UnixMilli())
	}

	// fresh session regardless of prior history
	e.userID = userID
	e.step = StepGreeting
	e.questionIndex = 0
	e.questionsAsked = e.questionsAsked[:0]
	e.responses = make(map[Question]string)
	e.history = e.history[:0]

	prefs, err := e.store.GetUserPreferences(ctx, userID)
	if err != nil {
		lgr.Printf("[WARN] failed to load preferences for %s, treating as new user: %v", userID, err)
		prefs = nil
	}

	if len(prefs) > 0 {
		return e.welcomeBack(ctx, prefs), nil
	}
	return e.greet(ctx), nil
}

// ProcessResponse advances the dialogue with one user message. Dispatch is
// purely on the current step.
func (e *Engine) ProcessResponse(ctx context.Context, userInput string) (*Reply, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// a message can race session removal: the transport resolves the engine,
	// the session is ended, then the message arrives here. Discard it with
	// the generic reply instead of touching released state.
	if e.closed {
		lgr.Printf("[WARN] message received on closed session for %s", e.userID)
		return &Reply{
			Message:       "I apologize, I'm having trouble processing that right now. Could you try rephrasing your response?",
			NeedsResponse: true,
			Step:          e.step,
		}, nil
	}

	switch e.step {
	case StepProfileBuilding:
		return e.handleProfileAnswer(ctx, userInput), nil
	case StepRecommendationReady:
		return e.handleRecommendation(ctx, userInput)
	case StepRecommendationsShown:
		return e.handleFollowUp(ctx, userInput), nil
	case StepGreeting:
		// a message before StartConversation completed; nothing to dispatch on
		lgr.Printf("[WARN] message received in greeting step for %s", e.userID)
	default:
		lgr.Printf("[ERROR] unreachable dialogue step %q for %s", e.step, e.userID)
	}

	return &Reply{
		Message:       "I apologize, I'm having trouble processing that right now. Could you try rephrasing your response?",
		NeedsResponse: true,
		Step:          e.step,
	}, nil
}

// Close releases session state. The engine shares the store handle with the
// rest of the process, so there is nothing external to release here. Late
// messages after Close get the generic reply from ProcessResponse.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.history = nil
	e.responses = nil
}

// greet opens the dialogue for a new user and asks the first scheduled question
func (e *Engine) greet(ctx context.Context) *Reply {
	opening := []llm.Turn{{Role: llm.RoleUser, Content: "Hi! I would like some restaurant recommendations."}}

	message, err := e.gen.Generate(ctx, greetingPrompt, opening)
	if err != nil {
		lgr.Printf("[WARN] greeting generation failed, using fallback: %v", err)
		message = fallbackGreeting
	}

	e.step = StepProfileBuilding
	e.appendTurn(llm.Turn{Role: llm.RoleAssistant, Content: message})

	return &Reply{
		Message:       message,
		NeedsResponse: true,
		Step:          StepProfileBuilding,
		Question:      schedule[0],
	}
}

// welcomeBack greets a returning user with remembered preferences and offers
// to go straight to recommendations
func (e *Engine) welcomeBack(ctx context.Context, prefs []db.Preference) *Reply {
	summary := ProfileFromPreferences(prefs).Summary()
	opening := []llm.Turn{{Role: llm.RoleUser, Content: "Hi, I'm back for more restaurant recommendations!"}}

	message, err := e.gen.Generate(ctx, welcomeBackPrompt(summary), opening)
	if err != nil {
		lgr.Printf("[WARN] welcome-back generation failed, using fallback: %v", err)
		message = fmt.Sprintf("Welcome back! I remember you love %s. Ready to find your next great meal? "+
			"I can suggest restaurants based on what I know about you, or we can update your preferences "+
			"if your tastes have changed!", summary)
	}

	e.step = StepRecommendationReady
	e.appendTurn(llm.Turn{Role: llm.RoleAssistant, Content: message})

	return &Reply{
		Message:       message,
		NeedsResponse: true,
		Step:          StepRecommendationReady,
		Options:       welcomeBackOptions,
	}
}

// handleProfileAnswer records the answer to the current scheduled question and
// either asks the next one or completes the profile. The question index is the
// only determinant of which question the answer belongs to.
func (e *Engine) handleProfileAnswer(ctx context.Context, userInput string) *Reply {
	if e.questionIndex >= len(schedule) {
		return e.completeProfile(ctx)
	}

	question := schedule[e.questionIndex]
	e.questionsAsked = append(e.questionsAsked, question)
	e.responses[question] = userInput
	e.appendTurn(llm.Turn{Role: llm.RoleUser, Content: userInput})
	e.questionIndex++

	// persistence is best effort: a failed save never blocks the dialogue
	if _, err := e.store.SaveUserPreference(ctx, e.userID, string(question), userInput); err != nil {
		lgr.Printf("[WARN] failed to save preference %s for %s: %v", question, e.userID, err)
	}

	if e.questionIndex >= len(schedule) {
		return e.completeProfile(ctx)
	}

	next := schedule[e.questionIndex]
	message, err := e.gen.Generate(ctx, transitionPrompt(question, next), e.recentHistory())
	if err != nil {
		lgr.Printf("[WARN] question generation failed, using fallback: %v", err)
		message = next.Fallback()
	}
	e.appendTurn(llm.Turn{Role: llm.RoleAssistant, Content: message})

	return &Reply{
		Message:       message,
		NeedsResponse: true,
		Step:          StepProfileBuilding,
		Question:      next,
	}
}

// completeProfile summarizes the collected answers and moves to
// recommendation_ready with the fixed follow-up options
func (e *Engine) completeProfile(ctx context.Context) *Reply {
	opening := []llm.Turn{{Role: llm.RoleUser, Content: "I've completed answering all your questions about my dining preferences."}}

	message, err := e.gen.Generate(ctx, profileCompletePrompt(e.describeResponses()), opening)
	if err != nil {
		lgr.Printf("[WARN] profile summary generation failed, using fallback: %v", err)
		message = "Perfect! I've got a great sense of your taste now. Based on what you've told me, " +
			"I can find restaurants that match your preferences perfectly. Ready for some personalized recommendations?"
	}

	e.step = StepRecommendationReady
	e.appendTurn(llm.Turn{Role: llm.RoleAssistant, Content: message})

	return &Reply{
		Message:       message,
		NeedsResponse: true,
		Step:          StepRecommendationReady,
		Options:       readyOptions,
	}
}

// handleRecommendation filters the catalog by the stored profile and renders
// recommendations. Storage failures surface as errors and leave the session in
// recommendation_ready; generation failures degrade to static wording only.
func (e *Engine) handleRecommendation(ctx context.Context, userInput string) (*Reply, error) {
	prefs, err := e.store.GetUserPreferences(ctx, e.userID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	profile := ProfileFromPreferences(prefs)
	e.overlayLiveResponses(&profile)

	restaurants, events, err := e.rec.Recommend(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("filter recommendations: %w", err)
	}

	e.appendTurn(llm.Turn{Role: llm.RoleUser, Content: userInput})

	prompt := recommendationPrompt(profile,
		topRestaurants(restaurants, e.cfg.MaxCatalogItems),
		topEvents(events, e.cfg.MaxCatalogItems))

	message, err := e.gen.Generate(ctx, prompt, []llm.Turn{{Role: llm.RoleUser, Content: userInput}})
	if err != nil {
		lgr.Printf("[WARN] recommendation generation failed, using fallback: %v", err)
		message = fallbackRecommendation(restaurants, events)
	}

	e.step = StepRecommendationsShown
	e.appendTurn(llm.Turn{Role: llm.RoleAssistant, Content: message})

	return &Reply{
		Message:       message,
		NeedsResponse: true,
		Step:          StepRecommendationsShown,
		Restaurants:   restaurants,
		Events:        events,
	}, nil
}

// handleFollowUp answers open-ended questions after recommendations were
// shown, with a catalog snapshot for context. The step never changes here.
func (e *Engine) handleFollowUp(ctx context.Context, userInput string) *Reply {
	restaurants, err := e.store.GetAllRestaurants(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to load restaurants for follow-up: %v", err)
	}
	events, err := e.store.GetActiveEvents(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to load events for follow-up: %v", err)
	}

	e.appendTurn(llm.Turn{Role: llm.RoleUser, Content: userInput})

	prompt := followUpPrompt(topRestaurants(restaurants, e.cfg.MaxCatalogItems),
		topEvents(events, e.cfg.MaxCatalogItems))

	message, err := e.gen.Generate(ctx, prompt, e.recentHistory())
	if err != nil {
		lgr.Printf("[WARN] follow-up generation failed, using fallback: %v", err)
		message = "I'd be happy to help with that! Could you let me know what specific information " +
			"you're looking for about the restaurants or deals?"
	}
	e.appendTurn(llm.Turn{Role: llm.RoleAssistant, Content: message})

	return &Reply{
		Message:       message,
		NeedsResponse: true,
		Step:          StepRecommendationsShown,
	}
}

// appendTurn records a conversation turn, keeping the history bounded to the
// configured limit. History is passed to the generator on every call, so the
// bound caps both memory and prompt size.
func (e *Engine) appendTurn(turn llm.Turn) {
	e.history = append(e.history, turn)
	if len(e.history) > e.cfg.HistoryLimit {
		e.history = e.history[len(e.history)-e.cfg.HistoryLimit:]
	}
}

// recentHistory returns a copy of the bounded turn history
func (e *Engine) recentHistory() []llm.Turn {
	out := make([]llm.Turn, len(e.history))
	copy(out, e.history)
	return out
}

// overlayLiveResponses fills profile gaps from this session's answers. Covers
// the case where a best-effort preference save failed mid-conversation.
func (e *Engine) overlayLiveResponses(profile *Profile) {
	fields := map[Question]*string{
		QuestionCuisine:        &profile.CuisinePreference,
		QuestionBudget:         &profile.BudgetRange,
		QuestionFrequency:      &profile.DiningFrequency,
		QuestionLastRestaurant: &profile.LastRestaurant,
		QuestionStyle:          &profile.DiningStyle,
		QuestionDealInterest:   &profile.DealsInterest,
	}
	for question, field := range fields {
		if *field == "" {
			*field = e.responses[question]
		}
	}
}

// describeResponses renders collected answers in schedule order for prompts
func (e *Engine) describeResponses() string {
	var out string
	for _, question := range schedule {
		value, ok := e.responses[question]
		if !ok {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += question.Label() + ": " + value
	}
	return out
}

func topRestaurants(restaurants []db.Restaurant, limit int) []db.Restaurant {
	if len(restaurants) > limit {
		return restaurants[:limit]
	}
	return restaurants
}

func topEvents(events []db.EventWithRestaurant, limit int) []db.EventWithRestaurant {
	if len(events) > limit {
		return events[:limit]
	}
	return events
}
