package chat

// Step identifies the dialogue state. The set is closed: anything outside
// these four values is an internal invariant violation.
type Step string

// dialogue steps
const (
	StepGreeting             Step = "greeting"
	StepProfileBuilding      Step = "profile_building"
	StepRecommendationReady  Step = "recommendation_ready"
	StepRecommendationsShown Step = "recommendations_shown"
)

// Question identifies a profile-building question. Question identifiers double
// as preference types in the store.
type Question string

// profile questions, in schedule order
const (
	QuestionCuisine        Question = "cuisine_preference"
	QuestionBudget         Question = "budget_range"
	QuestionFrequency      Question = "dining_frequency"
	QuestionLastRestaurant Question = "last_restaurant"
	QuestionStyle          Question = "dining_style"
	QuestionDealInterest   Question = "deal_interest"
)

// schedule is the fixed, ordered question table driving profile building.
// Progress through it is positional: the engine's question index is the only
// determinant of the current question.
var schedule = []Question{
	QuestionCuisine,
	QuestionBudget,
	QuestionFrequency,
	QuestionLastRestaurant,
	QuestionStyle,
	QuestionDealInterest,
}

// ScheduleLen returns the number of questions in the fixed schedule
func ScheduleLen() int { return len(schedule) }

// questionTexts holds the canonical wording for each question. The LLM is
// asked to phrase transitions naturally around these; on generation failure
// the fallback texts below are used verbatim.
var questionTexts = map[Question]string{
	QuestionCuisine:        "What type of cuisine do you enjoy most? (Italian, Mexican, American, Asian, etc.)",
	QuestionBudget:         "What's your typical budget per person? ($ for under $15, $$ for $15-30, $$$ for $30-50, $$$$ for $50+)",
	QuestionFrequency:      "How often do you dine out? (Daily, few times a week, weekly, occasionally)",
	QuestionLastRestaurant: "What was the last restaurant you really enjoyed and why?",
	QuestionStyle:          "Do you prefer casual spots or more upscale dining experiences?",
	QuestionDealInterest:   "Are you interested in happy hours, late night deals, or special events?",
}

// fallbackQuestions carry a short acknowledgment plus the next question,
// used when the generation gateway is unavailable
var fallbackQuestions = map[Question]string{
	QuestionBudget:         "Perfect! What's your typical budget per person? ($ for under $15, $$ for $15-30, $$$ for $30-50, $$$$ for $50+)",
	QuestionFrequency:      "Great! How often do you dine out? (Daily, few times a week, weekly, occasionally)",
	QuestionLastRestaurant: "Got it! What was the last restaurant you really enjoyed and why?",
	QuestionStyle:          "Excellent! Do you prefer casual spots or more upscale dining experiences?",
	QuestionDealInterest:   "Perfect! Are you interested in happy hours, late night deals, or special events?",
}

// Text returns the canonical wording for the question
func (q Question) Text() string { return questionTexts[q] }

// Fallback returns the static transition text used when generation fails
func (q Question) Fallback() string {
	if text, ok := fallbackQuestions[q]; ok {
		return text
	}
	return "Could you tell me more about your preferences?"
}

// Label returns a human-readable form of the question identifier
func (q Question) Label() string {
	out := make([]byte, len(q))
	for i := 0; i < len(q); i++ {
		if q[i] == '_' {
			out[i] = ' '
			continue
		}
		out[i] = q[i]
	}
	return string(out)
}

// options offered once the profile is complete
var readyOptions = []string{
	"Yes, show me restaurants!",
	"Tell me about current deals",
	"Update something about my profile",
}

// options offered to a returning user with remembered preferences
var welcomeBackOptions = []string{
	"Get recommendations now",
	"Update my preferences",
	"Show me current deals",
}
