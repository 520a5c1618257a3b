package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/LuckyNugget/YourFoodie/pkg/db"
)

// greetingPrompt opens the conversation for a first-time user
const greetingPrompt = `You are a friendly and knowledgeable restaurant recommendation assistant for YourFoodie,
a service that helps people discover great local restaurants and deals.

Your personality:
- Warm, enthusiastic, and helpful
- Passionate about food and dining experiences
- Great at asking engaging questions to understand preferences

Your goal is to:
1. Greet the user warmly and introduce yourself
2. Explain that you'll ask a few quick questions to understand their dining preferences
3. Ask the FIRST question about cuisine preferences
4. Keep the greeting conversational but concise (2-3 sentences max)

Start by greeting them and asking: "What type of cuisine do you enjoy most? (Italian, Mexican, American, Asian, etc.)"`

// fallbackGreeting is the static opening used when generation fails
const fallbackGreeting = "Hi there! I'm your YourFoodie restaurant guide. I'd love to help you find amazing restaurants. " +
	"To get started, what type of cuisine do you enjoy most? (Italian, Mexican, American, Asian, etc.)"

// welcomeBackPrompt greets a returning user with remembered preferences
func welcomeBackPrompt(summary string) string {
	return fmt.Sprintf(`You are a restaurant recommendation assistant. The user is returning and you remember
their preferences: %s.

Greet them warmly as a returning user, mention what you remember about their preferences, and offer to:
1. Give recommendations based on their known preferences
2. Update their preferences if tastes have changed
3. Show current deals and events

Keep it friendly and conversational (2-3 sentences).`, summary)
}

// transitionPrompt acknowledges the answered question and asks the next one
func transitionPrompt(answered, next Question) string {
	return fmt.Sprintf(`You are a restaurant recommendation assistant. You just received the user's response
about their %s.

Acknowledge their response positively and naturally, then ask the next question: %q

Keep the transition natural and conversational. Acknowledge their previous response briefly,
then ask the next question.`, answered.Label(), next.Text())
}

// profileCompletePrompt summarizes the finished profile
func profileCompletePrompt(responses string) string {
	return fmt.Sprintf(`You are a restaurant recommendation assistant. The user has just completed their
preference profile. Here's what you learned about them:

%s

Create an enthusiastic summary of their preferences and ask if they're ready for personalized
restaurant recommendations. Keep it warm, concise, and exciting - they should feel like you
really understand their tastes now.

End by asking if they want to see restaurant recommendations.`, responses)
}

// recommendationPrompt renders personalized picks from the filtered catalog
func recommendationPrompt(profile Profile, restaurants []db.Restaurant, events []db.EventWithRestaurant) string {
	return fmt.Sprintf(`You are a restaurant recommendation assistant. Based on the user's preferences and the
available restaurants/events data, create personalized restaurant recommendations.

User Preferences: %s

Available Restaurants: %s

Current Events/Deals: %s

Create an engaging recommendation response that:
1. References their specific preferences
2. Explains WHY each restaurant is perfect for them
3. Highlights relevant deals/events they'd love
4. Ends by asking if they want more details or other options

Make it personal and exciting - like a knowledgeable friend making recommendations!`,
		profile.Describe(), compactJSON(restaurants), compactJSON(events))
}

// followUpPrompt answers open-ended questions with catalog context
func followUpPrompt(restaurants []db.Restaurant, events []db.EventWithRestaurant) string {
	return fmt.Sprintf(`You are a restaurant recommendation assistant. The user is asking a follow-up question
after you've shown them restaurant recommendations.

Available restaurants: %s
Current events: %s

Respond helpfully to their follow-up question. If they're asking about:
- Specific restaurant details: Provide what you know
- Different cuisine types: Suggest alternatives from the data
- Current deals: Highlight relevant events
- Location/directions: Provide address info
- General questions: Answer knowledgeably

Keep responses conversational and helpful. If you don't have specific information, be honest
but offer what you can provide.`, compactJSON(restaurants), compactJSON(events))
}

// fallbackRecommendation renders a plain-text recommendation list when the
// generation gateway is unavailable. Wording degrades, the state machine
// still advances.
func fallbackRecommendation(restaurants []db.Restaurant, events []db.EventWithRestaurant) string {
	var sb strings.Builder
	sb.WriteString("Here's what I found for you!")

	if len(restaurants) > 0 {
		sb.WriteString(" Top picks: ")
		for i, restaurant := range restaurants {
			if i >= 3 {
				break
			}
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%s (%s, %s, rated %.1f)",
				restaurant.Name, restaurant.CuisineType, restaurant.PriceRange, restaurant.Rating))
		}
		sb.WriteString(".")
	} else {
		sb.WriteString(" I couldn't find restaurants matching all your preferences, but I can broaden the search.")
	}

	if len(events) > 0 {
		best := events[0]
		sb.WriteString(fmt.Sprintf(" Don't miss %q at %s - %d%% off!", best.Title, best.RestaurantName, best.DiscountPercent))
	}

	sb.WriteString(" Want more details or other options?")
	return sb.String()
}

// compactJSON marshals catalog data for inclusion in prompts
func compactJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}
