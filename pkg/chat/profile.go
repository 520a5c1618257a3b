package chat

import (
	"strings"

	"github.com/LuckyNugget/YourFoodie/pkg/db"
)

// Profile is the latest-per-type view over a user's preference history,
// the input to recommendation filtering
type Profile struct {
	CuisinePreference string
	BudgetRange       string
	DiningFrequency   string
	LastRestaurant    string
	DiningStyle       string
	DealsInterest     string
}

// ProfileFromPreferences derives the latest-per-type view from preference
// records ordered newest first. The first record seen for a type wins.
func ProfileFromPreferences(prefs []db.Preference) Profile {
	var profile Profile
	for _, pref := range prefs {
		switch Question(pref.PreferenceType) {
		case QuestionCuisine:
			if profile.CuisinePreference == "" {
				profile.CuisinePreference = pref.PreferenceValue
			}
		case QuestionBudget:
			if profile.BudgetRange == "" {
				profile.BudgetRange = pref.PreferenceValue
			}
		case QuestionFrequency:
			if profile.DiningFrequency == "" {
				profile.DiningFrequency = pref.PreferenceValue
			}
		case QuestionLastRestaurant:
			if profile.LastRestaurant == "" {
				profile.LastRestaurant = pref.PreferenceValue
			}
		case QuestionStyle:
			if profile.DiningStyle == "" {
				profile.DiningStyle = pref.PreferenceValue
			}
		case QuestionDealInterest:
			if profile.DealsInterest == "" {
				profile.DealsInterest = pref.PreferenceValue
			}
		}
	}
	return profile
}

// Summary renders a short human-readable description of what is remembered,
// used in the welcome-back wording
func (p Profile) Summary() string {
	var summary string
	if p.CuisinePreference != "" {
		summary = p.CuisinePreference
	}
	if p.BudgetRange != "" {
		if summary != "" {
			summary += " food in the " + p.BudgetRange + " range"
		} else {
			summary = p.BudgetRange + " dining"
		}
	}
	if summary == "" {
		return "great food"
	}
	return summary
}

// Describe renders the full profile as "label: value" pairs for LLM prompts
func (p Profile) Describe() string {
	pairs := []struct {
		label, value string
	}{
		{QuestionCuisine.Label(), p.CuisinePreference},
		{QuestionBudget.Label(), p.BudgetRange},
		{QuestionFrequency.Label(), p.DiningFrequency},
		{QuestionLastRestaurant.Label(), p.LastRestaurant},
		{QuestionStyle.Label(), p.DiningStyle},
		{QuestionDealInterest.Label(), p.DealsInterest},
	}

	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if pair.value == "" {
			continue
		}
		parts = append(parts, pair.label+": "+pair.value)
	}
	return strings.Join(parts, ", ")
}
