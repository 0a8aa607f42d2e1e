package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// dayTotal is one day of diary calories fed into the review prompt.
type dayTotal struct {
	Date time.Time
	Kcal int
}

// profileSummary renders the user's profile as prompt context.
func profileSummary(u *domain.User, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Sex: %s\n", u.Sex)
	fmt.Fprintf(&b, "- Age: %d years\n", domain.AgeYears(u.DateOfBirth, now))
	fmt.Fprintf(&b, "- Height: %.0f cm\n", u.HeightCm)
	fmt.Fprintf(&b, "- Current weight: %.1f kg\n", u.WeightKg)
	fmt.Fprintf(&b, "- Activity level: %s\n", u.ActivityLevel)
	fmt.Fprintf(&b, "- Goal: %s", u.GoalType)
	if u.GoalType != domain.GoalMaintain {
		fmt.Fprintf(&b, " at %.1f kg/week", u.WeeklyGoalKg)
	}
	if u.GoalWeightKg != nil {
		fmt.Fprintf(&b, ", target weight %.1f kg", *u.GoalWeightKg)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Daily calorie allowance: %d kcal", u.DailyAllowance)
	return b.String()
}

// buildPlanPrompt creates the prompt for a one-week meal plan.
func buildPlanPrompt(u *domain.User, now time.Time) string {
	return fmt.Sprintf(`You are a professional nutritionist assistant for a calorie tracking app.

Create a 7-day meal plan for a user with this profile:
%s

Rules:
- Each day must land close to the daily allowance (within roughly 5%%)
- Use common, affordable foods with realistic portion sizes in grams
- Structure each day as breakfast, lunch, dinner, and one snack
- State the approximate calories for every meal and a daily total
- Plain text only, no markdown tables`, profileSummary(u, now))
}

// buildAdvicePrompt creates the prompt for a one-shot advice question.
func buildAdvicePrompt(u *domain.User, question string, now time.Time) string {
	return fmt.Sprintf(`You are a professional nutritionist assistant for a calorie tracking app.

User profile:
%s

The user asks:
%s

Rules:
- Answer the question directly and practically, grounded in the profile above
- Keep the answer under 300 words
- Recommend consulting a doctor for anything medical
- Plain text only`, profileSummary(u, now), question)
}

// buildReviewPrompt creates the prompt for a progress review over recent
// weight history and diary totals.
func buildReviewPrompt(u *domain.User, weights []domain.WeightEntry, totals []dayTotal, now time.Time) string {
	var history strings.Builder
	if len(weights) == 0 {
		history.WriteString("(no weight entries in the last two weeks)")
	}
	for i, w := range weights {
		if i > 0 {
			history.WriteString("\n")
		}
		fmt.Fprintf(&history, "- %s: %.1f kg", w.EntryDate.Format("2006-01-02"), w.WeightKg)
	}

	var diary strings.Builder
	for i, d := range totals {
		if i > 0 {
			diary.WriteString("\n")
		}
		fmt.Fprintf(&diary, "- %s: %d kcal", d.Date.Format("2006-01-02"), d.Kcal)
	}

	return fmt.Sprintf(`You are a professional nutritionist assistant for a calorie tracking app.

User profile:
%s

Weight entries over the last two weeks:
%s

Diary calorie totals over the last week:
%s

Write a short progress review:
- Describe the weight trend and how daily intake compares to the allowance
- Point out one thing going well and one concrete improvement
- Be encouraging but honest; never shame the user
- Keep it under 250 words, plain text only`, profileSummary(u, now), history.String(), diary.String())
}
