package analytics

import (
	"fmt"
	"strings"

	"cadence/internal/models"
)

const (
	// maxSuggestions caps the category-gap suggestions per analysis run.
	maxSuggestions = 2

	// difficultyWindow and minDifficultySamples bound the difficulty-fit
	// analyzer.
	difficultyWindow     = 21
	minDifficultySamples = 14

	// recoveryWindow and minRecoverySamples bound the recovery analyzer.
	recoveryWindow     = 7
	minRecoverySamples = 5

	// minMoodSamples is the minimum rated completions before mood is
	// correlated with a habit.
	minMoodSamples = 5

	// minTrendSamples is the minimum rated completions before a
	// difficulty trend is computed.
	minTrendSamples = 7
)

// suggestionRule is one category-gap heuristic.
type suggestionRule struct {
	applies    func(habits []models.Habit) bool
	suggestion models.HabitSuggestion
	reason     string
	confidence float64
}

// suggestHabits proposes new habits that fill obvious gaps in the user's
// set. At most maxSuggestions are emitted, and each is suppressed once
// acted on.
func (e *Engine) suggestHabits(habits []models.Habit) []models.Insight {
	rules := []suggestionRule{
		{
			applies: func(hs []models.Habit) bool {
				return hasCategory(hs, "Health") && !anyTitleContains(hs, "water")
			},
			suggestion: models.HabitSuggestion{Title: "Drink Water", Category: "Health"},
			reason:     "You track health habits but none cover hydration.",
			confidence: 0.8,
		},
		{
			applies: func(hs []models.Habit) bool {
				return hasCategory(hs, "Productivity") && !anyTitleContains(hs, "meditation")
			},
			suggestion: models.HabitSuggestion{Title: "Morning Meditation", Category: "Productivity"},
			reason:     "A short meditation pairs well with a productivity routine.",
			confidence: 0.7,
		},
		{
			applies: func(hs []models.Habit) bool {
				return len(hs) >= 3 && !hasCategory(hs, "Learning")
			},
			suggestion: models.HabitSuggestion{Title: "Read for 15 Minutes", Category: "Learning"},
			reason:     "Your routine has no learning habit yet.",
			confidence: 0.7,
		},
	}

	var insights []models.Insight
	for _, rule := range rules {
		if len(insights) >= maxSuggestions {
			break
		}
		if !rule.applies(habits) {
			continue
		}
		key := DedupKey(rule.suggestion)
		if e.isUsed(key) {
			continue
		}
		insights = append(insights, models.Insight{
			Type:             models.InsightRecommendation,
			Title:            fmt.Sprintf("Try: %s", rule.suggestion.Title),
			Description:      rule.reason,
			Confidence:       rule.confidence,
			Priority:         models.PriorityMedium,
			Actionable:       true,
			ShowActionButton: true,
			Data:             rule.suggestion,
			RecommendationID: key,
		})
	}
	return insights
}

// analyzeDifficultyFit flags habits that are too hard to stick with or
// too easy to keep growing from, based on the last three weeks.
func (e *Engine) analyzeDifficultyFit(habits []models.Habit) []models.Insight {
	var insights []models.Insight
	for _, h := range habits {
		recent := lastN(h.Entries, difficultyWindow)
		if len(recent) < minDifficultySamples {
			continue
		}
		rate := completionRate(recent)

		switch {
		case rate < 0.3:
			insights = append(insights, models.Insight{
				Type:        models.InsightRecommendation,
				Title:       fmt.Sprintf("Simplify %s", h.Title),
				Description: fmt.Sprintf("%s has a %d%% completion rate recently. Shrinking it to a 2-minute version rebuilds the habit loop.", h.Title, pct(rate)),
				Confidence:  0.8,
				Priority:    models.PriorityHigh,
				Actionable:  true,
				Data: models.DifficultyAdjustment{
					HabitID:    h.ID,
					HabitTitle: h.Title,
					Direction:  "simplify",
				},
			})
		case rate > 0.9 && len(recent) == difficultyWindow:
			insights = append(insights, models.Insight{
				Type:        models.InsightRecommendation,
				Title:       fmt.Sprintf("Level Up %s", h.Title),
				Description: fmt.Sprintf("%s is at %d%% over three full weeks. You're ready to raise the bar.", h.Title, pct(rate)),
				Confidence:  0.75,
				Priority:    models.PriorityMedium,
				Actionable:  true,
				Data: models.DifficultyAdjustment{
					HabitID:    h.ID,
					HabitTitle: h.Title,
					Direction:  "challenge",
				},
			})
		}
	}
	return insights
}

// buildRecoveryPlans frames a concrete comeback goal for habits that
// wobbled this week but are not abandoned.
func (e *Engine) buildRecoveryPlans(habits []models.Habit) []models.Insight {
	var insights []models.Insight
	for _, h := range habits {
		recent := lastN(h.Entries, recoveryWindow)
		if len(recent) < minRecoverySamples {
			continue
		}

		completed := 0
		for _, entry := range recent {
			if entry.Completed {
				completed++
			}
		}
		missed := len(recent) - completed
		if missed < 2 || completed < 2 {
			continue
		}

		insights = append(insights, models.Insight{
			Type:        models.InsightRecommendation,
			Title:       fmt.Sprintf("Recovery Plan: %s", h.Title),
			Description: fmt.Sprintf("You missed %s %d times this week but still showed up %d times. Aim for one completion in the next 2 days to get back on track.", h.Title, missed, completed),
			Confidence:  0.7,
			Priority:    models.PriorityMedium,
			Actionable:  true,
			Data: models.RecoveryPlan{
				HabitID:    h.ID,
				HabitTitle: h.Title,
				Missed:     missed,
				Completed:  completed,
			},
		})
	}
	return insights
}

// analyzeMoodLinks correlates recorded mood with completed entries per
// habit.
func (e *Engine) analyzeMoodLinks(habits []models.Habit) []models.Insight {
	var insights []models.Insight
	for _, h := range habits {
		var moods []float64
		for _, entry := range h.Entries {
			if entry.Completed && entry.Mood > 0 {
				moods = append(moods, float64(entry.Mood))
			}
		}
		if len(moods) < minMoodSamples {
			continue
		}

		avg := mean(moods)
		switch {
		case avg >= 8:
			insights = append(insights, models.Insight{
				Type:        models.InsightPattern,
				Title:       fmt.Sprintf("%s Lifts Your Mood", h.Title),
				Description: fmt.Sprintf("Days you complete %s average a mood of %.1f/10. This habit is pulling its weight.", h.Title, avg),
				Confidence:  0.8,
				Priority:    models.PriorityLow,
				Actionable:  false,
				Data: models.MoodLink{
					HabitID:     h.ID,
					HabitTitle:  h.Title,
					AverageMood: avg,
					Positive:    true,
				},
			})
		case avg <= 4:
			insights = append(insights, models.Insight{
				Type:        models.InsightRecommendation,
				Title:       fmt.Sprintf("%s May Need Adjustment", h.Title),
				Description: fmt.Sprintf("Your mood averages %.1f/10 when you complete %s. Changing when or how you do it could help.", avg, h.Title),
				Confidence:  0.75,
				Priority:    models.PriorityHigh,
				Actionable:  true,
				Data: models.MoodLink{
					HabitID:     h.ID,
					HabitTitle:  h.Title,
					AverageMood: avg,
					Positive:    false,
				},
			})
		}
	}
	return insights
}

// analyzeDifficultyTrends compares early and late difficulty ratings to
// catch habits drifting easier or harder.
func (e *Engine) analyzeDifficultyTrends(habits []models.Habit) []models.Insight {
	var insights []models.Insight
	for _, h := range habits {
		var rated []float64
		for _, entry := range sortedByDateAsc(h.Entries) {
			if entry.Completed && entry.Difficulty > 0 {
				rated = append(rated, float64(entry.Difficulty))
			}
		}
		if len(rated) < minTrendSamples {
			continue
		}

		early := mean(rated[:5])
		late := mean(rated[len(rated)-5:])
		delta := late - early

		switch {
		case delta <= -2:
			insights = append(insights, models.Insight{
				Type:        models.InsightPattern,
				Title:       fmt.Sprintf("%s Is Getting Easier", h.Title),
				Description: fmt.Sprintf("Your difficulty ratings for %s dropped from %.1f to %.1f. Time to raise the challenge.", h.Title, early, late),
				Confidence:  0.75,
				Priority:    models.PriorityMedium,
				Actionable:  true,
				Data: models.DifficultyTrend{
					HabitID:    h.ID,
					HabitTitle: h.Title,
					Delta:      delta,
				},
			})
		case delta >= 2:
			insights = append(insights, models.Insight{
				Type:        models.InsightPattern,
				Title:       fmt.Sprintf("%s Is Becoming More Challenging", h.Title),
				Description: fmt.Sprintf("Your difficulty ratings for %s climbed from %.1f to %.1f. Breaking it into smaller steps can keep it sustainable.", h.Title, early, late),
				Confidence:  0.75,
				Priority:    models.PriorityHigh,
				Actionable:  true,
				Data: models.DifficultyTrend{
					HabitID:    h.ID,
					HabitTitle: h.Title,
					Delta:      delta,
				},
			})
		}
	}
	return insights
}

// --- category/title scanning helpers ---

func hasCategory(habits []models.Habit, category string) bool {
	for _, h := range habits {
		if strings.EqualFold(h.CategoryOrDefault(), category) {
			return true
		}
	}
	return false
}

func anyTitleContains(habits []models.Habit, substr string) bool {
	for _, h := range habits {
		if strings.Contains(strings.ToLower(h.Title), substr) {
			return true
		}
	}
	return false
}
