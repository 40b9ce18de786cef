package analytics

import (
	"fmt"
	"time"

	"cadence/internal/models"
)

const (
	// streakWindow is the number of recent entries examined for streak
	// fragility.
	streakWindow = 14

	// minStreakSamples is the minimum recent entries required before a
	// streak risk is assessed.
	minStreakSamples = 7
)

// analyzeStreakRisk flags habits with a strong recent rate but a
// volatile completion sequence: the combination most likely to break a
// streak the user cares about.
func (e *Engine) analyzeStreakRisk(habits []models.Habit) []models.Insight {
	var insights []models.Insight
	for _, h := range habits {
		recent := lastN(h.Entries, streakWindow)
		if len(recent) < minStreakSamples {
			continue
		}

		rate := completionRate(recent)
		variance := completionVariance(recent)
		if rate <= 0.7 || variance <= 0.15 {
			continue
		}

		miss := 1 - rate
		insights = append(insights, models.Insight{
			Type:        models.InsightStreak,
			Title:       fmt.Sprintf("%s Streak at Risk", h.Title),
			Description: fmt.Sprintf("Your %s streak is strong but inconsistent. There's a %d%% chance of missing a day soon. A fixed time slot can stabilize it.", h.Title, pct(miss)),
			Confidence:  0.75,
			Priority:    models.PriorityHigh,
			Actionable:  true,
			Data: models.StreakRisk{
				HabitID:         h.ID,
				HabitTitle:      h.Title,
				MissProbability: miss,
			},
		})
	}
	return insights
}

// currentStreak counts completions on consecutive calendar days ending
// today or yesterday relative to now. Older runs are records, not an
// active streak.
func currentStreak(entries []models.HabitEntry, now time.Time) int {
	desc := sortedByDateDesc(entries)
	streak := 0
	prev := now
	for _, e := range desc {
		if !e.Completed || daysBetween(e.Date, prev) > 1 {
			break
		}
		streak++
		prev = e.Date
	}
	return streak
}

// longestStreak finds the longest run of completions on consecutive
// calendar days anywhere in the history.
func longestStreak(entries []models.HabitEntry) int {
	asc := sortedByDateAsc(entries)
	longest, run := 0, 0
	var prev time.Time
	for _, e := range asc {
		switch {
		case !e.Completed:
			run = 0
			continue
		case run > 0 && daysBetween(prev, e.Date) == 1:
			run++
		default:
			run = 1
		}
		prev = e.Date
		if run > longest {
			longest = run
		}
	}
	return longest
}
