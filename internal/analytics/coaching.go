package analytics

import (
	"fmt"
	"time"

	"cadence/internal/models"
)

// coachingTier holds the narrative content for one performance band.
type coachingTier struct {
	message       string
	focusArea     string
	encouragement string
	actionPlan    []string
	weeklyGoals   []string
}

// GeneratePersonalizedCoaching builds a motivational plan from the last
// seven days across all habits: a tiered message, an action plan, and
// weekly goals, adjusted for low mood and high difficulty.
func (e *Engine) GeneratePersonalizedCoaching(habits []models.Habit) models.CoachingPlan {
	cutoff := e.now().AddDate(0, 0, -7)

	var recent rateStat
	var moods, difficulties []float64
	for _, h := range habits {
		for _, entry := range h.Entries {
			if entry.Date.Before(cutoff) {
				continue
			}
			recent.add(entry.Completed)
			if entry.Mood > 0 {
				moods = append(moods, float64(entry.Mood))
			}
			if entry.Difficulty > 0 {
				difficulties = append(difficulties, float64(entry.Difficulty))
			}
		}
	}

	rate := recent.rate()
	tier := tierFor(rate)

	actionPlan := append([]string(nil), tier.actionPlan...)
	weeklyGoals := append([]string(nil), tier.weeklyGoals...)

	// Mood and difficulty overrides take precedence over tier content.
	if len(moods) > 0 && mean(moods) < 6 {
		actionPlan = append([]string{"Start each day with the habit that lifts your mood most"}, actionPlan...)
	}
	if len(difficulties) > 0 && mean(difficulties) > 7 {
		actionPlan = append(actionPlan, "Your habits are rating hard lately. Split the toughest one into two smaller steps.")
	}

	if goal, ok := streakGoal(habits, e.now()); ok {
		weeklyGoals = append(weeklyGoals, goal)
	}

	return models.CoachingPlan{
		MotivationalMessage: tier.message,
		FocusArea:           tier.focusArea,
		ActionPlan:          actionPlan,
		Encouragement:       tier.encouragement,
		WeeklyGoals:         weeklyGoals,
	}
}

// tierFor selects coaching content by 7-day completion rate.
func tierFor(rate float64) coachingTier {
	switch {
	case rate > 0.8:
		return coachingTier{
			message:       "Outstanding week. You're operating at a level most people never reach.",
			focusArea:     "Maintaining momentum",
			encouragement: "Consistency like this compounds. Keep going.",
			actionPlan: []string{
				"Protect your current routine; change nothing that's working",
				"Pick one habit to make slightly more ambitious",
				"Note what made this week work so you can repeat it",
			},
			weeklyGoals: []string{
				"Hold your completion rate above 80%",
				"Raise the bar on one established habit",
			},
		}
	case rate > 0.6:
		return coachingTier{
			message:       "Solid week. You're building real momentum.",
			focusArea:     "Closing the gap",
			encouragement: "You're closer to a great week than you think.",
			actionPlan: []string{
				"Identify the one day that cost you the most completions",
				"Move your most-missed habit to your strongest time of day",
				"Prepare tomorrow's habits the night before",
			},
			weeklyGoals: []string{
				"Push your completion rate past 80%",
				"Complete every habit on at least 4 days",
			},
		}
	case rate > 0.4:
		return coachingTier{
			message:       "A mixed week, but the foundation is there.",
			focusArea:     "Rebuilding consistency",
			encouragement: "Every completed day is a vote for the person you're becoming.",
			actionPlan: []string{
				"Cut each habit down to its smallest honest version",
				"Anchor habits to things you already do daily",
				"Celebrate completions immediately, even small ones",
			},
			weeklyGoals: []string{
				"Complete at least half of your habits each day",
				"Log every day, even the misses",
			},
		}
	default:
		return coachingTier{
			message:       "Tough week. What matters now is the restart, not the record.",
			focusArea:     "Getting back on track",
			encouragement: "Missing days doesn't erase your progress. Showing up today rebuilds it.",
			actionPlan: []string{
				"Pick one single habit and ignore the rest for 3 days",
				"Do the 2-minute version until it feels automatic again",
				"Remove one obstacle that made you skip last week",
			},
			weeklyGoals: []string{
				"Complete your chosen habit 5 of the next 7 days",
				"Re-introduce a second habit once the first feels stable",
			},
		}
	}
}

// streakGoal phrases a goal around the user's best active streak, or
// around their record when no streak is currently alive.
func streakGoal(habits []models.Habit, now time.Time) (string, bool) {
	bestTitle := ""
	best, record := 0, 0
	for _, h := range habits {
		if s := currentStreak(h.Entries, now); s > best {
			best = s
			bestTitle = h.Title
		}
		if l := longestStreak(h.Entries); l > record {
			record = l
		}
	}
	if best >= 2 {
		return fmt.Sprintf("Extend your %d-day %s streak", best, bestTitle), true
	}
	if record >= 3 {
		return fmt.Sprintf("Rebuild toward your record streak of %d days", record), true
	}
	return "", false
}
