package analytics

import (
	"testing"

	"cadence/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePersonalizedCoaching(t *testing.T) {
	t.Run("outstanding week keeps momentum focus", func(t *testing.T) {
		habits := []models.Habit{habit("Meditation", recentEntries("xxxxxxx"))}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		assert.Contains(t, plan.MotivationalMessage, "Outstanding")
		assert.Equal(t, "Maintaining momentum", plan.FocusArea)
		assert.NotEmpty(t, plan.ActionPlan)
		assert.NotEmpty(t, plan.Encouragement)
	})

	t.Run("solid week focuses on closing the gap", func(t *testing.T) {
		habits := []models.Habit{habit("Run", recentEntries("xxxxx.."))}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		assert.Equal(t, "Closing the gap", plan.FocusArea)
	})

	t.Run("mixed week rebuilds consistency", func(t *testing.T) {
		habits := []models.Habit{habit("Run", recentEntries("xxx...."))}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		assert.Equal(t, "Rebuilding consistency", plan.FocusArea)
	})

	t.Run("tough week restarts small", func(t *testing.T) {
		habits := []models.Habit{habit("Run", recentEntries("x......"))}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		assert.Equal(t, "Getting back on track", plan.FocusArea)
		assert.Contains(t, plan.MotivationalMessage, "restart")
	})

	t.Run("low mood leads the action plan", func(t *testing.T) {
		entries := recentEntries("xxxxxxx")
		for i := range entries {
			entries[i].Mood = 4
		}
		habits := []models.Habit{habit("Run", entries)}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		require.NotEmpty(t, plan.ActionPlan)
		assert.Contains(t, plan.ActionPlan[0], "lifts your mood")
	})

	t.Run("hard week appends decomposition advice", func(t *testing.T) {
		entries := recentEntries("xxxxxxx")
		for i := range entries {
			entries[i].Difficulty = 9
		}
		habits := []models.Habit{habit("Run", entries)}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		require.NotEmpty(t, plan.ActionPlan)
		assert.Contains(t, plan.ActionPlan[len(plan.ActionPlan)-1], "two smaller steps")
	})

	t.Run("active streak becomes a weekly goal", func(t *testing.T) {
		habits := []models.Habit{habit("Meditation", recentEntries("xxxxxxx"))}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		require.NotEmpty(t, plan.WeeklyGoals)
		assert.Contains(t, plan.WeeklyGoals[len(plan.WeeklyGoals)-1], "Extend your 7-day Meditation streak")
	})

	t.Run("broken streak falls back to the record goal", func(t *testing.T) {
		habits := []models.Habit{habit("Run", recentEntries("xxxxxx."))}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		require.NotEmpty(t, plan.WeeklyGoals)
		assert.Contains(t, plan.WeeklyGoals[len(plan.WeeklyGoals)-1], "record streak of 6 days")
	})

	t.Run("a month-old streak is not extended", func(t *testing.T) {
		habits := []models.Habit{habit("Run", entriesEndingAt(testNow.AddDate(0, 0, -30), "xxxxx"))}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		for _, goal := range plan.WeeklyGoals {
			assert.NotContains(t, goal, "Extend")
		}
	})

	t.Run("choppy history yields no streak goal", func(t *testing.T) {
		habits := []models.Habit{habit("Run", recentEntries("x.x.x.."))}

		plan := testEngine().GeneratePersonalizedCoaching(habits)
		for _, goal := range plan.WeeklyGoals {
			assert.NotContains(t, goal, "streak")
		}
	})

	t.Run("no habits still produces a plan", func(t *testing.T) {
		plan := testEngine().GeneratePersonalizedCoaching(nil)
		assert.NotEmpty(t, plan.MotivationalMessage)
		assert.NotEmpty(t, plan.ActionPlan)
	})
}
