package analytics

import (
	"testing"
	"time"

	"cadence/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mondaysOnly builds n weekly entries on consecutive Mondays.
func mondaysOnly(n int, completed bool) []models.HabitEntry {
	entries := make([]models.HabitEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, models.HabitEntry{
			Date:      mondayAnchor.AddDate(0, 0, 7*i),
			Completed: completed,
		})
	}
	return entries
}

func TestAnalyzeWeekdays(t *testing.T) {
	t.Run("monday champion", func(t *testing.T) {
		// Five completed Mondays and nothing else: Monday rate 1.0.
		habits := []models.Habit{habit("Meditation", mondaysOnly(5, true))}

		insights := testEngine().analyzeWeekdays(habits)
		require.Len(t, insights, 1)

		in := insights[0]
		assert.Equal(t, "Monday Champion", in.Title)
		assert.Equal(t, 0.9, in.Confidence)
		assert.Equal(t, models.PriorityMedium, in.Priority)
		assert.Equal(t, "day_Monday", in.RecommendationID)

		data, ok := in.Data.(models.WeekdayChampion)
		require.True(t, ok)
		assert.Equal(t, time.Monday, data.BestDay)
		assert.Equal(t, 1.0, data.Rate)
	})

	t.Run("champion suppressed once used", func(t *testing.T) {
		habits := []models.Habit{habit("Meditation", mondaysOnly(5, true))}

		e := testEngine(WithUsedRecommendations([]string{"day_Monday"}))
		assert.Empty(t, e.analyzeWeekdays(habits))
	})

	t.Run("needs attention on weak day with enough samples", func(t *testing.T) {
		// Five missed Mondays plus five completed Tuesdays.
		entries := mondaysOnly(5, false)
		for i := 0; i < 5; i++ {
			entries = append(entries, models.HabitEntry{
				Date:      mondayAnchor.AddDate(0, 0, 7*i+1),
				Completed: true,
			})
		}
		habits := []models.Habit{habit("Run", entries)}

		insights := testEngine().analyzeWeekdays(habits)

		var found bool
		for _, in := range insights {
			if data, ok := in.Data.(models.WeekdayStruggle); ok {
				found = true
				assert.Equal(t, time.Monday, data.WorstDay)
				assert.Equal(t, models.PriorityHigh, in.Priority)
				assert.Equal(t, 0.8, in.Confidence)
			}
		}
		assert.True(t, found, "expected a struggle insight")
	})

	t.Run("moderate best day is informational and never deduplicated", func(t *testing.T) {
		// 7 of 10 Mondays completed: rate 0.7, in the (0.6, 0.8] band.
		entries := mondaysOnly(7, true)
		for i := 7; i < 10; i++ {
			entries = append(entries, models.HabitEntry{
				Date:      mondayAnchor.AddDate(0, 0, 7*i),
				Completed: false,
			})
		}
		habits := []models.Habit{habit("Read", entries)}

		e := testEngine(WithUsedRecommendations([]string{"day_Monday"}))
		insights := e.analyzeWeekdays(habits)
		require.Len(t, insights, 1)
		assert.False(t, insights[0].Actionable)
		assert.Equal(t, models.PriorityLow, insights[0].Priority)
		assert.Empty(t, insights[0].RecommendationID)
	})

	t.Run("too few samples per day yields nothing", func(t *testing.T) {
		habits := []models.Habit{habit("New", mondaysOnly(2, true))}
		assert.Empty(t, testEngine().analyzeWeekdays(habits))
	})
}
