package analytics

import (
	"testing"

	"cadence/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeStreakRisk(t *testing.T) {
	t.Run("strong but volatile habit is flagged", func(t *testing.T) {
		// 10 of 14 completed in alternating streaks: rate ~0.71,
		// variance ~0.20.
		habits := []models.Habit{habit("Run", recentEntries("xxx.xxx.xxx.x."))}

		insights := testEngine().analyzeStreakRisk(habits)
		require.Len(t, insights, 1)

		in := insights[0]
		assert.Equal(t, models.InsightStreak, in.Type)
		assert.Equal(t, models.PriorityHigh, in.Priority)
		assert.Equal(t, 0.75, in.Confidence)

		data, ok := in.Data.(models.StreakRisk)
		require.True(t, ok)
		assert.InDelta(t, 1-10.0/14.0, data.MissProbability, 1e-9)
		assert.Contains(t, in.Description, "29%")
	})

	t.Run("perfectly consistent habit is not flagged", func(t *testing.T) {
		habits := []models.Habit{habit("Meditation", recentEntries("xxxxxxxxxxxxxx"))}
		assert.Empty(t, testEngine().analyzeStreakRisk(habits))
	})

	t.Run("low-rate habit is not flagged", func(t *testing.T) {
		habits := []models.Habit{habit("Run", recentEntries("x.x.x.x.x.x.x."))}
		assert.Empty(t, testEngine().analyzeStreakRisk(habits))
	})

	t.Run("too little history is skipped", func(t *testing.T) {
		habits := []models.Habit{habit("New", recentEntries("xxx.x."))}
		assert.Empty(t, testEngine().analyzeStreakRisk(habits))
	})

	t.Run("only the last 14 entries count", func(t *testing.T) {
		// Old misses beyond the window must not affect the result.
		pattern := "..............xxxxxxxxxxxxxx" // 14 old misses, 14 recent completions
		habits := []models.Habit{habit("Read", recentEntries(pattern))}
		assert.Empty(t, testEngine().analyzeStreakRisk(habits))
	})
}

func TestStreakHelpers(t *testing.T) {
	t.Run("current streak counts trailing completions", func(t *testing.T) {
		assert.Equal(t, 3, currentStreak(recentEntries("x.xxx"), testNow))
		assert.Equal(t, 0, currentStreak(recentEntries("xxxx."), testNow))
		assert.Equal(t, 0, currentStreak(nil, testNow))
	})

	t.Run("a streak that ended weeks ago is not current", func(t *testing.T) {
		stale := entriesEndingAt(testNow.AddDate(0, 0, -30), "xxxxx")
		assert.Equal(t, 0, currentStreak(stale, testNow))
	})

	t.Run("a calendar gap breaks the current streak", func(t *testing.T) {
		entries := append(
			entriesEndingAt(testNow.AddDate(0, 0, -4), "xxx"),
			entriesEndingAt(testNow.AddDate(0, 0, -1), "xx")...,
		)
		assert.Equal(t, 2, currentStreak(entries, testNow))
	})

	t.Run("longest streak scans the whole history", func(t *testing.T) {
		assert.Equal(t, 4, longestStreak(recentEntries("xxxx.xx.x")))
		assert.Equal(t, 0, longestStreak(recentEntries("....")))
	})

	t.Run("longest streak requires consecutive days", func(t *testing.T) {
		entries := append(
			entriesEndingAt(testNow.AddDate(0, 0, -10), "xxx"),
			entriesEndingAt(testNow.AddDate(0, 0, -1), "xx")...,
		)
		assert.Equal(t, 3, longestStreak(entries))
	})
}
