package analytics

import (
	"testing"

	"cadence/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCorrelations(t *testing.T) {
	t.Run("perfect pair on five shared dates", func(t *testing.T) {
		entries := recentEntries("xxxxx")
		habits := []models.Habit{
			habit("Meditation", entries),
			habit("Journal", entries),
		}

		insights := testEngine().analyzeCorrelations(habits)
		require.Len(t, insights, 1, "one insight per unordered pair")

		in := insights[0]
		assert.Equal(t, 1.0, in.Confidence)
		assert.Equal(t, "correlation_Meditation_Journal", in.RecommendationID)

		data, ok := in.Data.(models.Correlation)
		require.True(t, ok)
		assert.Equal(t, "Meditation", data.Title1)
		assert.Equal(t, "Journal", data.Title2)
		assert.Equal(t, 1.0, data.Score)
	})

	t.Run("fewer than five shared dates scores zero", func(t *testing.T) {
		entries := recentEntries("xxxx")
		habits := []models.Habit{
			habit("Meditation", entries),
			habit("Journal", entries),
		}
		assert.Empty(t, testEngine().analyzeCorrelations(habits))
	})

	t.Run("weak correlation is not surfaced", func(t *testing.T) {
		habits := []models.Habit{
			habit("Meditation", recentEntries("xxxxx.....")),
			habit("Journal", recentEntries(".....xxxxx")),
		}
		assert.Empty(t, testEngine().analyzeCorrelations(habits))
	})

	t.Run("symmetric: habit order does not change the score", func(t *testing.T) {
		a := habit("Meditation", recentEntries("xxxx.xxx.x"))
		b := habit("Journal", recentEntries("xxx.xxxx.x"))

		forward := testEngine().analyzeCorrelations([]models.Habit{a, b})
		reversed := testEngine().analyzeCorrelations([]models.Habit{b, a})

		require.Len(t, forward, len(reversed))
		if len(forward) == 1 {
			assert.Equal(t, forward[0].Confidence, reversed[0].Confidence)
		}
	})

	t.Run("used pair is suppressed", func(t *testing.T) {
		entries := recentEntries("xxxxx")
		habits := []models.Habit{
			habit("Meditation", entries),
			habit("Journal", entries),
		}
		e := testEngine(WithUsedRecommendations([]string{"correlation_Meditation_Journal"}))
		assert.Empty(t, e.analyzeCorrelations(habits))
	})
}

func TestAnalyzeStacking(t *testing.T) {
	t.Run("five co-completions emit a stack", func(t *testing.T) {
		entries := recentEntries("xxxxx")
		habits := []models.Habit{
			habit("Meditation", entries),
			habit("Journal", entries),
		}

		insights := testEngine().analyzeStacking(habits)
		require.Len(t, insights, 1)

		in := insights[0]
		assert.Equal(t, 0.5, in.Confidence, "count/10 capped at 0.9")
		assert.Equal(t, "stacking_Meditation_Journal", in.RecommendationID)

		data, ok := in.Data.(models.Stacking)
		require.True(t, ok)
		assert.Equal(t, 5, data.Count)
	})

	t.Run("confidence caps at 0.9", func(t *testing.T) {
		entries := recentEntries("xxxxxxxxxxxx")
		habits := []models.Habit{
			habit("Meditation", entries),
			habit("Journal", entries),
		}

		insights := testEngine().analyzeStacking(habits)
		require.Len(t, insights, 1)
		assert.Equal(t, 0.9, insights[0].Confidence)
	})

	t.Run("four co-completions stay quiet", func(t *testing.T) {
		entries := recentEntries("xxxx")
		habits := []models.Habit{
			habit("Meditation", entries),
			habit("Journal", entries),
		}
		assert.Empty(t, testEngine().analyzeStacking(habits))
	})

	t.Run("misses do not count as co-occurrence", func(t *testing.T) {
		habits := []models.Habit{
			habit("Meditation", recentEntries(".....")),
			habit("Journal", recentEntries(".....")),
		}
		assert.Empty(t, testEngine().analyzeStacking(habits))
	})
}
