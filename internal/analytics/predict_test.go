package analytics

import (
	"testing"
	"time"

	"cadence/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictTomorrowSuccess(t *testing.T) {
	t.Run("three entries return the insufficient-data fallback", func(t *testing.T) {
		h := habit("New", recentEntries("xxx"))

		p := testEngine().PredictTomorrowSuccess(h)
		assert.Equal(t, 0.5, p.Probability)
		assert.Equal(t, []string{insufficientFactor}, p.Factors)
	})

	t.Run("no entries return the insufficient-data fallback", func(t *testing.T) {
		p := testEngine().PredictTomorrowSuccess(habit("Empty", nil))
		assert.Equal(t, 0.5, p.Probability)
		assert.Equal(t, []string{insufficientFactor}, p.Factors)
	})

	t.Run("probability stays within bounds", func(t *testing.T) {
		patterns := []string{
			"xxxxxxxxxxxxxx", // perfect
			"..............", // hopeless
			"x.x.x.x.x.x.x.", // alternating
		}
		for _, pattern := range patterns {
			p := testEngine().PredictTomorrowSuccess(habit("H", recentEntries(pattern)))
			assert.GreaterOrEqual(t, p.Probability, 0.1, "pattern %s", pattern)
			assert.LessOrEqual(t, p.Probability, 0.9, "pattern %s", pattern)
			assert.NotEmpty(t, p.Recommendation)
		}
	})

	t.Run("strong recent performance is a factor", func(t *testing.T) {
		p := testEngine().PredictTomorrowSuccess(habit("H", recentEntries("xxxxxxxxxxxxxx")))
		assert.Contains(t, p.Factors, "Strong recent performance")
		assert.InDelta(t, 0.85, p.Probability, 1e-9, "0.7*1.0 + 0.3*defaultDayRate")
		assert.Contains(t, p.Recommendation, "set up to succeed")
	})

	t.Run("weekday rate spans the full history", func(t *testing.T) {
		// Two months of daily entries, every Wednesday missed. The
		// recent window holds only one Wednesday, but the full history
		// carries eight samples at rate zero.
		entries := make([]models.HabitEntry, 0, 60)
		for i := 1; i <= 60; i++ {
			day := testNow.AddDate(0, 0, -i)
			entries = append(entries, models.HabitEntry{
				Date:      day,
				Completed: day.Weekday() != time.Wednesday,
			})
		}

		p := testEngine().PredictTomorrowSuccess(habit("H", entries))
		assert.InDelta(t, 0.7*(6.0/7.0), p.Probability, 1e-9, "recent 6/7, Wednesday rate 0")
		assert.Contains(t, p.Factors, "Wednesdays have been challenging historically")
	})

	t.Run("weak history drives the probability down", func(t *testing.T) {
		p := testEngine().PredictTomorrowSuccess(habit("H", recentEntries("..............")))
		assert.InDelta(t, 0.15, p.Probability, 1e-9, "0.7*0 + 0.3*dayRate with two weekday samples")
	})
}

func TestPredictWeekSuccess(t *testing.T) {
	t.Run("short history returns labeled fallback", func(t *testing.T) {
		p := testEngine().PredictWeekSuccess(habit("New", recentEntries("xxx.x")))
		assert.Equal(t, 0.5, p.WeeklyProbability)
		assert.Contains(t, p.RiskFactors, insufficientFactor)
		assert.Empty(t, p.DailyProbabilities)
	})

	t.Run("perfect month predicts a strong week", func(t *testing.T) {
		p := testEngine().PredictWeekSuccess(habit("H", recentEntries("xxxxxxxxxxxxxxxxxxxxxxxxxxxx")))

		require.Len(t, p.DailyProbabilities, 7)
		for day, rate := range p.DailyProbabilities {
			assert.Equal(t, 1.0, rate, "day %s", day)
		}
		assert.Equal(t, 1.0, p.WeeklyProbability)
		assert.NotEmpty(t, p.SuccessFactors)
		assert.Empty(t, p.RiskFactors)
	})

	t.Run("sparse weekdays default to 0.5", func(t *testing.T) {
		// Seven entries, one per weekday: only one sample each.
		p := testEngine().PredictWeekSuccess(habit("H", recentEntries("xxxxxxx")))
		for day, rate := range p.DailyProbabilities {
			assert.Equal(t, 0.5, rate, "day %s", day)
		}
		assert.Equal(t, 0.5, p.WeeklyProbability)
	})

	t.Run("weak month flags risks and advises scope cuts", func(t *testing.T) {
		p := testEngine().PredictWeekSuccess(habit("H", recentEntries("x...x...x...x...x...x...x...")))
		assert.Less(t, p.WeeklyProbability, 0.5)
		assert.NotEmpty(t, p.RiskFactors)
		assert.NotEmpty(t, p.Recommendations)
	})
}

func TestPredictHabitDifficulty(t *testing.T) {
	ratedEntries := func(ratings []int, hour int) []models.HabitEntry {
		entries := make([]models.HabitEntry, 0, len(ratings))
		for i, r := range ratings {
			day := testNow.AddDate(0, 0, -(i + 1))
			at := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
			entries = append(entries, models.HabitEntry{
				Date:        day,
				Completed:   true,
				Difficulty:  r,
				CompletedAt: &at,
			})
		}
		return entries
	}
	target := time.Date(2026, time.January, 21, 7, 0, 0, 0, time.UTC)

	t.Run("sparse ratings return labeled fallback", func(t *testing.T) {
		h := habit("New", ratedEntries([]int{5, 6, 5, 6}, 7))

		p := testEngine().PredictHabitDifficulty(h, target)
		assert.Equal(t, 5.0, p.PredictedDifficulty)
		assert.Contains(t, p.Factors, insufficientFactor)
		assert.Equal(t, 0.2, p.Confidence)
	})

	t.Run("prediction stays within the rating scale", func(t *testing.T) {
		for _, ratings := range [][]int{
			{10, 10, 10, 10, 10, 10, 10},
			{1, 1, 1, 1, 1, 1, 1},
			{3, 7, 5, 6, 4, 5, 6},
		} {
			p := testEngine().PredictHabitDifficulty(habit("H", ratedEntries(ratings, 7)), target)
			assert.GreaterOrEqual(t, p.PredictedDifficulty, 1.0)
			assert.LessOrEqual(t, p.PredictedDifficulty, 10.0)
		}
	})

	t.Run("uniform ratings predict the mean", func(t *testing.T) {
		p := testEngine().PredictHabitDifficulty(habit("H", ratedEntries([]int{6, 6, 6, 6, 6, 6}, 7)), target)
		assert.Equal(t, 6.0, p.PredictedDifficulty)
	})

	t.Run("confidence scales with sample count and caps at 0.9", func(t *testing.T) {
		ten := make([]int, 10)
		for i := range ten {
			ten[i] = 5
		}
		p := testEngine().PredictHabitDifficulty(habit("H", ratedEntries(ten, 7)), target)
		assert.InDelta(t, 0.5, p.Confidence, 1e-9)

		thirty := make([]int, 30)
		for i := range thirty {
			thirty[i] = 5
		}
		p = testEngine().PredictHabitDifficulty(habit("H", ratedEntries(thirty, 7)), target)
		assert.InDelta(t, 0.9, p.Confidence, 1e-9)
	})

	t.Run("hard habits come with decomposition advice", func(t *testing.T) {
		p := testEngine().PredictHabitDifficulty(habit("H", ratedEntries([]int{9, 9, 8, 9, 8, 9}, 7)), target)
		assert.GreaterOrEqual(t, p.PredictedDifficulty, 7.0)
		require.NotEmpty(t, p.Recommendations)
		assert.Contains(t, p.Recommendations[0], "smallest possible first step")
	})
}
