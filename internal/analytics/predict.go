package analytics

import (
	"fmt"
	"math"
	"time"

	"cadence/internal/models"
)

const (
	// predictionWindow is the recent-entry window for tomorrow's
	// prediction.
	predictionWindow = 14

	// minPredictionSamples is the minimum history before a success
	// prediction is attempted; shorter histories get the neutral
	// insufficient-data result.
	minPredictionSamples = 4

	// weekWindow and minWeekSamples bound the weekly predictor.
	weekWindow     = 30
	minWeekSamples = 7

	// difficultyPredWindow and minDifficultyPredSamples bound the
	// difficulty predictor.
	difficultyPredWindow     = 30
	minDifficultyPredSamples = 5

	// recentWeight and weekdayWeight blend the two success signals.
	recentWeight  = 0.7
	weekdayWeight = 0.3

	// defaultDayRate is assumed for a weekday with too little history.
	defaultDayRate = 0.5
)

// insufficientFactor labels every predictor fallback.
const insufficientFactor = "Insufficient data"

// PredictTomorrowSuccess estimates the probability of completing the
// habit tomorrow, blending recent performance with the rate for
// tomorrow's weekday over the full entry history. The result is always
// within [0.1, 0.9]; with too little history it is exactly 0.5 with a
// single insufficient-data factor.
func (e *Engine) PredictTomorrowSuccess(habit models.Habit) models.SuccessPrediction {
	window := lastN(habit.Entries, predictionWindow)
	if len(window) < minPredictionSamples {
		return models.SuccessPrediction{
			Probability:    0.5,
			Factors:        []string{insufficientFactor},
			Recommendation: "Keep logging daily to unlock predictions.",
		}
	}

	recent := window
	if len(recent) > 7 {
		recent = recent[:7]
	}
	recentRate := completionRate(recent)

	// The weekday signal spans the full history: a 14-entry window holds
	// at most two samples of any weekday, never enough to clear the
	// sample guard.
	tomorrow := e.now().AddDate(0, 0, 1).Weekday()
	var dayStat rateStat
	for _, entry := range habit.Entries {
		if entry.Date.Weekday() == tomorrow {
			dayStat.add(entry.Completed)
		}
	}
	dayRate := defaultDayRate
	if dayStat.total >= 3 {
		dayRate = dayStat.rate()
	}

	probability := clamp(recentWeight*recentRate+weekdayWeight*dayRate, 0.1, 0.9)

	var factors []string
	switch {
	case recentRate > 0.8:
		factors = append(factors, "Strong recent performance")
	case recentRate < 0.4:
		factors = append(factors, "Recent completions have been sparse")
	default:
		factors = append(factors, "Steady recent performance")
	}
	if dayStat.total >= 3 {
		switch {
		case dayRate > 0.7:
			factors = append(factors, fmt.Sprintf("%ss are usually good for this habit", tomorrow))
		case dayRate < 0.4:
			factors = append(factors, fmt.Sprintf("%ss have been challenging historically", tomorrow))
		}
	}

	var recommendation string
	switch {
	case probability < 0.4:
		recommendation = "Tomorrow looks risky. Shrink the habit or set a specific time and place."
	case probability > 0.8:
		recommendation = "You're set up to succeed. Keep the same routine."
	default:
		recommendation = "Decent odds. A reminder at your usual time would tip the balance."
	}

	return models.SuccessPrediction{
		Probability:    probability,
		Factors:        factors,
		Recommendation: recommendation,
	}
}

// PredictWeekSuccess estimates per-weekday completion rates for the week
// ahead from the last 30 entries.
func (e *Engine) PredictWeekSuccess(habit models.Habit) models.WeekPrediction {
	window := lastN(habit.Entries, weekWindow)
	if len(window) < minWeekSamples {
		return models.WeekPrediction{
			WeeklyProbability: 0.5,
			RiskFactors:       []string{insufficientFactor},
			Recommendations:   []string{"Log at least a week of entries for a weekly outlook."},
		}
	}

	var days [7]rateStat
	for _, entry := range window {
		days[int(entry.Date.Weekday())].add(entry.Completed)
	}

	daily := make(map[string]float64, 7)
	rates := make([]float64, 0, 7)
	var risks, successes []string
	for d := time.Sunday; d <= time.Saturday; d++ {
		rate := defaultDayRate
		if days[d].total >= 2 {
			rate = days[d].rate()
		}
		daily[d.String()] = rate
		rates = append(rates, rate)

		if days[d].total >= 2 {
			switch {
			case rate < 0.4:
				risks = append(risks, fmt.Sprintf("%ss have a low completion rate (%d%%)", d, pct(rate)))
			case rate > 0.8:
				successes = append(successes, fmt.Sprintf("%ss are reliably strong (%d%%)", d, pct(rate)))
			}
		}
	}

	weekly := mean(rates)
	var recommendations []string
	if weekly < 0.5 {
		recommendations = append(recommendations,
			"This week looks tough. Pick your three most important days and protect them.",
			"Anchor the habit to a fixed time to reduce day-to-day variance.")
	} else {
		recommendations = append(recommendations,
			"Your week looks solid. Keep the current routine and watch the flagged days.")
	}

	return models.WeekPrediction{
		DailyProbabilities: daily,
		WeeklyProbability:  weekly,
		RiskFactors:        risks,
		SuccessFactors:     successes,
		Recommendations:    recommendations,
	}
}

// PredictHabitDifficulty estimates how hard the habit will feel at the
// target date and time, from recent rated completions adjusted by
// weekday and hour-proximity history. The result is always within
// [1, 10], rounded to one decimal.
func (e *Engine) PredictHabitDifficulty(habit models.Habit, target time.Time) models.DifficultyPrediction {
	var rated []models.HabitEntry
	for _, entry := range sortedByDateDesc(habit.Entries) {
		if entry.Completed && entry.Difficulty > 0 {
			rated = append(rated, entry)
		}
	}
	if len(rated) > difficultyPredWindow {
		rated = rated[:difficultyPredWindow]
	}
	if len(rated) < minDifficultyPredSamples {
		return models.DifficultyPrediction{
			PredictedDifficulty: 5,
			Factors:             []string{insufficientFactor},
			Recommendations:     []string{"Rate difficulty on a few more completions to calibrate predictions."},
			Confidence:          0.2,
		}
	}

	var all []float64
	for _, entry := range rated {
		all = append(all, float64(entry.Difficulty))
	}
	base := mean(all)

	factors := []string{fmt.Sprintf("Typical difficulty is %.1f/10", round1(base))}

	// Weekday adjustment: how this habit rates on the target weekday.
	var dayRatings []float64
	for _, entry := range rated {
		if entry.Date.Weekday() == target.Weekday() {
			dayRatings = append(dayRatings, float64(entry.Difficulty))
		}
	}
	dayAdjustment := 0.0
	if len(dayRatings) >= 3 {
		dayAdjustment = mean(dayRatings) - base
		switch {
		case dayAdjustment > 0.5:
			factors = append(factors, fmt.Sprintf("%ss tend to feel harder", target.Weekday()))
		case dayAdjustment < -0.5:
			factors = append(factors, fmt.Sprintf("%ss tend to feel easier", target.Weekday()))
		}
	}

	// Time adjustment: ratings from completions within two hours of the
	// target hour.
	var nearRatings []float64
	for _, entry := range rated {
		if entry.CompletedAt == nil {
			continue
		}
		if diff := math.Abs(float64(entry.CompletedAt.Hour() - target.Hour())); diff <= 2 {
			nearRatings = append(nearRatings, float64(entry.Difficulty))
		}
	}
	timeAdjustment := 0.0
	if len(nearRatings) >= 2 {
		timeAdjustment = mean(nearRatings) - base
		switch {
		case timeAdjustment > 0.5:
			factors = append(factors, fmt.Sprintf("This habit feels harder around %d:00", target.Hour()))
		case timeAdjustment < -0.5:
			factors = append(factors, fmt.Sprintf("This habit feels easier around %d:00", target.Hour()))
		}
	}

	predicted := round1(clamp(base+dayAdjustment+timeAdjustment, 1, 10))

	var recommendations []string
	switch {
	case predicted >= 7:
		recommendations = append(recommendations,
			"Expect resistance. Break the habit into the smallest possible first step.",
			"Remove friction ahead of time: prepare whatever the habit needs.")
	case predicted <= 3:
		recommendations = append(recommendations,
			"This should feel easy. A good day to add a stretch goal.")
	default:
		recommendations = append(recommendations,
			"A normal effort day. Your usual routine should carry it.")
	}

	return models.DifficultyPrediction{
		PredictedDifficulty: predicted,
		Factors:             factors,
		Recommendations:     recommendations,
		Confidence:          math.Min(0.9, float64(len(rated))/20),
	}
}
