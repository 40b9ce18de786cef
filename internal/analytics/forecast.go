package analytics

import (
	"fmt"
	"time"

	"cadence/internal/models"
)

const (
	// defaultForecastDays is the horizon when the caller passes 0.
	defaultForecastDays = 7

	// defaultDayCompletionRate is assumed for a habit with too little
	// history on a given weekday.
	defaultDayCompletionRate = 0.6

	// neutralMood is reported when no mood history exists at all.
	neutralMood = 7.0
)

// GeneratePerformanceForecast projects expected completions, mood, risks,
// and opportunities for each of the next N days (default 7), with an
// aggregate summary.
func (e *Engine) GeneratePerformanceForecast(habits []models.Habit, days int) models.Forecast {
	if days <= 0 {
		days = defaultForecastDays
	}

	// Pre-aggregate per-habit weekday rates and global mood by weekday.
	type weekdayStats struct {
		days  [7]rateStat
		title string
	}
	perHabit := make([]weekdayStats, len(habits))
	var moodByDay [7][]float64
	var allMoods []float64
	for i, h := range habits {
		perHabit[i].title = h.Title
		for _, entry := range h.Entries {
			d := int(entry.Date.Weekday())
			perHabit[i].days[d].add(entry.Completed)
			if entry.Mood > 0 {
				moodByDay[d] = append(moodByDay[d], float64(entry.Mood))
				allMoods = append(allMoods, float64(entry.Mood))
			}
		}
	}

	today := e.now()
	forecast := models.Forecast{}
	for i := 1; i <= days; i++ {
		date := today.AddDate(0, 0, i)
		weekday := date.Weekday()

		day := models.ForecastDay{
			Date:          date.Format("2006-01-02"),
			PredictedMood: forecastMood(moodByDay[int(weekday)], allMoods),
		}

		for _, hs := range perHabit {
			stat := hs.days[int(weekday)]
			if stat.total >= 2 {
				rate := stat.rate()
				day.PredictedCompletions += rate
				switch {
				case rate < 0.5:
					day.RiskFactors = append(day.RiskFactors, fmt.Sprintf("%s has a low success rate on %ss (%d%%)", hs.title, weekday, pct(rate)))
				case rate > 0.8:
					day.Opportunities = append(day.Opportunities, fmt.Sprintf("%s is usually a win on %ss (%d%%)", hs.title, weekday, pct(rate)))
				}
			} else {
				day.PredictedCompletions += defaultDayCompletionRate
			}
		}

		if weekday == time.Saturday || weekday == time.Sunday {
			day.RiskFactors = append(day.RiskFactors, "Weekend routines often slip; plan your habits in advance")
		}

		day.PredictedCompletions = round1(day.PredictedCompletions)
		forecast.Summary.TotalPredictedCompletions += day.PredictedCompletions

		habitCount := float64(len(habits))
		if habitCount > 0 {
			if day.PredictedCompletions < 0.4*habitCount {
				forecast.Summary.StreakRiskDays++
			}
			if day.PredictedCompletions > 0.8*habitCount {
				forecast.Summary.OpportunityDays++
			}
		}

		forecast.Days = append(forecast.Days, day)
	}

	forecast.Summary.TotalPredictedCompletions = round1(forecast.Summary.TotalPredictedCompletions)
	return forecast
}

// forecastMood predicts mood for a day: the weekday's historical average,
// falling back to the overall average, falling back to neutral.
func forecastMood(dayMoods, allMoods []float64) float64 {
	if len(dayMoods) > 0 {
		return round1(mean(dayMoods))
	}
	if len(allMoods) > 0 {
		return round1(mean(allMoods))
	}
	return neutralMood
}
