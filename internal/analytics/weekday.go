package analytics

import (
	"fmt"
	"time"

	"cadence/internal/models"
)

// analyzeWeekdays aggregates completion rates per weekday across every
// habit and surfaces the strongest and weakest days.
func (e *Engine) analyzeWeekdays(habits []models.Habit) []models.Insight {
	var days [7]rateStat
	for _, h := range habits {
		for _, entry := range h.Entries {
			days[int(entry.Date.Weekday())].add(entry.Completed)
		}
	}

	// Pick best and worst among days with enough samples. Ties resolve
	// to the earliest weekday so results are deterministic.
	best, worst := -1, -1
	for d := 0; d < 7; d++ {
		if days[d].total < minWeekdaySamples {
			continue
		}
		if best == -1 || days[d].rate() > days[best].rate() {
			best = d
		}
		if worst == -1 || days[d].rate() < days[worst].rate() {
			worst = d
		}
	}
	if best == -1 {
		return nil
	}

	var insights []models.Insight

	bestDay := time.Weekday(best)
	bestRate := days[best].rate()
	switch {
	case bestRate > 0.8:
		data := models.WeekdayChampion{BestDay: bestDay, Rate: bestRate}
		if key := DedupKey(data); !e.isUsed(key) {
			insights = append(insights, models.Insight{
				Type:             models.InsightPattern,
				Title:            fmt.Sprintf("%s Champion", bestDay),
				Description:      fmt.Sprintf("You complete %d%% of your habits on %ss. Consider scheduling your hardest habits then.", pct(bestRate), bestDay),
				Confidence:       0.9,
				Priority:         models.PriorityMedium,
				Actionable:       true,
				ShowActionButton: true,
				Data:             data,
				RecommendationID: key,
			})
		}
	case bestRate > 0.6:
		// Moderately good day: informational only, never deduplicated.
		insights = append(insights, models.Insight{
			Type:        models.InsightPattern,
			Title:       "Your Best Day",
			Description: fmt.Sprintf("%ss are your most consistent day at %d%% completion.", bestDay, pct(bestRate)),
			Confidence:  0.6,
			Priority:    models.PriorityLow,
			Actionable:  false,
			Data:        models.WeekdayNote{BestDay: bestDay, Rate: bestRate},
		})
	}

	if worst != -1 && days[worst].rate() < 0.5 && days[worst].total >= 5 {
		worstDay := time.Weekday(worst)
		worstRate := days[worst].rate()
		insights = append(insights, models.Insight{
			Type:        models.InsightPattern,
			Title:       fmt.Sprintf("%ss Need Attention", worstDay),
			Description: fmt.Sprintf("Only %d%% of your habits get done on %ss. A lighter routine or an earlier slot could help.", pct(worstRate), worstDay),
			Confidence:  0.8,
			Priority:    models.PriorityHigh,
			Actionable:  true,
			Data:        models.WeekdayStruggle{WorstDay: worstDay, Rate: worstRate, Samples: days[worst].total},
		})
	}

	return insights
}
