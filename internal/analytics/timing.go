package analytics

import (
	"fmt"
	"sort"
	"strings"

	"cadence/internal/models"
)

// analyzeTiming surfaces when habits succeed: the top completion hours,
// the best explicit time-of-day bucket, and an energy-period comparison.
// The hour and bucket findings are informational only.
func (e *Engine) analyzeTiming(habits []models.Habit) []models.Insight {
	var insights []models.Insight

	if in, ok := e.bestHoursInsight(habits); ok {
		insights = append(insights, in)
	}
	if in, ok := e.bestPeriodInsight(habits); ok {
		insights = append(insights, in)
	}
	if in, ok := e.energyPatternInsight(habits); ok {
		insights = append(insights, in)
	}
	return insights
}

// bestHoursInsight aggregates success rate per hour of day across all
// entries and reports the top three hours.
func (e *Engine) bestHoursInsight(habits []models.Habit) (models.Insight, bool) {
	var hours [24]rateStat
	for _, h := range habits {
		for _, entry := range h.Entries {
			hours[entry.Hour()].add(entry.Completed)
		}
	}

	var rated []models.HourRate
	for hr := 0; hr < 24; hr++ {
		if hours[hr].total >= minHourSamples {
			rated = append(rated, models.HourRate{Hour: hr, Rate: hours[hr].rate()})
		}
	}
	if len(rated) == 0 {
		return models.Insight{}, false
	}

	sort.SliceStable(rated, func(i, j int) bool {
		if rated[i].Rate != rated[j].Rate {
			return rated[i].Rate > rated[j].Rate
		}
		return rated[i].Hour < rated[j].Hour
	})
	if len(rated) > 3 {
		rated = rated[:3]
	}

	phrases := make([]string, len(rated))
	for i, hr := range rated {
		phrases[i] = fmt.Sprintf("%d:00 (%s, %d%%)", hr.Hour, periodOf(hr.Hour), pct(hr.Rate))
	}

	return models.Insight{
		Type:        models.InsightOptimization,
		Title:       "Your Power Hours",
		Description: fmt.Sprintf("You succeed most often at %s.", strings.Join(phrases, ", ")),
		Confidence:  0.7,
		Priority:    models.PriorityLow,
		Actionable:  false,
		Data:        models.BestHours{Top: rated},
	}, true
}

// bestPeriodInsight aggregates success per explicit time-of-day tag and
// reports the single best bucket.
func (e *Engine) bestPeriodInsight(habits []models.Habit) (models.Insight, bool) {
	periods := map[models.TimeOfDay]*rateStat{}
	for _, h := range habits {
		for _, entry := range h.Entries {
			if entry.TimeOfDay == "" {
				continue
			}
			s, ok := periods[entry.TimeOfDay]
			if !ok {
				s = &rateStat{}
				periods[entry.TimeOfDay] = s
			}
			s.add(entry.Completed)
		}
	}

	order := []models.TimeOfDay{models.Morning, models.Afternoon, models.Evening, models.Night}
	var best models.TimeOfDay
	bestRate := -1.0
	for _, p := range order {
		s, ok := periods[p]
		if !ok || s.total < minHourSamples {
			continue
		}
		if s.rate() > bestRate {
			best = p
			bestRate = s.rate()
		}
	}
	if best == "" {
		return models.Insight{}, false
	}

	return models.Insight{
		Type:        models.InsightOptimization,
		Title:       fmt.Sprintf("Best in the %s", capitalize(string(best))),
		Description: fmt.Sprintf("Habits you tag as %s get done %d%% of the time, your strongest part of the day.", best, pct(bestRate)),
		Confidence:  0.7,
		Priority:    models.PriorityLow,
		Actionable:  false,
		Data:        models.BestPeriod{Period: best, Rate: bestRate},
	}, true
}

// energyPatternInsight compares average completion rates across morning,
// afternoon, and evening (derived from entry hours) and reports a large
// spread.
func (e *Engine) energyPatternInsight(habits []models.Habit) (models.Insight, bool) {
	stats := map[models.TimeOfDay]*rateStat{
		models.Morning:   {},
		models.Afternoon: {},
		models.Evening:   {},
	}
	for _, h := range habits {
		for _, entry := range h.Entries {
			p := periodOf(entry.Hour())
			if s, ok := stats[p]; ok {
				s.add(entry.Completed)
			}
		}
	}

	order := []models.TimeOfDay{models.Morning, models.Afternoon, models.Evening}
	var best, worst models.TimeOfDay
	bestRate, worstRate := -1.0, 2.0
	for _, p := range order {
		s := stats[p]
		if s.total < minHourSamples {
			continue
		}
		if s.rate() > bestRate {
			best, bestRate = p, s.rate()
		}
		if s.rate() < worstRate {
			worst, worstRate = p, s.rate()
		}
	}
	if best == "" || worst == "" || best == worst {
		return models.Insight{}, false
	}

	gap := bestRate - worstRate
	if gap <= 0.2 {
		return models.Insight{}, false
	}

	return models.Insight{
		Type:        models.InsightPattern,
		Title:       "Energy Pattern Detected",
		Description: fmt.Sprintf("Your %s completion rate (%d%%) runs %d points ahead of your %s rate (%d%%). Move flexible habits toward the %s.", best, pct(bestRate), pct(gap), worst, pct(worstRate), best),
		Confidence:  0.75,
		Priority:    models.PriorityMedium,
		Actionable:  false,
		Data:        models.EnergyPattern{BestPeriod: best, WorstPeriod: worst, Gap: gap},
	}, true
}

// capitalize upper-cases the first byte of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
