package analytics

import (
	"fmt"
	"math"
	"sort"

	"cadence/internal/models"
)

// analyzeCorrelations scores co-completion for every unordered habit
// pair over their shared calendar dates. Each pair is scored once, with
// the lower-indexed habit first, so output is symmetric and stable.
func (e *Engine) analyzeCorrelations(habits []models.Habit) []models.Insight {
	byDay := make([]map[string]bool, len(habits))
	for i, h := range habits {
		byDay[i] = make(map[string]bool, len(h.Entries))
		for _, entry := range h.Entries {
			byDay[i][entry.Day()] = entry.Completed
		}
	}

	var insights []models.Insight
	for i := 0; i < len(habits); i++ {
		for j := i + 1; j < len(habits); j++ {
			score := pairCorrelation(byDay[i], byDay[j])
			if score <= 0.6 {
				continue
			}

			data := models.Correlation{
				Title1: habits[i].Title,
				Title2: habits[j].Title,
				Score:  score,
			}
			key := DedupKey(data)
			if e.isUsed(key) {
				continue
			}
			insights = append(insights, models.Insight{
				Type:             models.InsightPattern,
				Title:            fmt.Sprintf("Strong Connection: %s + %s", habits[i].Title, habits[j].Title),
				Description:      fmt.Sprintf("When you complete %s, you complete %s %d%% of the time. Pairing them could reinforce both.", habits[i].Title, habits[j].Title, pct(score)),
				Confidence:       score,
				Priority:         models.PriorityMedium,
				Actionable:       true,
				ShowActionButton: true,
				Data:             data,
				RecommendationID: key,
			})
		}
	}
	return insights
}

// pairCorrelation computes the co-completion ratio over dates present in
// both habits' histories: days both completed over days either
// completed. Pairs with fewer than minCommonDates shared dates score 0.
func pairCorrelation(a, b map[string]bool) float64 {
	var common, both, either int
	for day, aDone := range a {
		bDone, ok := b[day]
		if !ok {
			continue
		}
		common++
		if aDone && bDone {
			both++
		}
		if aDone || bDone {
			either++
		}
	}
	if common < minCommonDates || either == 0 {
		return 0
	}
	return float64(both) / float64(either)
}

// analyzeStacking finds habits repeatedly completed on the same day,
// which is the signature of a natural habit stack.
func (e *Engine) analyzeStacking(habits []models.Habit) []models.Insight {
	// Map each calendar day to the habit indices completed on it.
	completedOn := make(map[string][]int)
	for i, h := range habits {
		for _, entry := range h.Entries {
			if entry.Completed {
				completedOn[entry.Day()] = append(completedOn[entry.Day()], i)
			}
		}
	}

	type pair struct{ a, b int }
	counts := make(map[pair]int)
	for _, indices := range completedOn {
		sort.Ints(indices)
		for x := 0; x < len(indices); x++ {
			for y := x + 1; y < len(indices); y++ {
				counts[pair{indices[x], indices[y]}]++
			}
		}
	}

	pairs := make([]pair, 0, len(counts))
	for p := range counts {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	var insights []models.Insight
	for _, p := range pairs {
		count := counts[p]
		if count < minStackingCount {
			continue
		}

		data := models.Stacking{
			Title1: habits[p.a].Title,
			Title2: habits[p.b].Title,
			Count:  count,
		}
		key := DedupKey(data)
		if e.isUsed(key) {
			continue
		}
		insights = append(insights, models.Insight{
			Type:             models.InsightOptimization,
			Title:            fmt.Sprintf("Natural Stack: %s + %s", habits[p.a].Title, habits[p.b].Title),
			Description:      fmt.Sprintf("You've completed %s and %s together %d times. Doing them back to back makes both more automatic.", habits[p.a].Title, habits[p.b].Title, count),
			Confidence:       math.Min(0.9, float64(count)/10),
			Priority:         models.PriorityMedium,
			Actionable:       true,
			ShowActionButton: true,
			Data:             data,
			RecommendationID: key,
		})
	}
	return insights
}
