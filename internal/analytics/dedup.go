package analytics

import (
	"fmt"

	"cadence/internal/models"
)

// DedupKey derives the deterministic suppression key for a
// recommendation payload. Only payload kinds that are deduplicated
// produce a key; informational payloads return "".
//
// The key format is stable across sessions: the same payload always
// yields the same key, so a key persisted after acknowledgement
// suppresses the same recommendation in every later session.
func DedupKey(data models.InsightData) string {
	switch d := data.(type) {
	case models.WeekdayChampion:
		return fmt.Sprintf("day_%s", d.BestDay)
	case models.Correlation:
		return fmt.Sprintf("correlation_%s_%s", d.Title1, d.Title2)
	case models.Stacking:
		return fmt.Sprintf("stacking_%s_%s", d.Title1, d.Title2)
	case models.HabitSuggestion:
		return fmt.Sprintf("suggestion_%s", d.Title)
	default:
		return ""
	}
}
