package analytics

import (
	"math"
	"sort"
	"time"

	"cadence/internal/models"
)

// --- shared statistics helpers ---

// sortedByDateAsc returns a copy of entries in chronological order.
func sortedByDateAsc(entries []models.HabitEntry) []models.HabitEntry {
	out := make([]models.HabitEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// sortedByDateDesc returns a copy of entries newest first.
func sortedByDateDesc(entries []models.HabitEntry) []models.HabitEntry {
	out := make([]models.HabitEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// lastN returns the newest n entries (newest first). Fewer are returned
// when the history is shorter.
func lastN(entries []models.HabitEntry, n int) []models.HabitEntry {
	desc := sortedByDateDesc(entries)
	if len(desc) > n {
		desc = desc[:n]
	}
	return desc
}

// completionRate is the fraction of entries marked completed, 0 for an
// empty slice.
func completionRate(entries []models.HabitEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	completed := 0
	for _, e := range entries {
		if e.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(entries))
}

// completionVariance is the population variance of the 0/1 completion
// sequence.
func completionVariance(entries []models.HabitEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	mean := completionRate(entries)
	var sum float64
	for _, e := range entries {
		v := 0.0
		if e.Completed {
			v = 1.0
		}
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(entries))
}

// daysBetween counts whole calendar days from earlier to later,
// ignoring the time of day.
func daysBetween(earlier, later time.Time) int {
	e := time.Date(earlier.Year(), earlier.Month(), earlier.Day(), 0, 0, 0, 0, time.UTC)
	l := time.Date(later.Year(), later.Month(), later.Day(), 0, 0, 0, 0, time.UTC)
	return int(l.Sub(e).Hours() / 24)
}

// mean averages a float slice, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// pct renders a rate as a whole percentage.
func pct(rate float64) int {
	return int(math.Round(rate * 100))
}

// periodOf maps an hour of day to a coarse part-of-day bucket:
// morning 6-12, afternoon 12-17, evening 17-21, night otherwise.
func periodOf(hour int) models.TimeOfDay {
	switch {
	case hour >= 6 && hour < 12:
		return models.Morning
	case hour >= 12 && hour < 17:
		return models.Afternoon
	case hour >= 17 && hour < 21:
		return models.Evening
	default:
		return models.Night
	}
}

// rateStat accumulates a completed/total pair.
type rateStat struct {
	total     int
	completed int
}

func (s rateStat) rate() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.completed) / float64(s.total)
}

func (s *rateStat) add(completed bool) {
	s.total++
	if completed {
		s.completed++
	}
}
