package analytics

import (
	"fmt"
	"sort"

	"cadence/internal/models"
)

const (
	// minScheduleSamples is the minimum timed completions an hour needs
	// before it can anchor a schedule slot.
	minScheduleSamples = 2

	// morningSlotCap and eveningSlotCap bound the generated schedule.
	morningSlotCap = 3
	eveningSlotCap = 2
)

// hourProfile is a habit's strongest hour with its aggregates.
type hourProfile struct {
	habit         models.Habit
	bestHour      int
	successRate   float64
	avgDifficulty float64
}

// GenerateOptimalSchedule assigns habits to morning and evening slots
// based on when each habit historically succeeds. Easy habits lead the
// morning; harder ones anchor the evening.
func (e *Engine) GenerateOptimalSchedule(habits []models.Habit) models.SchedulePlan {
	var morning, evening []hourProfile
	scheduled := make(map[string]bool)

	for _, h := range habits {
		profile, ok := bestHourProfile(h)
		if !ok {
			continue
		}
		switch {
		case profile.bestHour >= 6 && profile.bestHour < 12:
			morning = append(morning, profile)
		case profile.bestHour >= 17 && profile.bestHour < 21:
			evening = append(evening, profile)
		}
	}

	// Easiest first in the morning, hardest first in the evening. Title
	// breaks ties so the plan is stable.
	sort.SliceStable(morning, func(i, j int) bool {
		if morning[i].avgDifficulty != morning[j].avgDifficulty {
			return morning[i].avgDifficulty < morning[j].avgDifficulty
		}
		return morning[i].habit.Title < morning[j].habit.Title
	})
	sort.SliceStable(evening, func(i, j int) bool {
		if evening[i].avgDifficulty != evening[j].avgDifficulty {
			return evening[i].avgDifficulty > evening[j].avgDifficulty
		}
		return evening[i].habit.Title < evening[j].habit.Title
	})

	var slots []models.ScheduleSlot
	hour := 7
	for i, p := range morning {
		if i >= morningSlotCap {
			break
		}
		slots = append(slots, makeSlot(p, hour+i))
		scheduled[p.habit.ID] = true
	}

	hour = 18
	placed := 0
	for _, p := range evening {
		if placed >= eveningSlotCap {
			break
		}
		if scheduled[p.habit.ID] {
			continue
		}
		slots = append(slots, makeSlot(p, hour+placed))
		scheduled[p.habit.ID] = true
		placed++
	}

	return models.SchedulePlan{
		Slots: slots,
		Tips:  scheduleTips(morning, slots),
	}
}

// bestHourProfile finds the habit's strongest hour from timed entries.
// Hours need at least minScheduleSamples entries; ties resolve to the
// earliest hour.
func bestHourProfile(h models.Habit) (hourProfile, bool) {
	type hourAgg struct {
		stat      rateStat
		diffSum   float64
		diffCount int
	}
	var hours [24]hourAgg
	for _, entry := range h.Entries {
		if entry.CompletedAt == nil {
			continue
		}
		hr := entry.CompletedAt.Hour()
		hours[hr].stat.add(entry.Completed)
		if entry.Difficulty > 0 {
			hours[hr].diffSum += float64(entry.Difficulty)
			hours[hr].diffCount++
		}
	}

	best := -1
	for hr := 0; hr < 24; hr++ {
		if hours[hr].stat.total < minScheduleSamples {
			continue
		}
		if best == -1 || hours[hr].stat.rate() > hours[best].stat.rate() {
			best = hr
		}
	}
	if best == -1 {
		return hourProfile{}, false
	}

	avgDifficulty := 5.0
	if hours[best].diffCount > 0 {
		avgDifficulty = hours[best].diffSum / float64(hours[best].diffCount)
	}

	return hourProfile{
		habit:         h,
		bestHour:      best,
		successRate:   hours[best].stat.rate(),
		avgDifficulty: avgDifficulty,
	}, true
}

func makeSlot(p hourProfile, hour int) models.ScheduleSlot {
	return models.ScheduleSlot{
		Time:                fmt.Sprintf("%02d:00", hour),
		HabitID:             p.habit.ID,
		HabitTitle:          p.habit.Title,
		PredictedDifficulty: round1(p.avgDifficulty),
		PredictedSuccess:    p.successRate,
		Reason:              fmt.Sprintf("Your success rate peaks at %d:00 (%d%%)", p.bestHour, pct(p.successRate)),
	}
}

func scheduleTips(morning []hourProfile, slots []models.ScheduleSlot) []string {
	var tips []string

	if len(morning) > 0 {
		var rates []float64
		for _, p := range morning {
			rates = append(rates, p.successRate)
		}
		if mean(rates) > 0.8 {
			tips = append(tips, "Your mornings are strong. Front-load difficult habits while your success rate is highest.")
		}
	}
	if len(slots) == 0 {
		tips = append(tips, "Log completion times for a couple of weeks to unlock a personalized schedule.")
	} else {
		tips = append(tips, "Leave buffer time between scheduled habits so one slip doesn't cascade.")
	}

	return tips
}
