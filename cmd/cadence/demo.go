package main

import (
	"fmt"
	"time"

	"cadence/internal/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// demoCmd writes a sample habit snapshot so every other command is
// runnable out of the box.
func demoCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a sample habits snapshot for trying out the commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits := demoHabits(time.Now())
			if err := saveHabits(out, habits); err != nil {
				return err
			}
			fmt.Printf("Wrote %d habits with %d days of history to %s\n",
				len(habits), demoDays, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "habits.json", "Output path for the snapshot")
	return cmd
}

// demoDays is the history length of the generated snapshot.
const demoDays = 45

// demoHabits builds a deterministic-shape sample: a strong morning habit,
// a volatile one, and a pair that stacks.
func demoHabits(now time.Time) []models.Habit {
	created := now.AddDate(0, 0, -demoDays)

	meditation := models.Habit{
		ID:        uuid.NewString(),
		Title:     "Meditation",
		Category:  "Productivity",
		Frequency: models.FrequencyDaily,
		CreatedAt: &created,
	}
	run := models.Habit{
		ID:        uuid.NewString(),
		Title:     "Morning Run",
		Category:  "Health",
		Frequency: models.FrequencyDaily,
		CreatedAt: &created,
	}
	journal := models.Habit{
		ID:        uuid.NewString(),
		Title:     "Journal",
		Category:  "General",
		Frequency: models.FrequencyDaily,
		CreatedAt: &created,
	}

	for i := demoDays; i >= 1; i-- {
		day := now.AddDate(0, 0, -i)
		weekday := day.Weekday()

		// Meditation: near-perfect, done at 7am, easy and mood-lifting.
		medDone := weekday != time.Friday || i%9 == 0
		medAt := time.Date(day.Year(), day.Month(), day.Day(), 7, 15, 0, 0, day.Location())
		meditation.Entries = append(meditation.Entries, models.HabitEntry{
			Date:        day,
			Completed:   medDone,
			Value:       boolToValue(medDone),
			CompletedAt: timePtrIf(medDone, medAt),
			TimeOfDay:   models.Morning,
			Mood:        moodIf(medDone, 8),
			Difficulty:  difficultyIf(medDone, 3),
		})

		// Morning Run: volatile; skips most Mondays and alternates streaks.
		runDone := weekday != time.Monday && (i/3)%2 == 0
		runAt := time.Date(day.Year(), day.Month(), day.Day(), 18, 30, 0, 0, day.Location())
		run.Entries = append(run.Entries, models.HabitEntry{
			Date:        day,
			Completed:   runDone,
			Value:       boolToValue(runDone),
			CompletedAt: timePtrIf(runDone, runAt),
			TimeOfDay:   models.Evening,
			Mood:        moodIf(runDone, 7),
			Difficulty:  difficultyIf(runDone, 7),
		})

		// Journal: stacks with meditation.
		jDone := medDone && i%7 != 0
		journal.Entries = append(journal.Entries, models.HabitEntry{
			Date:      day,
			Completed: jDone,
			Value:     boolToValue(jDone),
			TimeOfDay: models.Morning,
		})
	}

	return []models.Habit{meditation, run, journal}
}

func boolToValue(done bool) int {
	if done {
		return 1
	}
	return 0
}

func timePtrIf(done bool, t time.Time) *time.Time {
	if !done {
		return nil
	}
	return &t
}

func moodIf(done bool, mood int) int {
	if !done {
		return 0
	}
	return mood
}

func difficultyIf(done bool, difficulty int) int {
	if !done {
		return 0
	}
	return difficulty
}
