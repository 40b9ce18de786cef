package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cadence/internal/models"

	"github.com/spf13/cobra"
)

// predictRootCmd creates the predict command tree.
func predictRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict habit success and difficulty",
	}

	cmd.AddCommand(
		predictTomorrowCmd(),
		predictWeekCmd(),
		predictDifficultyCmd(),
	)

	return cmd
}

func predictTomorrowCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "tomorrow <habit>",
		Short: "Predict tomorrow's completion probability for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHabit(args[0], func(engine engineRunner, habit models.Habit) error {
				p := engine.PredictTomorrowSuccess(habit)
				if outputJSON {
					return printJSON(p)
				}
				styles := defaultStyles()
				fmt.Printf("%s %.0f%%\n", styles.Title.Render("Tomorrow:"), p.Probability*100)
				for _, f := range p.Factors {
					fmt.Printf("  - %s\n", f)
				}
				if p.Recommendation != "" {
					fmt.Println(styles.Muted.Render(p.Recommendation))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	return cmd
}

func predictWeekCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "week <habit>",
		Short: "Predict per-weekday success for the week ahead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHabit(args[0], func(engine engineRunner, habit models.Habit) error {
				p := engine.PredictWeekSuccess(habit)
				if outputJSON {
					return printJSON(p)
				}
				styles := defaultStyles()
				fmt.Printf("%s %.0f%%\n", styles.Title.Render("Week ahead:"), p.WeeklyProbability*100)

				days := make([]string, 0, len(p.DailyProbabilities))
				for d := range p.DailyProbabilities {
					days = append(days, d)
				}
				sort.Strings(days)
				for _, d := range days {
					fmt.Printf("  %-10s %.0f%%\n", d, p.DailyProbabilities[d]*100)
				}
				for _, r := range p.RiskFactors {
					fmt.Println(styles.Warning.Render("  ! " + r))
				}
				for _, s := range p.SuccessFactors {
					fmt.Println(styles.Positive.Render("  + " + s))
				}
				for _, r := range p.Recommendations {
					fmt.Println(styles.Muted.Render("  " + r))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	return cmd
}

func predictDifficultyCmd() *cobra.Command {
	var (
		outputJSON bool
		at         string
	)

	cmd := &cobra.Command{
		Use:   "difficulty <habit>",
		Short: "Predict how hard a habit will feel at a target time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := time.Now().AddDate(0, 0, 1)
			if at != "" {
				parsed, err := time.Parse("2006-01-02 15:04", at)
				if err != nil {
					return fmt.Errorf("invalid --at value %q (want \"YYYY-MM-DD HH:MM\"): %w", at, err)
				}
				target = parsed
			}
			return withHabit(args[0], func(engine engineRunner, habit models.Habit) error {
				p := engine.PredictHabitDifficulty(habit, target)
				if outputJSON {
					return printJSON(p)
				}
				styles := defaultStyles()
				fmt.Printf("%s %.1f/10 (confidence %.0f%%)\n",
					styles.Title.Render("Predicted difficulty:"), p.PredictedDifficulty, p.Confidence*100)
				for _, f := range p.Factors {
					fmt.Printf("  - %s\n", f)
				}
				for _, r := range p.Recommendations {
					fmt.Println(styles.Muted.Render("  " + r))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&at, "at", "", "Target date and time (\"YYYY-MM-DD HH:MM\", default tomorrow)")
	return cmd
}

// engineRunner is the slice of the engine the predict commands need.
type engineRunner interface {
	PredictTomorrowSuccess(models.Habit) models.SuccessPrediction
	PredictWeekSuccess(models.Habit) models.WeekPrediction
	PredictHabitDifficulty(models.Habit, time.Time) models.DifficultyPrediction
}

// withHabit loads config and snapshot, resolves the habit, and invokes fn.
func withHabit(idOrTitle string, fn func(engineRunner, models.Habit) error) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	habits, err := loadHabits(cfg.HabitsPath)
	if err != nil {
		return err
	}
	habit, err := findHabit(habits, idOrTitle)
	if err != nil {
		return err
	}

	store, err := openUsageStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	engine, err := newEngine(ctx, cfg, store)
	if err != nil {
		return err
	}
	return fn(engine, habit)
}
