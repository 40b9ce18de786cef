package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// scheduleCmd prints the optimal daily schedule.
func scheduleCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate an optimal daily schedule from completion history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			habits, err := loadHabits(cfg.HabitsPath)
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

			plan := engine.GenerateOptimalSchedule(habits)
			if outputJSON {
				return printJSON(plan)
			}

			styles := defaultStyles()
			fmt.Println(styles.Title.Render("Optimal Schedule"))
			if len(plan.Slots) == 0 {
				fmt.Println(styles.Muted.Render("  No slots yet. Log completion times to unlock scheduling."))
			}
			for _, slot := range plan.Slots {
				fmt.Printf("  %s  %-24s difficulty %.1f, success %.0f%%\n",
					slot.Time, slot.HabitTitle, slot.PredictedDifficulty, slot.PredictedSuccess*100)
				fmt.Println(styles.Muted.Render("         " + slot.Reason))
			}
			for _, tip := range plan.Tips {
				fmt.Println(styles.Positive.Render("  Tip: " + tip))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	return cmd
}
