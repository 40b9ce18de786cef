package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// coachCmd prints the personalized coaching plan.
func coachCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Generate a personalized coaching plan from the last week",
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

			plan := engine.GeneratePersonalizedCoaching(habits)
			if outputJSON {
				return printJSON(plan)
			}

			styles := defaultStyles()
			fmt.Println(styles.Title.Render(plan.MotivationalMessage))
			fmt.Printf("Focus: %s\n\n", plan.FocusArea)
			fmt.Println(styles.Title.Render("Action plan"))
			for _, step := range plan.ActionPlan {
				fmt.Printf("  - %s\n", step)
			}
			fmt.Println(styles.Title.Render("Weekly goals"))
			for _, goal := range plan.WeeklyGoals {
				fmt.Printf("  - %s\n", goal)
			}
			fmt.Println()
			fmt.Println(styles.Positive.Render(plan.Encouragement))
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	return cmd
}
