package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// insightsCmd analyzes the snapshot and prints ranked insights.
func insightsCmd() *cobra.Command {
	var (
		outputJSON bool
		ack        int
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Analyze habits and show ranked insights",
		Long: `Run every pattern analyzer over the habit snapshot and print the
ranked, deduplicated insights.

Examples:
  cadence insights
  cadence insights --json
  cadence insights --ack 2   # mark insight #2's recommendation as acted on`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsights(outputJSON, ack)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	cmd.Flags().IntVar(&ack, "ack", 0, "Mark the Nth listed insight's recommendation as used (1-based)")

	return cmd
}

func runInsights(outputJSON bool, ack int) error {
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

	insights := engine.AnalyzeHabits(habits)

	if ack > 0 {
		if ack > len(insights) {
			return fmt.Errorf("--ack %d is out of range; only %d insights listed", ack, len(insights))
		}
		target := insights[ack-1]
		key := engine.MarkRecommendationAsUsed(target.Data)
		if key == "" {
			return fmt.Errorf("insight %d (%s) is informational and cannot be acknowledged", ack, target.Title)
		}
		if err := store.Save(ctx, engine.UsedRecommendations()); err != nil {
			return fmt.Errorf("failed to persist used recommendations: %w", err)
		}
		fmt.Printf("Acknowledged %q (%s). It won't be suggested again.\n", target.Title, key)
		return nil
	}

	if outputJSON {
		return printJSON(insights)
	}

	styles := defaultStyles()
	fmt.Println(styles.Title.Render("Insights"))
	for i, in := range insights {
		fmt.Println(styles.renderInsight(i+1, in))
	}
	return nil
}
