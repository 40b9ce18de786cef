package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// forecastCmd prints the multi-day performance forecast.
func forecastCmd() *cobra.Command {
	var (
		outputJSON bool
		days       int
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast completions, mood, risks, and opportunities",
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

			horizon := days
			if horizon <= 0 {
				horizon = cfg.ForecastDays
			}
			fc := engine.GeneratePerformanceForecast(habits, horizon)
			if outputJSON {
				return printJSON(fc)
			}

			styles := defaultStyles()
			fmt.Println(styles.Title.Render(fmt.Sprintf("Forecast: next %d days", len(fc.Days))))
			for _, day := range fc.Days {
				fmt.Printf("  %s  ~%.1f completions, mood %.1f\n", day.Date, day.PredictedCompletions, day.PredictedMood)
				for _, r := range day.RiskFactors {
					fmt.Println(styles.Warning.Render("    ! " + r))
				}
				for _, o := range day.Opportunities {
					fmt.Println(styles.Positive.Render("    + " + o))
				}
			}
			fmt.Printf("\nTotal predicted completions: %.1f\n", fc.Summary.TotalPredictedCompletions)
			fmt.Printf("Days at streak risk: %d, leverage days: %d\n",
				fc.Summary.StreakRiskDays, fc.Summary.OpportunityDays)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	cmd.Flags().IntVar(&days, "days", 0, "Forecast horizon in days (default from config)")
	return cmd
}
