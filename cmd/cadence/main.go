package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"cadence/internal/analytics"
	"cadence/internal/config"
	"cadence/internal/usagestore"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Cadence - habit analytics from your completion history",
	Long: `Cadence analyzes a habit-completion snapshot and produces ranked
insights, success predictions, an optimal daily schedule, and coaching.

Point it at a habits JSON snapshot (see "cadence demo" to generate one)
and run any of the analysis commands.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "cadence.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(
		insightsCmd(),
		predictRootCmd(),
		scheduleCmd(),
		coachCmd(),
		forecastCmd(),
		demoCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file named by the global flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Printf("loaded config from %s (habits: %s)", cfgFile, cfg.HabitsPath)
	}
	return cfg, nil
}

// openUsageStore returns the configured store: SQLite when a path is
// set, otherwise in-memory (no persistence between runs).
func openUsageStore(cfg *config.Config) (usagestore.Store, error) {
	if cfg.UsageStorePath == "" {
		return usagestore.NewMemory(), nil
	}
	return usagestore.NewSQLite(cfg.UsageStorePath)
}

// newEngine builds an analytics engine hydrated from the usage store.
func newEngine(ctx context.Context, cfg *config.Config, store usagestore.Store) (*analytics.Engine, error) {
	used, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load used recommendations: %w", err)
	}

	opts := []analytics.Option{analytics.WithUsedRecommendations(used)}
	if cfg.MaxInsights > 0 {
		opts = append(opts, analytics.WithMaxInsights(cfg.MaxInsights))
	}
	return analytics.New(opts...), nil
}
