package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "habits.json", cfg.HabitsPath)
		assert.Equal(t, 7, cfg.ForecastDays)
		assert.Empty(t, cfg.UsageStorePath)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadence.yaml")
		data := "habits_path: data/habits.json\nusage_store_path: usage.db\nmax_insights: 5\nforecast_days: 14\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "data/habits.json", cfg.HabitsPath)
		assert.Equal(t, "usage.db", cfg.UsageStorePath)
		assert.Equal(t, 5, cfg.MaxInsights)
		assert.Equal(t, 14, cfg.ForecastDays)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadence.yaml")
		require.NoError(t, os.WriteFile(path, []byte("usage_store_path: usage.db\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "habits.json", cfg.HabitsPath)
		assert.Equal(t, 7, cfg.ForecastDays)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadence.yaml")
		require.NoError(t, os.WriteFile(path, []byte("habits_path: [broken\n"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cadence.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_insights: -1\n"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("empty habits path is rejected", func(t *testing.T) {
		cfg := &Config{}
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero forecast days defaults to a week", func(t *testing.T) {
		cfg := &Config{HabitsPath: "habits.json"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 7, cfg.ForecastDays)
	})

	t.Run("negative forecast days are rejected", func(t *testing.T) {
		cfg := &Config{HabitsPath: "habits.json", ForecastDays: -1}
		assert.Error(t, cfg.Validate())
	})
}
