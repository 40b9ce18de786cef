package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cadence/internal/models"
)

// loadHabits reads a habit snapshot from a JSON file.
func loadHabits(path string) ([]models.Habit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read habits snapshot %s: %w", path, err)
	}

	var habits []models.Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return nil, fmt.Errorf("failed to parse habits snapshot %s: %w", path, err)
	}
	return habits, nil
}

// saveHabits writes a habit snapshot as indented JSON.
func saveHabits(path string, habits []models.Habit) error {
	data, err := json.MarshalIndent(habits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal habits: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write habits snapshot %s: %w", path, err)
	}
	return nil
}

// findHabit locates a habit by ID or case-insensitive title.
func findHabit(habits []models.Habit, idOrTitle string) (models.Habit, error) {
	for _, h := range habits {
		if h.ID == idOrTitle || strings.EqualFold(h.Title, idOrTitle) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("no habit matching %q in snapshot", idOrTitle)
}

// printJSON writes any value as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
