// Package models defines the immutable value types consumed and produced
// by the analytics engine: the habit time-series model, the insight model
// with its tagged payloads, and the prediction result types.
//
// All types are plain snapshots. The engine never mutates them, and the
// data layer that produces them is responsible for their integrity (at
// most one entry per habit per calendar day, well-formed dates).
package models

import "time"

// TimeOfDay is a coarse part-of-day bucket attached to an entry by the
// user at completion time.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// Frequency describes how often a habit is meant to be performed.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyCustom  Frequency = "custom"
)

// HabitEntry is a single day's record for a habit. Optional fields use
// their zero value when unset: Mood and Difficulty are 0 when unrated
// (1-10 when rated), CompletedAt is nil when only the day is known, and
// TimeOfDay is empty when the user did not tag one.
type HabitEntry struct {
	// Date is the calendar day of the entry. Only the date portion is
	// meaningful; at most one entry exists per habit per day.
	Date time.Time `json:"date"`

	// Completed reports whether the habit was done that day.
	Completed bool `json:"completed"`

	// Value is the completion count for multi-completion habits (>= 1
	// when completed).
	Value int `json:"value,omitempty"`

	// CompletedAt is the precise completion timestamp, when known. Used
	// for hour-of-day analysis.
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// TimeOfDay is an explicit part-of-day tag, when the user set one.
	TimeOfDay TimeOfDay `json:"time_of_day,omitempty"`

	// Mood is a 1-10 self-rating recorded with the entry, 0 if unrated.
	Mood int `json:"mood,omitempty"`

	// Difficulty is a 1-10 self-rating of how hard the habit felt, 0 if
	// unrated.
	Difficulty int `json:"difficulty,omitempty"`

	// Notes is free-form text attached to the entry.
	Notes string `json:"notes,omitempty"`
}

// Day returns the entry's calendar day key in YYYY-MM-DD form.
func (e HabitEntry) Day() string {
	return e.Date.Format("2006-01-02")
}

// Hour returns the hour of day for timing analysis: the completion
// timestamp's hour when present, otherwise the entry date's hour.
func (e HabitEntry) Hour() int {
	if e.CompletedAt != nil {
		return e.CompletedAt.Hour()
	}
	return e.Date.Hour()
}

// Habit is a tracked habit with its full entry history. Entry order is
// not significant; analyzers sort as needed.
type Habit struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Category  string       `json:"category,omitempty"`
	Frequency Frequency    `json:"frequency"`
	Entries   []HabitEntry `json:"entries"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
}

// CategoryOrDefault returns the habit's category, or "General" when none
// was set.
func (h Habit) CategoryOrDefault() string {
	if h.Category == "" {
		return "General"
	}
	return h.Category
}
