package models

import "time"

// InsightType classifies what kind of observation an insight is.
type InsightType string

const (
	InsightPrediction     InsightType = "prediction"
	InsightPattern        InsightType = "pattern"
	InsightRecommendation InsightType = "recommendation"
	InsightStreak         InsightType = "streak"
	InsightOptimization   InsightType = "optimization"
)

// Priority ranks how urgently an insight should be surfaced.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the numeric sort weight for ranking (high=3, medium=2,
// low=1).
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Insight is a single ranked observation or recommendation surfaced to
// the user.
type Insight struct {
	// Type classifies the insight.
	Type InsightType `json:"type"`

	// Title is the short headline.
	Title string `json:"title"`

	// Description is the full human-readable explanation.
	Description string `json:"description"`

	// Confidence is the engine's self-reported certainty (0.0-1.0).
	Confidence float64 `json:"confidence"`

	// Priority drives ranking: high insights surface first.
	Priority Priority `json:"priority"`

	// Actionable reports whether the user can act on this insight.
	Actionable bool `json:"actionable"`

	// ShowActionButton reports whether the caller should offer a
	// follow-up action control.
	ShowActionButton bool `json:"show_action_button,omitempty"`

	// Data is the analyzer-specific payload, carrying enough structure
	// to regenerate a dedup key and drive a follow-up action.
	Data InsightData `json:"data,omitempty"`

	// RecommendationID identifies the recommendation instance for
	// acknowledgement; empty for insights that are never deduplicated.
	RecommendationID string `json:"recommendation_id,omitempty"`
}

// InsightData is the tagged payload attached to an insight. Exactly one
// variant exists per analyzer output kind.
type InsightData interface {
	isInsightData()
}

// WeekdayChampion reports the weekday with the strongest completion rate.
type WeekdayChampion struct {
	BestDay time.Weekday `json:"best_day"`
	Rate    float64      `json:"rate"`
}

// WeekdayStruggle reports the weekday with the weakest completion rate.
type WeekdayStruggle struct {
	WorstDay time.Weekday `json:"worst_day"`
	Rate     float64      `json:"rate"`
	Samples  int          `json:"samples"`
}

// WeekdayNote is the informational variant for a moderately good day.
type WeekdayNote struct {
	BestDay time.Weekday `json:"best_day"`
	Rate    float64      `json:"rate"`
}

// StreakRisk flags a habit whose streak is statistically fragile.
type StreakRisk struct {
	HabitID         string  `json:"habit_id"`
	HabitTitle      string  `json:"habit_title"`
	MissProbability float64 `json:"miss_probability"`
}

// Correlation reports a co-completion link between two habits.
type Correlation struct {
	Title1 string  `json:"title1"`
	Title2 string  `json:"title2"`
	Score  float64 `json:"score"`
}

// Stacking reports two habits frequently completed on the same day.
type Stacking struct {
	Title1 string `json:"title1"`
	Title2 string `json:"title2"`
	Count  int    `json:"count"`
}

// HourRate is one hour's aggregated success rate.
type HourRate struct {
	Hour int     `json:"hour"`
	Rate float64 `json:"rate"`
}

// BestHours lists the strongest completion hours across all habits.
type BestHours struct {
	Top []HourRate `json:"top"`
}

// BestPeriod reports the strongest explicit time-of-day bucket.
type BestPeriod struct {
	Period TimeOfDay `json:"period"`
	Rate   float64   `json:"rate"`
}

// EnergyPattern compares completion rates across parts of the day.
type EnergyPattern struct {
	BestPeriod  TimeOfDay `json:"best_period"`
	WorstPeriod TimeOfDay `json:"worst_period"`
	Gap         float64   `json:"gap"`
}

// HabitSuggestion proposes a new habit to fill a category gap.
type HabitSuggestion struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// DifficultyAdjustment suggests simplifying or escalating a habit.
type DifficultyAdjustment struct {
	HabitID    string `json:"habit_id"`
	HabitTitle string `json:"habit_title"`
	// Direction is "simplify" or "challenge".
	Direction string `json:"direction"`
}

// RecoveryPlan frames a comeback goal for a recently inconsistent habit.
type RecoveryPlan struct {
	HabitID    string `json:"habit_id"`
	HabitTitle string `json:"habit_title"`
	Missed     int    `json:"missed"`
	Completed  int    `json:"completed"`
}

// MoodLink reports the relationship between a habit and recorded mood.
type MoodLink struct {
	HabitID     string  `json:"habit_id"`
	HabitTitle  string  `json:"habit_title"`
	AverageMood float64 `json:"average_mood"`
	Positive    bool    `json:"positive"`
}

// DifficultyTrend reports a habit getting easier or harder over time.
type DifficultyTrend struct {
	HabitID    string  `json:"habit_id"`
	HabitTitle string  `json:"habit_title"`
	Delta      float64 `json:"delta"`
}

// Onboarding is the payload of the single insight returned for an empty
// habit set.
type Onboarding struct{}

func (WeekdayChampion) isInsightData()      {}
func (WeekdayStruggle) isInsightData()      {}
func (WeekdayNote) isInsightData()          {}
func (StreakRisk) isInsightData()           {}
func (Correlation) isInsightData()          {}
func (Stacking) isInsightData()             {}
func (BestHours) isInsightData()            {}
func (BestPeriod) isInsightData()           {}
func (EnergyPattern) isInsightData()        {}
func (HabitSuggestion) isInsightData()      {}
func (DifficultyAdjustment) isInsightData() {}
func (RecoveryPlan) isInsightData()         {}
func (MoodLink) isInsightData()             {}
func (DifficultyTrend) isInsightData()      {}
func (Onboarding) isInsightData()           {}
