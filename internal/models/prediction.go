package models

// SuccessPrediction estimates the chance of completing a habit tomorrow.
type SuccessPrediction struct {
	// Probability is clamped to [0.1, 0.9]; 0.5 when there is not
	// enough history to predict.
	Probability float64 `json:"probability"`

	// Factors lists the qualitative signals behind the estimate, in
	// order of importance.
	Factors []string `json:"factors"`

	// Recommendation is short advisory text keyed to the probability.
	Recommendation string `json:"recommendation,omitempty"`
}

// WeekPrediction estimates per-weekday and overall success for the week
// ahead.
type WeekPrediction struct {
	// DailyProbabilities maps weekday name ("Monday", ...) to the
	// predicted completion rate for that day.
	DailyProbabilities map[string]float64 `json:"daily_probabilities,omitempty"`

	// WeeklyProbability is the mean of the seven daily rates.
	WeeklyProbability float64 `json:"weekly_probability"`

	RiskFactors     []string `json:"risk_factors,omitempty"`
	SuccessFactors  []string `json:"success_factors,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// DifficultyPrediction estimates how hard a habit will feel at a target
// date and time.
type DifficultyPrediction struct {
	// PredictedDifficulty is on the 1-10 entry scale, rounded to one
	// decimal.
	PredictedDifficulty float64 `json:"predicted_difficulty"`

	Factors         []string `json:"factors,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`

	// Confidence grows with sample count, capped at 0.9.
	Confidence float64 `json:"confidence"`
}

// ScheduleSlot is one habit assigned to a time of day.
type ScheduleSlot struct {
	Time                string  `json:"time"`
	HabitID             string  `json:"habit_id"`
	HabitTitle          string  `json:"habit_title"`
	PredictedDifficulty float64 `json:"predicted_difficulty"`
	PredictedSuccess    float64 `json:"predicted_success"`
	Reason              string  `json:"reason"`
}

// SchedulePlan is an optimal daily schedule with supplementary tips.
type SchedulePlan struct {
	Slots []ScheduleSlot `json:"schedule"`
	Tips  []string       `json:"tips,omitempty"`
}

// CoachingPlan is a tiered motivational plan built from recent activity.
type CoachingPlan struct {
	MotivationalMessage string   `json:"motivational_message"`
	FocusArea           string   `json:"focus_area"`
	ActionPlan          []string `json:"action_plan"`
	Encouragement       string   `json:"encouragement"`
	WeeklyGoals         []string `json:"weekly_goals"`
}

// ForecastDay is the outlook for a single future day.
type ForecastDay struct {
	// Date is the forecast day in YYYY-MM-DD form.
	Date string `json:"date"`

	// PredictedCompletions is the expected number of habit completions.
	PredictedCompletions float64 `json:"predicted_completions"`

	// PredictedMood is the expected 1-10 mood based on history for the
	// same weekday.
	PredictedMood float64 `json:"predicted_mood"`

	RiskFactors   []string `json:"risk_factors,omitempty"`
	Opportunities []string `json:"opportunities,omitempty"`
}

// ForecastSummary aggregates a multi-day forecast.
type ForecastSummary struct {
	TotalPredictedCompletions float64 `json:"total_predicted_completions"`

	// StreakRiskDays counts days predicted below 40% of the habit count.
	StreakRiskDays int `json:"streak_risk_days"`

	// OpportunityDays counts days predicted above 80% of the habit count.
	OpportunityDays int `json:"opportunity_days"`
}

// Forecast is the outlook for the next N days.
type Forecast struct {
	Days    []ForecastDay   `json:"forecast"`
	Summary ForecastSummary `json:"summary"`
}
