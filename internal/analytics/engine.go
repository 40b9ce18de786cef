// Package analytics turns habit-completion time series into ranked
// insights, success predictions, an optimal daily schedule, and
// narrative coaching.
//
// Every analyzer is a pure function over an immutable habit snapshot.
// The only state an Engine holds is the set of used recommendation keys,
// which the caller hydrates before use and persists after mutation; the
// engine itself performs no I/O and never returns an error. Sparse or
// empty input degrades to empty, neutral, or clearly-labeled
// insufficient-data results behind explicit minimum-sample guards.
//
// Thread-safe: all exported methods are safe for concurrent use.
package analytics

import (
	"sort"
	"sync"
	"time"

	"cadence/internal/models"
)

// Default configuration constants.
const (
	// defaultMaxInsights is the maximum number of insights returned by
	// AnalyzeHabits after ranking.
	defaultMaxInsights = 8

	// minWeekdaySamples is the minimum entries a weekday needs before it
	// participates in weekday analysis.
	minWeekdaySamples = 3

	// minHourSamples is the minimum entries an hour bucket needs in the
	// timing analyzer.
	minHourSamples = 3

	// minCommonDates is the minimum shared calendar dates two habits
	// need before a correlation is computed.
	minCommonDates = 5

	// minStackingCount is the minimum same-day co-completions before a
	// stacking insight is emitted.
	minStackingCount = 5
)

// Option configures an Engine.
type Option func(*Engine)

// WithMaxInsights overrides the insight cap applied after ranking.
func WithMaxInsights(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxInsights = n
		}
	}
}

// WithUsedRecommendations seeds the used-recommendation set at
// construction time, typically from the caller's store.
func WithUsedRecommendations(keys []string) Option {
	return func(e *Engine) {
		for _, k := range keys {
			if k != "" {
				e.used[k] = struct{}{}
			}
		}
	}
}

// WithClock overrides the engine's notion of "now". Tests use this to
// pin weekday-relative behavior.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine is the habit analytics engine. Construct one per session with
// New, seed it with the previously used recommendation keys, and persist
// UsedRecommendations after the session.
type Engine struct {
	mu   sync.RWMutex
	used map[string]struct{}

	maxInsights int
	now         func() time.Time
}

// New creates an analytics engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		used:        make(map[string]struct{}),
		maxInsights: defaultMaxInsights,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetUsedRecommendations replaces the used-recommendation set.
func (e *Engine) SetUsedRecommendations(keys []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.used = make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k != "" {
			e.used[k] = struct{}{}
		}
	}
}

// UsedRecommendations returns the current used-recommendation keys,
// sorted, for the caller to persist.
func (e *Engine) UsedRecommendations() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	keys := make([]string, 0, len(e.used))
	for k := range e.used {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarkRecommendationAsUsed records that the user acted on the
// recommendation identified by the given payload and returns its dedup
// key. Payload kinds that are never deduplicated return "" and leave the
// set unchanged.
func (e *Engine) MarkRecommendationAsUsed(data models.InsightData) string {
	key := DedupKey(data)
	if key == "" {
		return ""
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.used[key] = struct{}{}
	return key
}

// isUsed reports whether a dedup key has already been surfaced and acted
// on. The empty key is never considered used.
func (e *Engine) isUsed(key string) bool {
	if key == "" {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.used[key]
	return ok
}

// AnalyzeHabits runs every pattern analyzer over the snapshot, merges
// their outputs, ranks by priority then confidence, and returns at most
// the configured cap. An empty snapshot returns a single onboarding
// insight.
func (e *Engine) AnalyzeHabits(habits []models.Habit) []models.Insight {
	if len(habits) == 0 {
		return []models.Insight{onboardingInsight()}
	}

	var insights []models.Insight
	insights = append(insights, e.analyzeWeekdays(habits)...)
	insights = append(insights, e.analyzeStreakRisk(habits)...)
	insights = append(insights, e.analyzeCorrelations(habits)...)
	insights = append(insights, e.analyzeStacking(habits)...)
	insights = append(insights, e.analyzeTiming(habits)...)
	insights = append(insights, e.suggestHabits(habits)...)
	insights = append(insights, e.analyzeDifficultyFit(habits)...)
	insights = append(insights, e.buildRecoveryPlans(habits)...)
	insights = append(insights, e.analyzeMoodLinks(habits)...)
	insights = append(insights, e.analyzeDifficultyTrends(habits)...)

	sort.SliceStable(insights, func(i, j int) bool {
		wi, wj := insights[i].Priority.Weight(), insights[j].Priority.Weight()
		if wi != wj {
			return wi > wj
		}
		return insights[i].Confidence > insights[j].Confidence
	})

	if len(insights) > e.maxInsights {
		insights = insights[:e.maxInsights]
	}
	return insights
}

// onboardingInsight is the fixed insight returned for an empty habit set.
func onboardingInsight() models.Insight {
	return models.Insight{
		Type:        models.InsightRecommendation,
		Title:       "Start Your First Habit",
		Description: "Add a habit and log a few days of completions to unlock personalized insights, predictions, and coaching.",
		Confidence:  1.0,
		Priority:    models.PriorityHigh,
		Actionable:  true,
		Data:        models.Onboarding{},
	}
}
