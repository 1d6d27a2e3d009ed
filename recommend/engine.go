package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/raushankrgupta/fitly-ai/models"
)

const cacheTTL = 30 * time.Minute

// Preset is one recommended catalog option with its relevance explanation.
type Preset struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	RelevanceScore int    `json:"relevance_score"`
	WhyRecommended string `json:"why_recommended"`
}

// UserActivity summarizes a user's generation history for scoring.
type UserActivity struct {
	TopCategories    []string
	RecentCategories []string
	TotalGenerations int
}

// ActivitySource loads a user's activity summary. The flow store implements
// this over the generation history collection.
type ActivitySource interface {
	Activity(ctx context.Context, userID string) (*UserActivity, error)
}

// PresetSource lists candidate options for recommendation.
type PresetSource interface {
	Candidates(ctx context.Context) ([]models.Option, error)
}

// Engine produces personalized option recommendations with a short-lived
// per-user cache in front.
type Engine struct {
	presets  PresetSource
	activity ActivitySource
	cache    *ttlCache
}

// NewEngine builds a recommendation engine. now is injectable for tests; pass
// nil for the wall clock.
func NewEngine(presets PresetSource, activity ActivitySource, now func() time.Time) *Engine {
	return &Engine{
		presets:  presets,
		activity: activity,
		cache:    newTTLCache(cacheTTL, now),
	}
}

// PersonalizedPresets returns up to five presets ranked for the user.
// Results are cached for 30 minutes per (user, request context) pair.
func (e *Engine) PersonalizedPresets(ctx context.Context, userID string, reqContext map[string]string) ([]Preset, error) {
	key := cacheKey(userID, reqContext)
	if cached, ok := e.cache.get(key); ok {
		return cached.([]Preset), nil
	}

	activity, err := e.activity.Activity(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading activity for %s: %v", userID, err)
	}

	candidates, err := e.presets.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading preset candidates: %v", err)
	}
	if len(candidates) == 0 {
		defaults := DefaultPresets()
		e.cache.set(key, defaults)
		return defaults, nil
	}

	presets := scorePresets(candidates, activity)
	e.cache.set(key, presets)
	return presets, nil
}

// scorePresets ranks candidates: +30 when the category is one of the user's
// top categories, +25 when it appeared in the last ten generations, plus a
// usage bonus capped at 10. Ties keep candidate order, which the preset
// source already sorts by usage.
func scorePresets(candidates []models.Option, activity *UserActivity) []Preset {
	top := toSet(activity.TopCategories)
	recent := toSet(activity.RecentCategories)

	scored := make([]Preset, 0, len(candidates))
	for _, opt := range candidates {
		score := 0
		if top[opt.Category] {
			score += 30
		}
		if recent[opt.Category] {
			score += 25
		}
		usage := opt.UsageCount
		if usage > 10 {
			usage = 10
		}
		score += usage

		scored = append(scored, Preset{
			ID:             opt.ID.Hex(),
			Category:       opt.Category,
			Name:           opt.Label,
			Description:    presetDescription(opt),
			RelevanceScore: score,
			WhyRecommended: explain(opt, top),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	if len(scored) > 5 {
		scored = scored[:5]
	}
	return scored
}

func explain(opt models.Option, topCategories map[string]bool) string {
	var reasons []string
	if topCategories[opt.Category] {
		reasons = append(reasons, fmt.Sprintf("matches your interest in %s", opt.Category))
	}
	if opt.UsageCount > 10 {
		reasons = append(reasons, "popular choice")
	}
	if len(reasons) == 0 {
		return "recommended for you"
	}
	out := reasons[0]
	for _, r := range reasons[1:] {
		out += ", " + r
	}
	return out
}

func presetDescription(opt models.Option) string {
	if opt.Description != "" {
		return opt.Description
	}
	return "Custom style preset"
}

// DefaultPresets is the static fallback when the catalog is empty or the
// engine cannot reach its sources.
func DefaultPresets() []Preset {
	return []Preset{
		{
			ID:             "default-fashion",
			Name:           "Fashion Photography",
			Category:       "style",
			Description:    "Professional fashion photography style",
			RelevanceScore: 80,
			WhyRecommended: "Popular category for virtual try-on",
		},
		{
			ID:             "default-product",
			Name:           "Product Showcase",
			Category:       "scene",
			Description:    "Clean product photography style",
			RelevanceScore: 75,
			WhyRecommended: "Ideal for e-commerce images",
		},
		{
			ID:             "default-creative",
			Name:           "Creative Art",
			Category:       "mood",
			Description:    "Artistic and creative interpretations",
			RelevanceScore: 70,
			WhyRecommended: "Great for creative projects",
		},
	}
}

// ClearCache drops every cached recommendation, for use after bulk catalog
// changes such as reseeding.
func (e *Engine) ClearCache() {
	e.cache.clear()
}

// CacheSize reports the number of live cache entries.
func (e *Engine) CacheSize() int {
	return e.cache.len()
}

// cacheKey is "recs_<user>_<context-json>". Go's map marshaling sorts keys,
// so equivalent contexts always hit the same entry.
func cacheKey(userID string, reqContext map[string]string) string {
	raw, err := json.Marshal(reqContext)
	if err != nil {
		raw = []byte("{}")
	}
	return fmt.Sprintf("recs_%s_%s", userID, raw)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
