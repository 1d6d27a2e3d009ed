package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/raushankrgupta/fitly-ai/models"
)

type staticPresets []models.Option

func (s staticPresets) Candidates(ctx context.Context) ([]models.Option, error) {
	return s, nil
}

type staticActivity UserActivity

func (s staticActivity) Activity(ctx context.Context, userID string) (*UserActivity, error) {
	a := UserActivity(s)
	return &a, nil
}

func opt(category, label string, usage int) models.Option {
	return models.Option{Category: category, Label: label, UsageCount: usage}
}

func TestScorePresets(t *testing.T) {
	activity := &UserActivity{
		TopCategories:    []string{"scene"},
		RecentCategories: []string{"lighting"},
	}
	candidates := []models.Option{
		opt("scene", "Studio", 50),    // 30 top + 10 capped usage = 40
		opt("lighting", "Golden", 4),  // 25 recent + 4 = 29
		opt("mood", "Elegant", 3),     // 3
		opt("style", "Casual", 0),     // 0
	}

	presets := scorePresets(candidates, activity)

	if presets[0].Name != "Studio" || presets[0].RelevanceScore != 40 {
		t.Errorf("top preset = %s(%d), want Studio(40)", presets[0].Name, presets[0].RelevanceScore)
	}
	if presets[1].Name != "Golden" || presets[1].RelevanceScore != 29 {
		t.Errorf("second preset = %s(%d), want Golden(29)", presets[1].Name, presets[1].RelevanceScore)
	}

	if presets[0].WhyRecommended != "matches your interest in scene, popular choice" {
		t.Errorf("reason = %q", presets[0].WhyRecommended)
	}
	if presets[3].WhyRecommended != "recommended for you" {
		t.Errorf("default reason = %q", presets[3].WhyRecommended)
	}
}

func TestScorePresetsTopFive(t *testing.T) {
	var candidates []models.Option
	for i := 0; i < 8; i++ {
		candidates = append(candidates, opt("scene", "Opt", i))
	}
	presets := scorePresets(candidates, &UserActivity{})
	if len(presets) != 5 {
		t.Errorf("got %d presets, want 5", len(presets))
	}
	// Highest usage first after scoring.
	if presets[0].RelevanceScore != 7 {
		t.Errorf("top score = %d, want 7", presets[0].RelevanceScore)
	}
}

func TestPersonalizedPresetsEmptyCatalogFallsBack(t *testing.T) {
	engine := NewEngine(staticPresets{}, staticActivity{}, nil)

	presets, err := engine.PersonalizedPresets(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(presets) != 3 || presets[0].Name != "Fashion Photography" {
		t.Errorf("expected static defaults, got %+v", presets)
	}
}

func TestPersonalizedPresetsCaching(t *testing.T) {
	clock := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	source := &countingPresets{options: []models.Option{opt("scene", "Studio", 2)}}
	engine := NewEngine(source, staticActivity{}, now)

	ctx := context.Background()
	reqCtx := map[string]string{"useCase": "change-clothes"}

	if _, err := engine.PersonalizedPresets(ctx, "u1", reqCtx); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if _, err := engine.PersonalizedPresets(ctx, "u1", reqCtx); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("preset source called %d times, want 1 (cache hit)", source.calls)
	}

	// Different context misses the cache.
	if _, err := engine.PersonalizedPresets(ctx, "u1", map[string]string{"useCase": "social-media"}); err != nil {
		t.Fatalf("third call failed: %v", err)
	}
	if source.calls != 2 {
		t.Errorf("preset source called %d times, want 2", source.calls)
	}

	// Entry expires after the TTL.
	clock = clock.Add(31 * time.Minute)
	if _, err := engine.PersonalizedPresets(ctx, "u1", reqCtx); err != nil {
		t.Fatalf("post-expiry call failed: %v", err)
	}
	if source.calls != 3 {
		t.Errorf("preset source called %d times after expiry, want 3", source.calls)
	}
}

type countingPresets struct {
	options []models.Option
	calls   int
}

func (c *countingPresets) Candidates(ctx context.Context) ([]models.Option, error) {
	c.calls++
	return c.options, nil
}

func TestCacheKeyStable(t *testing.T) {
	a := cacheKey("u1", map[string]string{"b": "2", "a": "1"})
	b := cacheKey("u1", map[string]string{"a": "1", "b": "2"})
	if a != b {
		t.Errorf("cache keys differ for equivalent contexts: %q vs %q", a, b)
	}
	if a == cacheKey("u2", map[string]string{"a": "1", "b": "2"}) {
		t.Error("cache key should vary by user")
	}
}
