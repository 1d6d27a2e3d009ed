package recommend

import (
	"context"
	"testing"
)

func TestSuggestOptionsRuleOrder(t *testing.T) {
	// Text mentioning both studio and beach: the studio rule is declared
	// first, so it wins regardless of word position in the text.
	got := SuggestOptions("a model on the beach in front of a studio backdrop")
	if got["scene"].Primary != "studio" {
		t.Errorf("scene = %q, want studio (rule order)", got["scene"].Primary)
	}
	if len(got["scene"].Alternatives) == 0 || got["scene"].Alternatives[0] != "beach" {
		t.Errorf("alternatives = %v, want beach first", got["scene"].Alternatives)
	}

	got = SuggestOptions("walking along the sand by the ocean")
	if got["scene"].Primary != "beach" {
		t.Errorf("scene = %q, want beach", got["scene"].Primary)
	}
}

func TestSuggestOptionsDefaults(t *testing.T) {
	got := SuggestOptions("")
	if got["scene"].Primary != "studio" {
		t.Errorf("default scene = %q", got["scene"].Primary)
	}
	if got["lighting"].Primary != "soft-diffused" {
		t.Errorf("default lighting = %q", got["lighting"].Primary)
	}
	if got["scene"].Reason != "default for this category" {
		t.Errorf("default reason = %q", got["scene"].Reason)
	}
}

func TestSuggestOptionsAcrossCategories(t *testing.T) {
	got := SuggestOptions("elegant vintage dress at golden hour on a rooftop with pastel tones")

	want := map[string]string{
		"scene":        "rooftop",
		"lighting":     "golden-hour",
		"mood":         "elegant",
		"style":        "vintage",
		"colorPalette": "pastel",
	}
	for category, value := range want {
		if got[category].Primary != value {
			t.Errorf("%s = %q, want %q", category, got[category].Primary, value)
		}
	}
}

type fakeUsage map[string]string

func (f fakeUsage) MostUsedValue(ctx context.Context, category string) (string, bool) {
	v, ok := f[category]
	return v, ok
}

func TestSuggestOptionsWithUsageOverridesDefaults(t *testing.T) {
	usage := fakeUsage{"scene": "cafe"}

	got := SuggestOptionsWithUsage(context.Background(), "", usage)
	if got["scene"].Primary != "cafe" {
		t.Errorf("scene = %q, want most-used cafe", got["scene"].Primary)
	}
	// lighting has no usage entry, so the static default survives.
	if got["lighting"].Primary != "soft-diffused" {
		t.Errorf("lighting = %q, want static default", got["lighting"].Primary)
	}

	// A rule match is never overridden by popularity.
	got = SuggestOptionsWithUsage(context.Background(), "studio backdrop", usage)
	if got["scene"].Primary != "studio" {
		t.Errorf("scene = %q, rule match should beat most-used", got["scene"].Primary)
	}
}

func TestSuggestOptionsCaseInsensitive(t *testing.T) {
	got := SuggestOptions("STUDIO Backdrop With SOFTBOX")
	if got["scene"].Primary != "studio" || got["lighting"].Primary != "soft-diffused" {
		t.Errorf("case-insensitive match failed: %+v", got)
	}
}
