package recommend

import (
	"context"
	"strings"
)

// Suggestion is a rule-derived option proposal for one category.
type Suggestion struct {
	Primary      string   `json:"primary"`
	Reason       string   `json:"reason"`
	Alternatives []string `json:"alternatives,omitempty"`
}

type keywordRule struct {
	value    string
	keywords []string
}

// Rule tables mapping analysis text to option values. Rules are evaluated
// top to bottom and the first match wins, so a caption mentioning both a
// studio backdrop and a beach resolves to studio.
var sceneRules = []keywordRule{
	{"studio", []string{"studio", "seamless", "backdrop", "cyclorama"}},
	{"white-background", []string{"white background", "plain background", "isolated"}},
	{"beach", []string{"beach", "sand", "ocean", "seaside", "shore"}},
	{"urban-street", []string{"street", "urban", "city", "downtown", "sidewalk"}},
	{"cafe", []string{"cafe", "coffee", "bistro"}},
	{"outdoor-park", []string{"park", "garden", "grass", "trees", "nature"}},
	{"office", []string{"office", "desk", "workplace", "corporate"}},
	{"luxury-interior", []string{"luxury", "marble", "chandelier", "penthouse"}},
	{"rooftop", []string{"rooftop", "skyline", "terrace"}},
}

var lightingRules = []keywordRule{
	{"golden-hour", []string{"golden hour", "sunset", "sunrise", "warm glow"}},
	{"dramatic-rembrandt", []string{"dramatic", "moody shadows", "chiaroscuro", "low key"}},
	{"natural-window", []string{"window light", "daylight", "natural light"}},
	{"high-key", []string{"bright", "high key", "airy"}},
	{"backlit", []string{"backlit", "silhouette", "rim light"}},
	{"neon-colored", []string{"neon", "colored lights", "rgb"}},
	{"overcast-outdoor", []string{"overcast", "cloudy", "diffuse sky"}},
	{"soft-diffused", []string{"soft", "diffused", "softbox", "even light"}},
}

var moodSuggestionRules = []keywordRule{
	{"elegant", []string{"elegant", "sophisticated", "graceful", "refined"}},
	{"confident", []string{"confident", "bold", "powerful", "strong"}},
	{"playful", []string{"playful", "fun", "cheerful", "smiling"}},
	{"romantic", []string{"romantic", "dreamy", "soft focus", "tender"}},
	{"energetic", []string{"energetic", "dynamic", "motion", "active"}},
	{"mysterious", []string{"mysterious", "dark", "enigmatic", "shadowy"}},
	{"calm", []string{"calm", "serene", "peaceful", "relaxed"}},
}

var styleSuggestionRules = []keywordRule{
	{"minimalist", []string{"minimal", "clean lines", "simple"}},
	{"vintage", []string{"vintage", "retro", "classic", "old school"}},
	{"sporty", []string{"sport", "athletic", "activewear", "gym"}},
	{"formal", []string{"formal", "suit", "business", "tailored"}},
	{"bohemian", []string{"boho", "bohemian", "flowy", "free-spirited"}},
	{"edgy", []string{"edgy", "grunge", "punk", "leather jacket"}},
	{"casual", []string{"casual", "everyday", "relaxed fit", "streetwear"}},
}

var cameraAngleRules = []keywordRule{
	{"close-up", []string{"close-up", "close up", "portrait", "face shot"}},
	{"full-body", []string{"full body", "head to toe", "full length"}},
	{"low-angle", []string{"low angle", "looking up", "from below"}},
	{"high-angle", []string{"high angle", "overhead", "top down", "from above"}},
	{"side-profile", []string{"profile", "side view"}},
	{"eye-level", []string{"eye level", "straight on"}},
}

var paletteSuggestionRules = []keywordRule{
	{"monochrome", []string{"black and white", "monochrome", "grayscale"}},
	{"pastel", []string{"pastel", "soft pink", "baby blue", "mint"}},
	{"earth-tones", []string{"earth", "beige", "terracotta", "olive", "brown"}},
	{"jewel-tones", []string{"emerald", "sapphire", "ruby", "jewel"}},
	{"vibrant", []string{"vibrant", "colorful", "saturated", "bold colors"}},
	{"neutral", []string{"neutral", "cream", "taupe", "muted"}},
}

// categoryRules drives SuggestOptions. Order here is the order categories
// appear in the result and each entry carries its default when no rule fires.
var categoryRules = []struct {
	category string
	rules    []keywordRule
	fallback string
}{
	{"scene", sceneRules, "studio"},
	{"lighting", lightingRules, "soft-diffused"},
	{"mood", moodSuggestionRules, "confident"},
	{"style", styleSuggestionRules, "casual"},
	{"colorPalette", paletteSuggestionRules, "neutral"},
	{"cameraAngle", cameraAngleRules, "eye-level"},
}

const defaultReason = "default for this category"

// SuggestOptions derives per-category option suggestions from free analysis
// text (image captions, product descriptions). Purely rule based, no model
// calls, so it is cheap enough to run on every analyze response.
func SuggestOptions(analysisText string) map[string]Suggestion {
	text := strings.ToLower(analysisText)
	out := make(map[string]Suggestion, len(categoryRules))

	for _, entry := range categoryRules {
		suggestion := Suggestion{
			Primary: entry.fallback,
			Reason:  defaultReason,
		}
		matched := matchValues(text, entry.rules)
		if len(matched) > 0 {
			suggestion.Primary = matched[0].value
			suggestion.Reason = "analysis mentions " + matched[0].keyword
			for _, m := range matched[1:] {
				suggestion.Alternatives = append(suggestion.Alternatives, m.value)
			}
			if len(suggestion.Alternatives) > 2 {
				suggestion.Alternatives = suggestion.Alternatives[:2]
			}
		}
		out[entry.category] = suggestion
	}
	return out
}

// UsageSource resolves a category to its most-used catalog value.
type UsageSource interface {
	MostUsedValue(ctx context.Context, category string) (string, bool)
}

// SuggestOptionsWithUsage layers catalog popularity over the rule tables:
// when no rule fires for a category, the catalog's most-used option replaces
// the static default.
func SuggestOptionsWithUsage(ctx context.Context, analysisText string, usage UsageSource) map[string]Suggestion {
	out := SuggestOptions(analysisText)
	if usage == nil {
		return out
	}
	for category, suggestion := range out {
		if suggestion.Reason != defaultReason {
			continue
		}
		if value, ok := usage.MostUsedValue(ctx, category); ok && value != "" {
			suggestion.Primary = value
			suggestion.Reason = "most used option in this category"
			out[category] = suggestion
		}
	}
	return out
}

type ruleMatch struct {
	value   string
	keyword string
}

// matchValues returns every rule whose keywords appear in the text, in rule
// order, one entry per rule.
func matchValues(text string, rules []keywordRule) []ruleMatch {
	var matches []ruleMatch
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				matches = append(matches, ruleMatch{value: rule.value, keyword: kw})
				break
			}
		}
	}
	return matches
}
