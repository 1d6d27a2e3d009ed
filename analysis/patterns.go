package analysis

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// BehaviorStats are the locally aggregated facts about one user's history.
type BehaviorStats struct {
	TotalGenerations int      `json:"total_generations"`
	RatedFlows       int      `json:"rated_flows"`
	SuccessRate      float64  `json:"success_rate"`
	TopCategories    []string `json:"top_categories"`
}

// BehaviorProfile is the classified usage pattern.
type BehaviorProfile struct {
	UserType string `json:"user_type"` // professional, creative, casual
	Summary  string `json:"summary,omitempty"`
}

// BehaviorAnalyzer classifies usage patterns with an LLM and falls back to
// simple generation-count rules whenever the call or its JSON fails. The
// fallback is never skipped; parse failures here are routine.
type BehaviorAnalyzer struct {
	apiKey string
	model  string
}

func NewBehaviorAnalyzer(apiKey string) *BehaviorAnalyzer {
	return &BehaviorAnalyzer{apiKey: apiKey, model: "gemini-1.5-flash"}
}

// ClassifyUserType is the rule-based fallback classification.
func ClassifyUserType(totalGenerations int) string {
	switch {
	case totalGenerations > 50:
		return "professional"
	case totalGenerations > 10:
		return "creative"
	default:
		return "casual"
	}
}

// AnalyzePatterns returns a behavior profile for the stats. It always
// returns a usable profile; the error path ends in the rule-based fallback.
func (a *BehaviorAnalyzer) AnalyzePatterns(ctx context.Context, stats BehaviorStats) BehaviorProfile {
	fallback := BehaviorProfile{UserType: ClassifyUserType(stats.TotalGenerations)}

	if a.apiKey == "" {
		return fallback
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return fallback
	}
	defer client.Close()

	prompt := fmt.Sprintf(`Classify this user's generation behavior.

Total generations: %d
Rated generations: %d
Success rate: %.0f%%
Top categories: %v

Respond with JSON only, no prose: {"user_type": "professional"|"creative"|"casual", "summary": "one sentence"}`,
		stats.TotalGenerations, stats.RatedFlows, stats.SuccessRate, stats.TopCategories)

	model := client.GenerativeModel(a.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fallback
	}

	var profile BehaviorProfile
	if err := DecodeJSONObject(textFromResponse(resp), &profile); err != nil {
		return fallback
	}
	switch profile.UserType {
	case "professional", "creative", "casual":
		return profile
	default:
		return fallback
	}
}
