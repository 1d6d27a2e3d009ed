package analysis

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider is the primary analysis backend. It combines the local
// content analysis with an LLM-scored quality report.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGeminiProvider builds the provider; an empty key leaves it unavailable
// so the chain skips it.
func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey, model: "gemini-1.5-flash"}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Available() bool { return p.apiKey != "" }

func (p *GeminiProvider) Analyze(ctx context.Context, subject Subject) (*Result, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	quality, err := p.qualityAnalysis(ctx, client, subject)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Basic:   basicInfo(subject),
		Content: contentReport(subject),
		Quality: *quality,
	}
	result.Suggestions = buildSuggestions(result)
	return result, nil
}

type llmQualityReply struct {
	Scores struct {
		TechnicalQuality float64 `json:"technical_quality"`
		AestheticAppeal  float64 `json:"aesthetic_appeal"`
		PromptAdherence  float64 `json:"prompt_adherence"`
		PracticalUtility float64 `json:"practical_utility"`
	} `json:"scores"`
	OverallFeedback string `json:"overallFeedback"`
}

// qualityAnalysis asks the model for a strictly-JSON quality report. A call
// failure is a provider failure; an unparsable reply is routine and degrades
// to the heuristic score.
func (p *GeminiProvider) qualityAnalysis(ctx context.Context, client *genai.Client, subject Subject) (*QualityReport, error) {
	prompt := fmt.Sprintf(`Analyze the quality of this AI-generated image:

Prompt: %q
Provider: %s
Generation time: %.0fs

Evaluate on these criteria:
1. Technical quality (1-10) - resolution, clarity
2. Aesthetic appeal (1-10) - colors, composition
3. Prompt adherence (1-10) - matches the prompt
4. Practical utility (1-10) - usable for its purpose

Respond with JSON only: {"scores": {"technical_quality": n, "aesthetic_appeal": n, "prompt_adherence": n, "practical_utility": n}, "overallFeedback": "..."}`,
		truncate(subject.Prompt, 200), subject.Provider, subject.GenerationTime)

	model := client.GenerativeModel(p.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini quality analysis failed: %v", err)
	}

	raw := textFromResponse(resp)
	var reply llmQualityReply
	if err := DecodeJSONObject(raw, &reply); err != nil {
		return heuristicQuality(subject), nil
	}

	criteria := QualityCriteria{
		TechnicalQuality: clampScore(reply.Scores.TechnicalQuality),
		AestheticAppeal:  clampScore(reply.Scores.AestheticAppeal),
		PromptAdherence:  clampScore(reply.Scores.PromptAdherence),
		PracticalUtility: clampScore(reply.Scores.PracticalUtility),
	}
	overall := (criteria.TechnicalQuality + criteria.AestheticAppeal + criteria.PromptAdherence + criteria.PracticalUtility) / 4
	overall = float64(int(overall*10+0.5)) / 10

	return &QualityReport{
		OverallScore: overall,
		Criteria:     criteria,
		Feedback:     reply.OverallFeedback,
		Grade:        ScoreToGrade(overall),
	}, nil
}

// heuristicQuality is the deterministic stand-in when the LLM reply cannot
// be parsed.
func heuristicQuality(subject Subject) *QualityReport {
	score := 4.0
	feedback := "Generation failed"
	if subject.Success {
		score = 7.0
		feedback = "Generation completed successfully"
	}
	return &QualityReport{
		OverallScore: score,
		Criteria: QualityCriteria{
			TechnicalQuality: score,
			AestheticAppeal:  score,
			PromptAdherence:  score,
			PracticalUtility: score,
		},
		Feedback: feedback,
		Grade:    ScoreToGrade(score),
	}
}

// buildSuggestions derives improvement tips from the computed reports.
func buildSuggestions(result *Result) []Suggestion {
	var suggestions []Suggestion

	if result.Quality.OverallScore < 7 {
		suggestions = append(suggestions, Suggestion{
			Type:        "quality",
			Title:       "Improve Prompt Detail",
			Description: "Add lighting, composition and material details to raise output quality",
			Impact:      "Higher quality scores",
		})
	}
	if result.Content.Specificity < 50 {
		suggestions = append(suggestions, Suggestion{
			Type:        "prompt",
			Title:       "Be More Specific",
			Description: "Describe colors, camera angle and scene explicitly",
			Impact:      "More predictable results",
		})
	}
	for _, issue := range result.Content.Issues {
		if issue.Severity == "high" {
			suggestions = append(suggestions, Suggestion{
				Type:        issue.Type,
				Title:       "Fix: " + issue.Description,
				Description: issue.Suggestion,
				Impact:      "Resolves a blocking issue",
			})
		}
	}
	return suggestions
}

func textFromResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
