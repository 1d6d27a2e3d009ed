package analysis

import (
	"context"
	"log"
	"time"
)

// Provider is one external analysis backend. Available reports whether the
// provider's credential is configured; unavailable providers are skipped
// without counting as failures.
type Provider interface {
	Name() string
	Available() bool
	Analyze(ctx context.Context, subject Subject) (*Result, error)
}

// Chain tries providers in priority order and guarantees a usable result
// even when every external service is down. A single provider's failure
// never aborts the chain; it is logged and the next provider is tried.
type Chain struct {
	providers []Provider

	// OnProviderFailure is invoked for every swallowed provider error so
	// outages stay observable. Defaults to a log line.
	OnProviderFailure func(provider string, err error)
}

// NewChain builds a chain over the given providers, tried in argument order.
func NewChain(providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		OnProviderFailure: func(provider string, err error) {
			log.Printf("analysis provider %s failed: %v", provider, err)
		},
	}
}

// Analyze runs the fallback chain for one subject. It never fails for
// provider unavailability: when the chain is exhausted a basic result is
// synthesized from the subject's own fields and tagged provider "fallback".
func (c *Chain) Analyze(ctx context.Context, subject Subject) *Result {
	for _, provider := range c.providers {
		if !provider.Available() {
			continue
		}
		result, err := provider.Analyze(ctx, subject)
		if err != nil {
			if c.OnProviderFailure != nil {
				c.OnProviderFailure(provider.Name(), err)
			}
			continue
		}
		result.Provider = provider.Name()
		result.CreatedAt = time.Now()
		return result
	}

	result := c.fallbackResult(subject)
	result.CreatedAt = time.Now()
	return result
}

// fallbackResult synthesizes an analysis purely from locally available
// subject fields.
func (c *Chain) fallbackResult(subject Subject) *Result {
	score := 3.0
	grade := "F"
	if subject.Success {
		score = 6.0
		grade = "C"
	}

	return &Result{
		Basic:   basicInfo(subject),
		Content: contentReport(subject),
		Quality: QualityReport{
			OverallScore: score,
			Criteria: QualityCriteria{
				TechnicalQuality: score,
				AestheticAppeal:  score,
				PromptAdherence:  score,
				PracticalUtility: score,
			},
			Feedback: "Basic analysis - providers unavailable",
			Grade:    grade,
		},
		Suggestions: []Suggestion{
			{
				Type:        "config",
				Title:       "Configure API Keys",
				Description: "Add Gemini or HuggingFace API keys for detailed analysis",
				Impact:      "Enable AI-powered insights",
			},
		},
		Provider: "fallback",
	}
}
