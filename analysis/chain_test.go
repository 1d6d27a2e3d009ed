package analysis

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	name      string
	available bool
	err       error
	calls     int
}

func (p *fakeProvider) Name() string    { return p.name }
func (p *fakeProvider) Available() bool { return p.available }

func (p *fakeProvider) Analyze(ctx context.Context, subject Subject) (*Result, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &Result{
		Basic:   basicInfo(subject),
		Content: contentReport(subject),
		Quality: QualityReport{OverallScore: 8, Grade: ScoreToGrade(8)},
	}, nil
}

func TestChainTotalOutageFallsBack(t *testing.T) {
	chain := NewChain(
		&fakeProvider{name: "gemini", available: false},
		&fakeProvider{name: "huggingface", available: false},
	)

	result := chain.Analyze(context.Background(), Subject{ID: "g1", Success: true})
	if result == nil {
		t.Fatal("chain returned nil on total outage")
	}
	if result.Provider != "fallback" {
		t.Errorf("provider = %q, want %q", result.Provider, "fallback")
	}
	if result.Quality.OverallScore != 6 || result.Quality.Grade != "C" {
		t.Errorf("successful subject fallback quality = %.1f/%s, want 6.0/C",
			result.Quality.OverallScore, result.Quality.Grade)
	}
	if result.CreatedAt.IsZero() {
		t.Errorf("fallback result missing createdAt")
	}
}

func TestChainFallbackFailedSubject(t *testing.T) {
	chain := NewChain()
	result := chain.Analyze(context.Background(), Subject{ID: "g1", Success: false})
	if result.Quality.OverallScore != 3 || result.Quality.Grade != "F" {
		t.Errorf("failed subject fallback quality = %.1f/%s, want 3.0/F",
			result.Quality.OverallScore, result.Quality.Grade)
	}
}

func TestChainContinuesPastFailingProvider(t *testing.T) {
	failing := &fakeProvider{name: "gemini", available: true, err: errors.New("quota exceeded")}
	healthy := &fakeProvider{name: "huggingface", available: true}

	var observed []string
	chain := NewChain(failing, healthy)
	chain.OnProviderFailure = func(provider string, err error) {
		observed = append(observed, provider)
	}

	result := chain.Analyze(context.Background(), Subject{ID: "g1", Success: true})
	if result.Provider != "huggingface" {
		t.Errorf("provider = %q, want the second provider", result.Provider)
	}
	if failing.calls != 1 || healthy.calls != 1 {
		t.Errorf("expected both providers to be tried once, got %d and %d", failing.calls, healthy.calls)
	}
	if len(observed) != 1 || observed[0] != "gemini" {
		t.Errorf("swallowed failure not observed: %v", observed)
	}
}

func TestChainStopsAtFirstSuccess(t *testing.T) {
	first := &fakeProvider{name: "gemini", available: true}
	second := &fakeProvider{name: "huggingface", available: true}

	result := NewChain(first, second).Analyze(context.Background(), Subject{ID: "g1", Success: true})
	if result.Provider != "gemini" {
		t.Errorf("provider = %q, want the first provider", result.Provider)
	}
	if second.calls != 0 {
		t.Errorf("later provider invoked despite earlier success")
	}
}
