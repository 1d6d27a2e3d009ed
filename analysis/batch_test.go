package analysis

import (
	"context"
	"fmt"
	"testing"
)

type mapSource map[string]*Subject

func (m mapSource) Subject(ctx context.Context, id string) (*Subject, error) {
	if subject, ok := m[id]; ok {
		return subject, nil
	}
	return nil, fmt.Errorf("generation %s not found", id)
}

func TestAnalyzeBatchIsolation(t *testing.T) {
	source := mapSource{
		"a": {ID: "a", Prompt: "studio fashion shot", Success: true, GenerationTime: 4},
		"c": {ID: "c", Prompt: "casual outfit on a rooftop", Success: true, GenerationTime: 6},
	}
	chain := NewChain() // no providers, every item takes the fallback path

	result := chain.AnalyzeBatch(context.Background(), source, []string{"a", "missing", "c"})

	if result.TotalAnalyzed != 3 {
		t.Fatalf("total analyzed = %d, want 3", result.TotalAnalyzed)
	}
	if result.Successful != 2 {
		t.Errorf("successful = %d, want 2", result.Successful)
	}

	wantIDs := []string{"a", "missing", "c"}
	for i, item := range result.Items {
		if item.ID != wantIDs[i] {
			t.Errorf("item %d id = %q, want input order %q", i, item.ID, wantIDs[i])
		}
	}

	if result.Items[1].Error == "" || result.Items[1].Result != nil {
		t.Errorf("invalid item should carry only an error, got %+v", result.Items[1])
	}
	if result.Items[0].Result == nil || result.Items[2].Result == nil {
		t.Errorf("valid items missing results")
	}
}

func TestBatchSummary(t *testing.T) {
	source := mapSource{
		"a": {ID: "a", Prompt: "studio fashion shot with detailed lighting", Success: true, GenerationTime: 4},
		"b": {ID: "b", Prompt: "x", Success: false, GenerationTime: 80},
	}
	chain := NewChain()

	result := chain.AnalyzeBatch(context.Background(), source, []string{"a", "b"})
	summary := result.Summary

	if summary.TotalGenerations != 2 {
		t.Errorf("summary total = %d, want 2", summary.TotalGenerations)
	}
	if summary.SuccessRate != 50 {
		t.Errorf("success rate = %d%%, want 50%%", summary.SuccessRate)
	}
	// fallback scores: 6 for success, 3 for failure
	if summary.AverageQuality != 4.5 {
		t.Errorf("average quality = %v, want 4.5", summary.AverageQuality)
	}
	if len(summary.CommonIssues) == 0 {
		t.Errorf("expected common issues from the failed short-prompt item")
	}
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	result := NewChain().AnalyzeBatch(context.Background(), mapSource{}, nil)
	if result.TotalAnalyzed != 0 || result.Successful != 0 {
		t.Errorf("empty batch should be all zeros, got %+v", result)
	}
}
