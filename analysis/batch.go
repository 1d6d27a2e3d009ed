package analysis

import (
	"context"
	"sort"
)

// SubjectSource resolves a subject id to the artifact itself; the flow store
// implements it in production.
type SubjectSource interface {
	Subject(ctx context.Context, id string) (*Subject, error)
}

// BatchItem is one entry of a batch result, in input order. Exactly one of
// Result and Error is set.
type BatchItem struct {
	ID     string  `json:"id"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// BatchSummary aggregates the successful analyses of a batch.
type BatchSummary struct {
	AverageQuality        float64     `json:"average_quality"`
	AverageGenerationTime float64     `json:"average_generation_time"`
	TotalGenerations      int         `json:"total_generations"`
	SuccessRate           int         `json:"success_rate"` // percent
	CommonIssues          []IssueTally `json:"common_issues,omitempty"`
}

// IssueTally counts occurrences of one issue type across a batch.
type IssueTally struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// BatchResult is the envelope for a multi-subject analysis run.
type BatchResult struct {
	TotalAnalyzed int          `json:"total_analyzed"`
	Successful    int          `json:"successful"`
	Items         []BatchItem  `json:"items"`
	Summary       BatchSummary `json:"summary"`
}

// AnalyzeBatch analyzes the given subjects sequentially. One item's failure
// never cancels its siblings: failures are captured per item as {id, error}
// and results stay in input order.
func (c *Chain) AnalyzeBatch(ctx context.Context, source SubjectSource, ids []string) BatchResult {
	items := make([]BatchItem, 0, len(ids))

	for _, id := range ids {
		subject, err := source.Subject(ctx, id)
		if err != nil {
			items = append(items, BatchItem{ID: id, Error: err.Error()})
			continue
		}
		items = append(items, BatchItem{ID: id, Result: c.Analyze(ctx, *subject)})
	}

	result := BatchResult{
		TotalAnalyzed: len(items),
		Items:         items,
	}
	for _, item := range items {
		if item.Error == "" {
			result.Successful++
		}
	}
	result.Summary = summarizeBatch(items)
	return result
}

func summarizeBatch(items []BatchItem) BatchSummary {
	var valid []*Result
	for _, item := range items {
		if item.Error == "" && item.Result != nil {
			valid = append(valid, item.Result)
		}
	}
	if len(valid) == 0 {
		return BatchSummary{}
	}

	var qualitySum, timeSum float64
	succeeded := 0
	issueCounts := make(map[string]int)
	for _, r := range valid {
		qualitySum += r.Quality.OverallScore
		timeSum += r.Basic.GenerationTime
		if r.Basic.Success {
			succeeded++
		}
		for _, issue := range r.Content.Issues {
			issueCounts[issue.Type]++
		}
	}

	tallies := make([]IssueTally, 0, len(issueCounts))
	for issueType, count := range issueCounts {
		tallies = append(tallies, IssueTally{Type: issueType, Count: count})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Count != tallies[j].Count {
			return tallies[i].Count > tallies[j].Count
		}
		return tallies[i].Type < tallies[j].Type
	})
	if len(tallies) > 5 {
		tallies = tallies[:5]
	}

	n := float64(len(valid))
	return BatchSummary{
		AverageQuality:        float64(int(qualitySum/n*10+0.5)) / 10,
		AverageGenerationTime: float64(int(timeSum/n + 0.5)),
		TotalGenerations:      len(valid),
		SuccessRate:           int(float64(succeeded)/n*100 + 0.5),
		CommonIssues:          tallies,
	}
}
