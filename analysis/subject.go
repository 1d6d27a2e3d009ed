package analysis

import "time"

// Subject is the artifact being analyzed: one generated image together with
// the prompt and bookkeeping that produced it.
type Subject struct {
	ID             string    `json:"id"`
	Prompt         string    `json:"prompt"`
	NegativePrompt string    `json:"negative_prompt,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	Provider       string    `json:"provider,omitempty"`
	GenerationTime float64   `json:"generation_time,omitempty"` // seconds
	FileSize       int64     `json:"file_size,omitempty"`
	Width          int       `json:"width,omitempty"`
	Height         int       `json:"height,omitempty"`
	Format         string    `json:"format,omitempty"`
	Cost           float64   `json:"cost,omitempty"`
	Success        bool      `json:"success"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// BasicInfo mirrors the subject's locally available facts.
type BasicInfo struct {
	ID             string    `json:"id"`
	FileSize       int64     `json:"file_size"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Format         string    `json:"format"`
	GenerationTime float64   `json:"generation_time"`
	Provider       string    `json:"provider"`
	Cost           float64   `json:"cost"`
	Success        bool      `json:"success"`
	CreatedAt      time.Time `json:"created_at"`
}

// PromptReport summarizes the prompt text itself.
type PromptReport struct {
	Length            int  `json:"length"`
	WordCount         int  `json:"word_count"`
	HasNegativePrompt bool `json:"has_negative_prompt"`
}

// StyleReport is the keyword-derived style classification.
type StyleReport struct {
	Primary     string   `json:"primary"`
	Mood        string   `json:"mood"`
	Colors      []string `json:"colors"`
	Composition string   `json:"composition"`
}

// Issue is one detected problem with the generation or its prompt.
type Issue struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

// ContentReport is the locally computed content analysis, shared by every
// provider and the fallback.
type ContentReport struct {
	PromptAnalysis PromptReport `json:"prompt_analysis"`
	Subjects       []string     `json:"subjects"`
	Style          StyleReport  `json:"style"`
	Issues         []Issue      `json:"issues"`
	Readability    float64      `json:"readability"`
	Specificity    float64      `json:"specificity"`
	Caption        string       `json:"caption,omitempty"`
	Objects        []string     `json:"objects,omitempty"`
	Labels         []string     `json:"labels,omitempty"`
}

// QualityCriteria are the four scored axes, each 1-10.
type QualityCriteria struct {
	TechnicalQuality float64 `json:"technical_quality"`
	AestheticAppeal  float64 `json:"aesthetic_appeal"`
	PromptAdherence  float64 `json:"prompt_adherence"`
	PracticalUtility float64 `json:"practical_utility"`
}

// QualityReport carries the overall 1-10 score and its letter grade.
type QualityReport struct {
	OverallScore float64         `json:"overall_score"`
	Criteria     QualityCriteria `json:"criteria"`
	Feedback     string          `json:"feedback"`
	Grade        string          `json:"grade"`
}

// Suggestion is one actionable improvement tip attached to a result.
type Suggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Result is the uniform analysis envelope. Every provider and the fallback
// return this same shape so downstream code needs no provider-specific
// handling.
type Result struct {
	Basic       BasicInfo     `json:"basic"`
	Content     ContentReport `json:"content"`
	Quality     QualityReport `json:"quality"`
	Suggestions []Suggestion  `json:"suggestions"`
	Provider    string        `json:"provider"`
	CreatedAt   time.Time     `json:"created_at"`
}

func basicInfo(subject Subject) BasicInfo {
	return BasicInfo{
		ID:             subject.ID,
		FileSize:       subject.FileSize,
		Width:          subject.Width,
		Height:         subject.Height,
		Format:         subject.Format,
		GenerationTime: subject.GenerationTime,
		Provider:       subject.Provider,
		Cost:           subject.Cost,
		Success:        subject.Success,
		CreatedAt:      subject.CreatedAt,
	}
}
