package analysis

import "strings"

// Keyword tables for local content analysis. Rule order matters: the first
// group with any match wins, so earlier entries take precedence.

type keywordRule struct {
	name     string
	keywords []string
}

var styleRules = []keywordRule{
	{"realistic", []string{"realistic", "photorealistic", "photo", "real life"}},
	{"artistic", []string{"artistic", "painting", "illustration", "art", "drawing"}},
	{"fashion", []string{"fashion", "vogue", "editorial", "style", "outfit"}},
	{"professional", []string{"professional", "commercial", "studio", "product shot"}},
	{"creative", []string{"creative", "unique", "abstract", "experimental"}},
}

var moodRules = []keywordRule{
	{"vibrant", []string{"vibrant", "bright", "colorful", "bold"}},
	{"moody", []string{"moody", "dark", "dramatic", "mysterious"}},
	{"elegant", []string{"elegant", "sophisticated", "classy", "refined"}},
	{"casual", []string{"casual", "relaxed", "informal", "everyday"}},
	{"luxurious", []string{"luxurious", "expensive", "premium", "high-end"}},
}

var subjectKeywords = []string{
	"person", "man", "woman", "child", "model", "clothing", "dress", "shirt",
	"pants", "shoes", "accessory", "hat", "bag", "jewelry", "watch", "glasses",
	"background", "scene", "outdoor", "indoor", "studio", "product",
}

var colorKeywords = []string{
	"red", "blue", "green", "yellow", "orange", "purple", "pink", "black",
	"white", "gray", "grey", "brown", "gold", "silver", "beige", "navy",
	"teal", "maroon", "burgundy", "coral", "peach", "lavender",
}

// firstMatch scans the rules in order and returns the first whose keyword set
// has any match in the lowercased text.
func firstMatch(rules []keywordRule, text, fallback string) string {
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.name
			}
		}
	}
	return fallback
}

func analyzePromptText(prompt, negativePrompt string) PromptReport {
	return PromptReport{
		Length:            len(prompt),
		WordCount:         len(strings.Fields(prompt)),
		HasNegativePrompt: strings.TrimSpace(negativePrompt) != "",
	}
}

func detectSubjects(prompt string) []string {
	if prompt == "" {
		return []string{"unknown"}
	}
	lower := strings.ToLower(prompt)
	var detected []string
	for _, kw := range subjectKeywords {
		if strings.Contains(lower, kw) {
			detected = append(detected, kw)
		}
	}
	if len(detected) == 0 {
		return []string{"abstract"}
	}
	return detected
}

func analyzeStyle(prompt string) StyleReport {
	if prompt == "" {
		return StyleReport{Primary: "unknown", Mood: "neutral", Colors: []string{"various"}, Composition: "standard"}
	}

	lower := strings.ToLower(prompt)
	composition := "standard"
	switch {
	case strings.Contains(lower, "close-up"):
		composition = "close-up"
	case strings.Contains(lower, "full body"):
		composition = "full body"
	case strings.Contains(lower, "portrait"):
		composition = "portrait"
	}

	return StyleReport{
		Primary:     firstMatch(styleRules, lower, "standard"),
		Mood:        firstMatch(moodRules, lower, "neutral"),
		Colors:      extractColorWords(lower),
		Composition: composition,
	}
}

func extractColorWords(lowerPrompt string) []string {
	var colors []string
	for _, color := range colorKeywords {
		if strings.Contains(lowerPrompt, color) {
			colors = append(colors, color)
		}
	}
	return colors
}

func detectIssues(subject Subject) []Issue {
	var issues []Issue

	if subject.GenerationTime > 60 {
		issues = append(issues, Issue{
			Type:        "performance",
			Severity:    "medium",
			Description: "Generation took unusually long",
			Suggestion:  "Try using a faster provider or simpler prompt",
		})
	}

	if subject.Cost > 0.1 {
		issues = append(issues, Issue{
			Type:        "cost",
			Severity:    "low",
			Description: "Generation cost was higher than average",
			Suggestion:  "Consider using free tier providers for similar results",
		})
	}

	if len(subject.Prompt) < 10 {
		issues = append(issues, Issue{
			Type:        "prompt",
			Severity:    "high",
			Description: "Prompt is too short and lacks detail",
			Suggestion:  "Add more descriptive elements, style, and composition details",
		})
	}

	if !subject.Success {
		issues = append(issues, Issue{
			Type:        "generation",
			Severity:    "high",
			Description: "Generation failed",
			Suggestion:  "Check prompt for inappropriate content or try a different provider",
		})
	}

	if strings.Contains(subject.Prompt, "blurry") || strings.Contains(subject.Prompt, "low quality") {
		issues = append(issues, Issue{
			Type:        "prompt",
			Severity:    "medium",
			Description: "Prompt contains negative quality descriptors",
			Suggestion:  "Use positive language and specify desired quality",
		})
	}

	return issues
}

// calculateReadability scores 0-100; fewer words per sentence reads better.
func calculateReadability(prompt string) float64 {
	if prompt == "" {
		return 0
	}
	words := float64(len(strings.Fields(prompt)))
	sentences := 0
	for _, part := range strings.FieldsFunc(prompt, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}
	score := 100 - (words/float64(sentences))*2
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

var descriptiveWords = []string{
	"color", "style", "lighting", "composition", "mood", "texture", "detailed",
	"background", "foreground", "subject", "pose", "angle", "view", "shot",
	"portrait", "landscape", "close-up", "wide", "narrow", "sharp", "soft",
}

// calculateSpecificity scores 0-100 by counting descriptive vocabulary plus a
// length bonus.
func calculateSpecificity(prompt string) float64 {
	if prompt == "" {
		return 0
	}
	words := strings.Fields(strings.ToLower(prompt))
	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[w] = true
	}

	score := 0.0
	for _, dw := range descriptiveWords {
		if present[dw] {
			score += 10
		}
	}
	if bonus := float64(len(words)); bonus < 30 {
		score += bonus
	} else {
		score += 30
	}
	if score > 100 {
		return 100
	}
	return score
}

// contentReport assembles the full local content analysis for a subject.
func contentReport(subject Subject) ContentReport {
	return ContentReport{
		PromptAnalysis: analyzePromptText(subject.Prompt, subject.NegativePrompt),
		Subjects:       detectSubjects(subject.Prompt),
		Style:          analyzeStyle(subject.Prompt),
		Issues:         detectIssues(subject),
		Readability:    calculateReadability(subject.Prompt),
		Specificity:    calculateSpecificity(subject.Prompt),
	}
}
