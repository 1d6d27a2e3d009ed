package analysis

import "testing"

func TestAnalyzeStyleFirstMatchWins(t *testing.T) {
	// "photo" (realistic) appears before "editorial" (fashion) in the rule
	// order, so realistic wins even though both match.
	report := analyzeStyle("photo of an editorial outfit")
	if report.Primary != "realistic" {
		t.Errorf("primary style = %q, want %q (rule order)", report.Primary, "realistic")
	}

	report = analyzeStyle("editorial vogue spread")
	if report.Primary != "fashion" {
		t.Errorf("primary style = %q, want %q", report.Primary, "fashion")
	}
}

func TestAnalyzeStyleMoodAndColors(t *testing.T) {
	report := analyzeStyle("dark dramatic portrait in navy and gold")
	if report.Mood != "moody" {
		t.Errorf("mood = %q, want %q", report.Mood, "moody")
	}
	if report.Composition != "portrait" {
		t.Errorf("composition = %q, want %q", report.Composition, "portrait")
	}
	wantColors := map[string]bool{"navy": true, "gold": true}
	for _, c := range report.Colors {
		if !wantColors[c] {
			t.Errorf("unexpected color %q", c)
		}
		delete(wantColors, c)
	}
	if len(wantColors) != 0 {
		t.Errorf("missing colors: %v", wantColors)
	}
}

func TestAnalyzeStyleEmptyPrompt(t *testing.T) {
	report := analyzeStyle("")
	if report.Primary != "unknown" || report.Mood != "neutral" {
		t.Errorf("empty prompt style = %+v", report)
	}
}

func TestDetectSubjects(t *testing.T) {
	subjects := detectSubjects("a woman in a dress, studio background")
	found := map[string]bool{}
	for _, s := range subjects {
		found[s] = true
	}
	for _, want := range []string{"woman", "dress", "studio", "background"} {
		if !found[want] {
			t.Errorf("subject %q not detected in %v", want, subjects)
		}
	}

	if got := detectSubjects("zzz qqq"); len(got) != 1 || got[0] != "abstract" {
		t.Errorf("no-keyword prompt = %v, want [abstract]", got)
	}
}

func TestDetectIssues(t *testing.T) {
	issues := detectIssues(Subject{Prompt: "x", Success: false, GenerationTime: 90, Cost: 0.5})
	types := map[string]bool{}
	for _, issue := range issues {
		types[issue.Type] = true
	}
	for _, want := range []string{"performance", "cost", "prompt", "generation"} {
		if !types[want] {
			t.Errorf("expected issue type %q in %v", want, types)
		}
	}

	if issues := detectIssues(Subject{Prompt: "a detailed studio fashion photograph", Success: true, GenerationTime: 5}); len(issues) != 0 {
		t.Errorf("clean subject produced issues: %v", issues)
	}
}
