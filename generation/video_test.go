package generation

import (
	"strings"
	"testing"
)

func TestBuildVideoPrompt(t *testing.T) {
	motion := &MotionAnalysis{
		Motion:   "model turns slowly",
		Camera:   "slow push in",
		Lighting: "steady soft light",
	}

	got := BuildVideoPrompt("show the dress flowing", motion)
	for _, want := range []string{"show the dress flowing", "Motion: model turns slowly", "Camera: slow push in", "Lighting: steady soft light"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt %q missing %q", got, want)
		}
	}
	if !strings.HasPrefix(got, "show the dress flowing") {
		t.Errorf("user prompt should lead, got %q", got)
	}
}

func TestBuildVideoPromptDefaults(t *testing.T) {
	if got := BuildVideoPrompt("  ", nil); got == "" {
		t.Error("empty inputs should still produce a usable default prompt")
	}

	got := BuildVideoPrompt("", &MotionAnalysis{Camera: "static"})
	if !strings.Contains(got, "Camera: static") {
		t.Errorf("prompt %q should carry the analyzed camera direction", got)
	}
	if strings.Contains(got, "Motion:") || strings.Contains(got, "Lighting:") {
		t.Errorf("empty analysis fields should be omitted, got %q", got)
	}
}
