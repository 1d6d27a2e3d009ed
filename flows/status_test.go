package flows

import (
	"testing"

	"github.com/raushankrgupta/fitly-ai/models"
)

func strp(s string) *string { return &s }

func TestDeriveOverallStatus(t *testing.T) {
	tests := []struct {
		name  string
		image string
		video *string
		want  string
	}{
		{"pending image is a draft", models.ImageStatusPending, nil, models.FlowStatusDraft},
		{"analyzing image", models.ImageStatusAnalyzing, nil, models.FlowStatusImageGenerating},
		{"generating image", models.ImageStatusGenerating, nil, models.FlowStatusImageGenerating},
		{"image done, no video phase", models.ImageStatusCompleted, nil, models.FlowStatusImageCompleted},
		{"image done, video not started", models.ImageStatusCompleted, strp(models.VideoStatusPending), models.FlowStatusImageCompleted},
		{"video analyzing", models.ImageStatusCompleted, strp(models.VideoStatusAnalyzing), models.FlowStatusVideoGenerating},
		{"video prompting", models.ImageStatusCompleted, strp(models.VideoStatusPrompting), models.FlowStatusVideoGenerating},
		{"video generating", models.ImageStatusCompleted, strp(models.VideoStatusGenerating), models.FlowStatusVideoGenerating},
		{"both phases done", models.ImageStatusCompleted, strp(models.VideoStatusCompleted), models.FlowStatusCompleted},
		{"image failed", models.ImageStatusFailed, nil, models.FlowStatusFailed},
		{"image failed hides video progress", models.ImageStatusFailed, strp(models.VideoStatusGenerating), models.FlowStatusFailed},
		{"video failed after image completed", models.ImageStatusCompleted, strp(models.VideoStatusFailed), models.FlowStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveOverallStatus(tt.image, tt.video); got != tt.want {
				t.Errorf("DeriveOverallStatus(%q, %v) = %q, want %q", tt.image, tt.video, got, tt.want)
			}
		})
	}
}

func TestOverallStatusOf(t *testing.T) {
	flow := &models.Flow{
		Image: models.ImagePhase{Status: models.ImageStatusCompleted},
		Video: &models.VideoPhase{Status: models.VideoStatusGenerating},
	}
	if got := OverallStatusOf(flow); got != models.FlowStatusVideoGenerating {
		t.Errorf("OverallStatusOf = %q, want %q", got, models.FlowStatusVideoGenerating)
	}
}

func TestFlowCategories(t *testing.T) {
	flow := &models.Flow{
		Image: models.ImagePhase{
			StyleOptions: &models.SelectedOptions{
				Scene:    "studio",
				Lighting: "soft-diffused",
				Mood:     "elegant",
			},
		},
	}

	got := flowCategories(flow)
	want := []string{models.CategoryScene, models.CategoryLighting, models.CategoryMood}
	if len(got) != len(want) {
		t.Fatalf("flowCategories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("flowCategories[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if cats := flowCategories(&models.Flow{}); cats != nil {
		t.Errorf("flow without style options should yield no categories, got %v", cats)
	}
}

func TestTopCategories(t *testing.T) {
	counts := map[string]int{
		"scene":        5,
		"lighting":     3,
		"mood":         3,
		"colorPalette": 1,
	}

	got := topCategories(counts, 3)
	// lighting beats mood on the alphabetical tie-break.
	want := []string{"scene", "lighting", "mood"}
	if len(got) != len(want) {
		t.Fatalf("topCategories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topCategories[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if top := topCategories(map[string]int{"scene": 1}, 3); len(top) != 1 {
		t.Errorf("topCategories with one entry = %v, want single element", top)
	}
}
