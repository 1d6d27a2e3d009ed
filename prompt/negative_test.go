package prompt

import (
	"strings"
	"testing"

	"github.com/raushankrgupta/fitly-ai/models"
)

func TestNegativePromptBaseline(t *testing.T) {
	got := buildNegativePrompt(&models.ProductAnalysis{}, models.SelectedOptions{})

	if !strings.HasPrefix(got, "changes to face, different face shape, modified body type") {
		t.Errorf("baseline should start with character-preservation terms, got %q", got[:60])
	}
	for _, want := range []string{"floating garment", "disconnected clothing", "unrealistic draping", "watermark"} {
		if !strings.Contains(got, want) {
			t.Errorf("baseline missing %q", want)
		}
	}
}

func TestNegativePromptProductSpecific(t *testing.T) {
	dress := buildNegativePrompt(&models.ProductAnalysis{GarmentType: strptr("evening dress")}, models.SelectedOptions{})
	for _, want := range []string{"torn fabric", "stained", "dirty hem"} {
		if !strings.Contains(dress, want) {
			t.Errorf("dress negatives missing %q", want)
		}
	}

	silk := buildNegativePrompt(&models.ProductAnalysis{FabricType: strptr("silk")}, models.SelectedOptions{})
	if !strings.Contains(silk, "shiny spots") {
		t.Error("silk negatives missing shiny spots")
	}

	leather := buildNegativePrompt(&models.ProductAnalysis{FabricType: strptr("leather")}, models.SelectedOptions{})
	if !strings.Contains(leather, "artificial looking") {
		t.Error("leather negatives missing artificial looking")
	}

	shoes := buildNegativePrompt(&models.ProductAnalysis{GarmentType: strptr("running shoes")}, models.SelectedOptions{})
	if !strings.Contains(shoes, "dirty soles") {
		t.Error("shoe negatives missing dirty soles")
	}
}

func TestNegativePromptSceneAndLighting(t *testing.T) {
	got := buildNegativePrompt(&models.ProductAnalysis{}, models.SelectedOptions{
		Scene:    "urban-street",
		Lighting: "dramatic-rembrandt",
	})
	for _, want := range []string{"cars", "people in background", "flat lighting", "no shadows"} {
		if !strings.Contains(got, want) {
			t.Errorf("negatives missing %q", want)
		}
	}
}

func TestNegativePromptDeduplicates(t *testing.T) {
	// "harsh shadows" is in the baseline and in the soft-diffused additions;
	// it must appear exactly once, at its first position.
	got := buildNegativePrompt(&models.ProductAnalysis{}, models.SelectedOptions{Lighting: "soft-diffused"})
	if strings.Count(got, "harsh shadows") != 1 {
		t.Errorf("harsh shadows appears %d times, want 1", strings.Count(got, "harsh shadows"))
	}
	// "overexposed" baseline vs dramatic-rembrandt addition.
	got = buildNegativePrompt(&models.ProductAnalysis{}, models.SelectedOptions{Lighting: "dramatic-rembrandt"})
	if strings.Count(got, "overexposed") != 1 {
		t.Errorf("overexposed appears %d times, want 1", strings.Count(got, "overexposed"))
	}
}

func TestGenericNegativePrompt(t *testing.T) {
	got := GenericNegativePrompt()
	if !strings.Contains(got, "blurry") || !strings.Contains(got, "pixelated") {
		t.Errorf("generic negative = %q", got)
	}
}
