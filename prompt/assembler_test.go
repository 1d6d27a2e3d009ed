package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/raushankrgupta/fitly-ai/models"
)

// fakeSource serves options keyed by "category:value".
type fakeSource map[string]*models.Option

func (f fakeSource) Lookup(ctx context.Context, category, value string) (*models.Option, bool) {
	opt, ok := f[category+":"+value]
	return opt, ok
}

func strptr(s string) *string { return &s }

func minimalRequest() Request {
	return Request{
		Character: &models.CharacterAnalysis{},
		Product:   &models.ProductAnalysis{},
		UseCase:   UseCaseChangeClothes,
	}
}

func TestBuildMinimalAnalysesProducesPrompt(t *testing.T) {
	assembler := NewAssembler(fakeSource{})

	result, err := assembler.Build(context.Background(), minimalRequest())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if strings.TrimSpace(result.Prompt) == "" {
		t.Fatal("prompt is empty for minimal analyses")
	}
	if result.NegativePrompt == "" {
		t.Fatal("negative prompt is empty")
	}

	// Defaults fill in when the product analysis carries nothing.
	for _, want := range []string{
		"Pattern: Solid color",
		"Coverage: As shown in product image",
		"Material: High-quality as shown in Image 2",
		"Details: As shown in Image 2 reference",
	} {
		if !strings.Contains(result.Prompt, want) {
			t.Errorf("prompt missing default %q", want)
		}
	}
}

func TestBuildChangeClothesSectionOrder(t *testing.T) {
	assembler := NewAssembler(fakeSource{})
	req := minimalRequest()
	req.Selected = models.SelectedOptions{
		Scene:       "studio",
		Lighting:    "soft-diffused",
		Shoes:       "white-sneakers",
		Bottom:      "jeans",
		Accessories: []string{"pearl necklace"},
	}

	result, err := assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	wantOrder := []string{
		"image-reference",
		"keep-character",
		"change-clothing",
		"hair-makeup",
		"accessories",
		"footwear",
		"bottom-wear",
		"garment-application",
		"scene",
		"photography",
		"execution-checklist",
	}
	if len(result.Sections) != len(wantOrder) {
		t.Fatalf("got %d sections, want %d: %+v", len(result.Sections), len(wantOrder), sectionKeys(result.Sections))
	}
	for i, key := range wantOrder {
		if result.Sections[i].Key != key {
			t.Errorf("section %d = %q, want %q", i, result.Sections[i].Key, key)
		}
	}

	// Header ordering inside the rendered prompt.
	keepIdx := strings.Index(result.Prompt, "=== KEEP CHARACTER UNCHANGED (CRITICAL) ===")
	changeIdx := strings.Index(result.Prompt, "=== CHANGE CLOTHING TO (FROM IMAGE 2) ===")
	checklistIdx := strings.Index(result.Prompt, "=== EXECUTION CHECKLIST ===")
	if keepIdx < 0 || changeIdx < 0 || checklistIdx < 0 {
		t.Fatal("prompt missing one of the pinned headers")
	}
	if !(keepIdx < changeIdx && changeIdx < checklistIdx) {
		t.Errorf("pinned headers out of order: keep=%d change=%d checklist=%d", keepIdx, changeIdx, checklistIdx)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	source := fakeSource{
		"scene:studio": {
			Category:         models.CategoryScene,
			Value:            "studio",
			PromptSuggestion: "Professional studio with seamless backdrop",
			TechnicalDetails: map[string]string{"space": "10x10 feet", "background": "white seamless paper", "floor": "reflective"},
		},
	}
	assembler := NewAssembler(source)
	req := minimalRequest()
	req.Character = &models.CharacterAnalysis{Age: strptr("25"), Gender: strptr("female")}
	req.Product = &models.ProductAnalysis{GarmentType: strptr("summer dress"), PrimaryColor: strptr("red")}
	req.Selected = models.SelectedOptions{Scene: "studio", Lighting: "soft-diffused", Mood: "elegant"}

	first, err := assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := assembler.Build(context.Background(), req)
		if err != nil {
			t.Fatalf("rebuild failed: %v", err)
		}
		if again.Prompt != first.Prompt || again.NegativePrompt != first.NegativePrompt {
			t.Fatalf("build %d differs from first build", i)
		}
	}
}

func TestBuildUsesCatalogSuggestions(t *testing.T) {
	source := fakeSource{
		"shoes:white-sneakers": {
			Category:         models.CategoryShoes,
			Value:            "white-sneakers",
			PromptSuggestion: "Clean white leather sneakers with minimal branding",
		},
	}
	assembler := NewAssembler(source)
	req := minimalRequest()
	req.Selected = models.SelectedOptions{Shoes: "white-sneakers"}

	result, err := assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(result.Prompt, "Clean white leather sneakers with minimal branding") {
		t.Error("catalog prompt suggestion not spliced into prompt")
	}
	if strings.Contains(result.Prompt, "Shoes: white-sneakers") {
		t.Error("raw option value used despite catalog suggestion")
	}
}

func TestBuildFreeTextOptionFallsBackToValue(t *testing.T) {
	assembler := NewAssembler(fakeSource{})
	req := minimalRequest()
	req.Selected = models.SelectedOptions{Shoes: "hand-painted boots"}

	result, err := assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(result.Prompt, "Shoes: hand-painted boots") {
		t.Error("free-text option value not carried through verbatim")
	}
}

func TestBuildVietnameseFallback(t *testing.T) {
	assembler := NewAssembler(fakeSource{})
	req := minimalRequest()
	req.Language = "vi-VN"
	req.Selected = models.SelectedOptions{Mood: "elegant", Shoes: "hand-painted boots"}

	result, err := assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	// Known value gets the Vietnamese table entry.
	if !strings.Contains(result.Prompt, "Thanh lịch") {
		t.Error("known mood value not translated for vi request")
	}
	// Unknown value stays English, never empty.
	if !strings.Contains(result.Prompt, "hand-painted boots") {
		t.Error("untranslatable value should fall back to English text")
	}
}

func TestBuildCustomPromptAppended(t *testing.T) {
	assembler := NewAssembler(fakeSource{})
	req := minimalRequest()
	req.Selected = models.SelectedOptions{CustomPrompt: "add subtle rain on the window"}

	result, err := assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	last := result.Sections[len(result.Sections)-1]
	if last.Key != "custom-instructions" {
		t.Errorf("last section = %q, want custom-instructions", last.Key)
	}
	if !strings.HasSuffix(result.Prompt, "add subtle rain on the window") {
		t.Error("custom prompt not appended at the end")
	}
}

func TestBuildKeepsPartialHairAttributes(t *testing.T) {
	assembler := NewAssembler(fakeSource{})

	// Color only: the preservation line still renders.
	req := minimalRequest()
	req.Character = &models.CharacterAnalysis{Hair: &models.HairAttributes{Color: strptr("auburn")}}
	result, err := assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(result.Prompt, "- Hair: auburn hair, medium length") {
		t.Error("color-only hair analysis dropped from the keep-character block")
	}

	// Style only.
	req.Character = &models.CharacterAnalysis{Hair: &models.HairAttributes{Style: strptr("braided")}}
	result, err = assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(result.Prompt, "- Hair: braided style") {
		t.Error("style-only hair analysis dropped from the keep-character block")
	}

	// All attributes keep the full form.
	req.Character = &models.CharacterAnalysis{Hair: &models.HairAttributes{
		Color:  strptr("auburn"),
		Style:  strptr("wavy"),
		Length: strptr("long"),
	}}
	result, err = assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(result.Prompt, "- Hair: auburn hair, wavy style, long") {
		t.Error("full hair analysis not rendered in full")
	}

	// The holding-product character block renders partial hair too.
	req.UseCase = UseCaseHoldingProduct
	req.Character = &models.CharacterAnalysis{Hair: &models.HairAttributes{Color: strptr("auburn")}}
	result, err = assembler.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(result.Prompt, "- Hair: auburn hair") {
		t.Error("color-only hair analysis dropped from the holding-product character block")
	}
}

func TestBuildRequiredAnalyses(t *testing.T) {
	assembler := NewAssembler(fakeSource{})

	if _, err := assembler.Build(context.Background(), Request{UseCase: UseCaseChangeClothes, Product: &models.ProductAnalysis{}}); err == nil {
		t.Error("expected error when character analysis is missing")
	}
	if _, err := assembler.Build(context.Background(), Request{UseCase: UseCaseChangeClothes, Character: &models.CharacterAnalysis{}}); err == nil {
		t.Error("expected error when product analysis is missing")
	}
	// Ecommerce works without a character.
	if _, err := assembler.Build(context.Background(), Request{UseCase: UseCaseEcommerce, Product: &models.ProductAnalysis{}}); err != nil {
		t.Errorf("ecommerce build without character failed: %v", err)
	}
	if _, err := assembler.Build(context.Background(), Request{UseCase: "made-up", Character: &models.CharacterAnalysis{}, Product: &models.ProductAnalysis{}}); err == nil {
		t.Error("expected error for unknown use case")
	}
}

func TestBuildAllUseCasesNonEmpty(t *testing.T) {
	assembler := NewAssembler(fakeSource{})
	for useCase := range useCaseSections {
		req := minimalRequest()
		req.UseCase = useCase
		result, err := assembler.Build(context.Background(), req)
		if err != nil {
			t.Errorf("%s: build failed: %v", useCase, err)
			continue
		}
		if strings.TrimSpace(result.Prompt) == "" {
			t.Errorf("%s: empty prompt", useCase)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"vi":    "vi",
		"vi-VN": "vi",
		"vi_VN": "vi",
		"VI":    "vi",
		"en":    "en",
		"en-US": "en",
		"":      "en",
		"fr":    "en",
	}
	for in, want := range cases {
		if got := NormalizeLanguage(in); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func sectionKeys(sections []Section) []string {
	keys := make([]string, len(sections))
	for i, s := range sections {
		keys[i] = s.Key
	}
	return keys
}
