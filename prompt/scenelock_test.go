package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/raushankrgupta/fitly-ai/models"
)

func sceneBuild(source OptionSource, selected models.SelectedOptions, lang string) *build {
	return &build{
		ctx:    context.Background(),
		source: source,
		req:    Request{Selected: selected},
		lang:   lang,
	}
}

func TestSceneLockOverrideWinsOverEverything(t *testing.T) {
	source := fakeSource{
		"scene:studio": {
			Category:          models.CategoryScene,
			Value:             "studio",
			SceneLockedPrompt: "Canonical studio lock",
			PromptSuggestion:  "Professional studio",
		},
	}
	b := sceneBuild(source, models.SelectedOptions{
		Scene:               "studio",
		SceneOverridePrompt: "keep the red brick wall from shot 1",
		DisableSceneLock:    true,
	}, "en")

	got := b.sceneLockDirective("studio")
	want := "Scene Locked Prompt (OVERRIDE): keep the red brick wall from shot 1"
	if got != want {
		t.Errorf("directive = %q, want %q", got, want)
	}
}

func TestSceneLockDisabledUsesPlainSuggestion(t *testing.T) {
	source := fakeSource{
		"scene:studio": {
			Category:          models.CategoryScene,
			Value:             "studio",
			SceneLockedPrompt: "Canonical studio lock",
			PromptSuggestion:  "Professional studio",
		},
	}
	b := sceneBuild(source, models.SelectedOptions{Scene: "studio", DisableSceneLock: true}, "en")

	if got := b.sceneLockDirective("studio"); got != "Professional studio" {
		t.Errorf("directive = %q, want plain suggestion", got)
	}
}

func TestSceneLockOptionLevelDisable(t *testing.T) {
	off := false
	source := fakeSource{
		"scene:cafe": {
			Category:          models.CategoryScene,
			Value:             "cafe",
			UseSceneLock:      &off,
			SceneLockedPrompt: "Canonical cafe lock",
			PromptSuggestion:  "Cozy corner cafe",
		},
	}
	b := sceneBuild(source, models.SelectedOptions{Scene: "cafe"}, "en")

	if got := b.sceneLockDirective("cafe"); got != "Cozy corner cafe" {
		t.Errorf("directive = %q, want plain suggestion when option disables the lock", got)
	}
}

func TestSceneLockCanonicalPrompt(t *testing.T) {
	source := fakeSource{
		"scene:studio": {
			Category:            models.CategoryScene,
			Value:               "studio",
			SceneLockedPrompt:   "White cyclorama, fixed camera position",
			SceneLockedPromptVi: "Phông trắng, vị trí máy cố định",
		},
	}

	b := sceneBuild(source, models.SelectedOptions{Scene: "studio"}, "en")
	if got := b.sceneLockDirective("studio"); got != "Scene Locked Prompt: White cyclorama, fixed camera position" {
		t.Errorf("en directive = %q", got)
	}

	b = sceneBuild(source, models.SelectedOptions{Scene: "studio"}, "vi")
	if got := b.sceneLockDirective("studio"); got != "Scene Locked Prompt: Phông trắng, vị trí máy cố định" {
		t.Errorf("vi directive = %q", got)
	}
}

func TestSceneLockDerivedFromTechnicalDetails(t *testing.T) {
	// No catalog entry at all: the directive is derived from the fallback
	// technical details table plus the consistency rules.
	b := sceneBuild(fakeSource{}, models.SelectedOptions{Scene: "studio"}, "en")

	got := b.sceneLockDirective("studio")
	if !strings.HasPrefix(got, "Scene Locked Prompt: studio. Fixed technical details: ") {
		t.Fatalf("directive = %q", got)
	}
	for _, want := range []string{
		"background: white seamless paper",
		"floor: reflective",
		"space: 10x10 feet",
		"Consistency rules: Keep backdrop structure and geometry unchanged in every generation",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("directive missing %q:\n%s", want, got)
		}
	}
}

func TestSceneLockUnknownSceneNoDetails(t *testing.T) {
	b := sceneBuild(fakeSource{}, models.SelectedOptions{Scene: "moon-base"}, "en")

	got := b.sceneLockDirective("moon-base")
	if !strings.HasPrefix(got, "Scene Locked Prompt: moon-base. Consistency rules: ") {
		t.Errorf("directive = %q", got)
	}
	if strings.Contains(got, "Fixed technical details") {
		t.Errorf("unexpected technical details for unknown scene: %q", got)
	}
}
