package prompt

import (
	"fmt"
	"strings"

	"github.com/raushankrgupta/fitly-ai/models"
)

// Consistency rules appended to every derived scene lock. They keep the
// backdrop stable when the same flow generates multiple candidate images.
var sceneConsistencyRules = []string{
	"Keep backdrop structure and geometry unchanged in every generation",
	"Keep floor material and color relationship with backdrop consistent",
	"Keep prop layout and spacing consistent; do not introduce new dominant objects",
	"Keep camera-to-subject distance and horizon perspective stable",
}

// sceneLockDirective builds the locked scene text for a scene value.
// Precedence: request override, then an explicit disable (plain suggestion,
// no lock), then the option's canonical locked prompt, then a lock derived
// from the suggestion plus technical details and consistency rules.
func (b *build) sceneLockDirective(sceneValue string) string {
	if sceneValue == "" {
		return ""
	}

	if override := strings.TrimSpace(b.req.Selected.SceneOverridePrompt); override != "" {
		return fmt.Sprintf("Scene Locked Prompt (OVERRIDE): %s", override)
	}

	opt, found := b.source.Lookup(b.ctx, models.CategoryScene, sceneValue)
	if !found {
		opt = nil
	}

	disabled := b.req.Selected.DisableSceneLock
	if opt != nil && opt.UseSceneLock != nil && !*opt.UseSceneLock {
		disabled = true
	}
	if disabled {
		if opt != nil {
			if s := strings.TrimSpace(opt.PromptSuggestion); s != "" {
				return s
			}
		}
		return sceneValue
	}

	if canonical := b.canonicalSceneLock(opt); canonical != "" {
		return fmt.Sprintf("Scene Locked Prompt: %s", canonical)
	}

	suggestion := b.sceneSuggestion(opt, sceneValue)
	details := b.technicalDetails(models.CategoryScene, sceneValue)
	rules := strings.Join(sceneConsistencyRules, "; ")

	if len(details) > 0 {
		parts := make([]string, 0, len(details))
		for _, detail := range details {
			parts = append(parts, fmt.Sprintf("%s: %s", detail.Key, detail.Value))
		}
		return fmt.Sprintf("Scene Locked Prompt: %s. Fixed technical details: %s. Consistency rules: %s.",
			suggestion, strings.Join(parts, ", "), rules)
	}
	return fmt.Sprintf("Scene Locked Prompt: %s. Consistency rules: %s.", suggestion, rules)
}

// canonicalSceneLock returns the option's locked prompt in the preferred
// language, falling back to the other language before giving up.
func (b *build) canonicalSceneLock(opt *models.Option) string {
	if opt == nil {
		return ""
	}
	en := strings.TrimSpace(opt.SceneLockedPrompt)
	vi := strings.TrimSpace(opt.SceneLockedPromptVi)
	if b.lang == "vi" {
		if vi != "" {
			return vi
		}
		return en
	}
	if en != "" {
		return en
	}
	return vi
}

func (b *build) sceneSuggestion(opt *models.Option, sceneValue string) string {
	if opt != nil {
		en := strings.TrimSpace(opt.PromptSuggestion)
		vi := strings.TrimSpace(opt.PromptSuggestionVi)
		if b.lang == "vi" {
			if vi != "" {
				return vi
			}
			if en != "" {
				return en
			}
		} else {
			if en != "" {
				return en
			}
			if vi != "" {
				return vi
			}
		}
	}
	return sceneValue
}
