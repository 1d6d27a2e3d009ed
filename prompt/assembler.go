package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/raushankrgupta/fitly-ai/models"
)

// Use cases supported by the assembler. The use case decides which prompt
// sections are emitted and in what order.
const (
	UseCaseChangeClothes  = "change-clothes"
	UseCaseHoldingProduct = "character-holding-product"
	UseCaseEcommerce      = "ecommerce-product"
	UseCaseSocialMedia    = "social-media"
	UseCaseEditorial      = "fashion-editorial"
	UseCaseLifestyle      = "lifestyle-scene"
	UseCaseBeforeAfter    = "before-after"
)

// Product focus values.
const (
	FocusFullOutfit   = "full-outfit"
	FocusTop          = "top"
	FocusBottom       = "bottom"
	FocusShoes        = "shoes"
	FocusAccessories  = "accessories"
	FocusSpecificItem = "specific-item"
)

// OptionSource resolves (category, value) to a catalog option. Lookups are
// read-only; a miss is normal for free-text custom entries.
type OptionSource interface {
	Lookup(ctx context.Context, category, value string) (*models.Option, bool)
}

// Request is everything the assembler needs to build one prompt.
type Request struct {
	Character    *models.CharacterAnalysis
	Product      *models.ProductAnalysis
	Selected     models.SelectedOptions
	UseCase      string
	ProductFocus string
	Language     string
}

// Section is one named block of the assembled prompt. Key is stable across
// builds and sections render in their declared order.
type Section struct {
	Key   string   `json:"key"`
	Lines []string `json:"lines"`
}

// Result is the assembled prompt pair plus the section breakdown.
type Result struct {
	Prompt         string    `json:"prompt"`
	NegativePrompt string    `json:"negative_prompt"`
	Sections       []Section `json:"-"`
}

// Assembler deterministically turns analyses plus selected options into a
// structured prompt. It holds no state beyond the injected option source.
type Assembler struct {
	source OptionSource
}

func NewAssembler(source OptionSource) *Assembler {
	return &Assembler{source: source}
}

// sectionBuilder pairs a stable section key with its line builder. A builder
// returning no lines drops the section entirely.
type sectionBuilder struct {
	key   string
	build func(b *build) []string
}

// Declared section orders per use case. Order is significant: generation
// providers weight instructions near the end more heavily, so the execution
// checklist always comes last.
var useCaseSections = map[string][]sectionBuilder{
	UseCaseChangeClothes: {
		{"image-reference", buildImageReference},
		{"keep-character", buildKeepCharacter},
		{"change-clothing", buildChangeClothing},
		{"hair-makeup", buildHairMakeup},
		{"accessories", buildAccessories},
		{"footwear", buildFootwear},
		{"bottom-wear", buildBottomWear},
		{"garment-application", buildGarmentApplication},
		{"scene", buildSceneSection},
		{"photography", buildPhotography},
		{"execution-checklist", buildExecutionChecklist},
	},
	UseCaseHoldingProduct: {
		{"image-reference", buildHoldingImageReference},
		{"character", buildHoldingCharacter},
		{"product", buildHoldingProduct},
		{"hands-placement", buildHandsPlacement},
		{"styling", buildHoldingStyling},
		{"scene", buildSceneSection},
		{"photography", buildPhotography},
		{"execution-checklist", buildHoldingChecklist},
	},
	UseCaseEcommerce: {
		{"product", buildEcommerceProduct},
		{"background", buildEcommerceBackground},
		{"display", buildEcommerceDisplay},
		{"lighting-specs", buildEcommerceLighting},
		{"restrictions", buildEcommerceRestrictions},
	},
	UseCaseSocialMedia: {
		{"character-energy", buildSocialCharacter},
		{"styling", buildSocialStyling},
		{"scene", buildSceneSection},
		{"photography-style", buildSocialPhotography},
		{"detail-hooks", buildSocialDetails},
		{"quality", buildQualityLine},
	},
	UseCaseEditorial: {
		{"character-styling", buildEditorialCharacter},
		{"art-direction", buildEditorialArtDirection},
		{"scene", buildSceneSection},
		{"photography-direction", buildEditorialDirection},
		{"quality", buildQualityLine},
	},
	UseCaseLifestyle: {
		{"character-moment", buildLifestyleCharacter},
		{"outfit", buildLifestyleOutfit},
		{"scene", buildSceneSection},
		{"atmosphere", buildLifestyleAtmosphere},
		{"quality", buildQualityLine},
	},
	UseCaseBeforeAfter: {
		{"image-reference", buildImageReference},
		{"keep-character", buildKeepCharacter},
		{"change-clothing", buildChangeClothing},
		{"split-layout", buildBeforeAfterLayout},
		{"scene", buildSceneSection},
		{"execution-checklist", buildExecutionChecklist},
	},
}

// build is the per-call context shared by the section builders.
type build struct {
	ctx       context.Context
	source    OptionSource
	req       Request
	lang      string
	character models.CharacterAnalysis
	product   models.ProductAnalysis
}

// Build assembles the prompt and negative prompt for the request. It is a
// pure function of its inputs plus read-only catalog lookups.
func (a *Assembler) Build(ctx context.Context, req Request) (*Result, error) {
	useCase := req.UseCase
	if useCase == "" {
		useCase = UseCaseChangeClothes
	}
	builders, ok := useCaseSections[useCase]
	if !ok {
		return nil, fmt.Errorf("unknown use case %q", useCase)
	}

	if req.Product == nil {
		return nil, fmt.Errorf("product analysis is required")
	}
	if useCase != UseCaseEcommerce && req.Character == nil {
		return nil, fmt.Errorf("character analysis is required for use case %s", useCase)
	}

	b := &build{
		ctx:     ctx,
		source:  a.source,
		req:     req,
		lang:    NormalizeLanguage(req.Language),
		product: *req.Product,
	}
	if req.Character != nil {
		b.character = *req.Character
	}

	var sections []Section
	for _, sb := range builders {
		lines := sb.build(b)
		if len(lines) == 0 {
			continue
		}
		sections = append(sections, Section{Key: sb.key, Lines: lines})
	}

	if custom := strings.TrimSpace(req.Selected.CustomPrompt); custom != "" {
		sections = append(sections, Section{Key: "custom-instructions", Lines: []string{custom}})
	}

	positive := renderSections(sections)
	if strings.TrimSpace(positive) == "" {
		// Downstream generation treats an empty prompt as fatal, so it is
		// normalized to an error here instead of being passed along.
		return nil, fmt.Errorf("assembled prompt is empty for use case %s", useCase)
	}

	negative := buildNegativePrompt(req.Product, req.Selected)
	if extra := strings.TrimSpace(req.Selected.NegativePrompt); extra != "" {
		negative = negative + ", " + extra
	}

	return &Result{
		Prompt:         positive,
		NegativePrompt: negative,
		Sections:       sections,
	}, nil
}

func renderSections(sections []Section) string {
	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(strings.Join(section.Lines, "\n"))
	}
	return sb.String()
}

// suggestion resolves an option value to its prompt suggestion fragment,
// preferring the Vietnamese text when the request asks for it. Free-text
// values with no catalog entry fall back to their (translated) display text,
// never to an empty string.
func (b *build) suggestion(category, value string) string {
	if opt, ok := b.source.Lookup(b.ctx, category, value); ok && opt != nil {
		if b.lang == "vi" {
			if s := strings.TrimSpace(opt.PromptSuggestionVi); s != "" {
				return s
			}
		}
		if s := strings.TrimSpace(opt.PromptSuggestion); s != "" {
			return s
		}
	}
	return TranslateOptionLabel(category, value, b.lang)
}

// technicalDetails returns the option's technical details, or the built-in
// fallback table for the category/value. Pairs render in a fixed order.
func (b *build) technicalDetails(category, value string) []kv {
	if opt, ok := b.source.Lookup(b.ctx, category, value); ok && opt != nil && len(opt.TechnicalDetails) > 0 {
		return sortedPairs(opt.TechnicalDetails)
	}
	return fallbackTechnicalDetails(category, value)
}

// NormalizeLanguage reduces a BCP-47-ish tag to the two supported languages.
func NormalizeLanguage(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if lang == "vi" {
		return "vi"
	}
	return "en"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
