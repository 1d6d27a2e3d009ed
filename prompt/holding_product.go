package prompt

import (
	"fmt"
	"strings"

	"github.com/raushankrgupta/fitly-ai/models"
)

// Section builders for the character-holding-product use case: the character
// stays the primary subject while presenting the product in hand, the layout
// used for affiliate and marketing content.

func buildHoldingImageReference(b *build) []string {
	return []string{
		"[CHARACTER HOLDING PRODUCT COMPOSITION]",
		"Purpose: Character prominently holding or presenting product for affiliate/marketing content",
		"Focus: Character (60%) + Product in hand (40%)",
		"",
		"[IMAGE REFERENCE MAPPING]",
		"Image 1 (First Upload) = CHARACTER REFERENCE - Person to feature",
		"Image 2 (Second Upload) = PRODUCT REFERENCE - Item to hold/present",
		"CRITICAL: Character holds/presents product from Image 2 in hand or elevated position.",
	}
}

func buildHoldingCharacter(b *build) []string {
	character := b.character
	lines := []string{
		"=== CHARACTER (PRIMARY SUBJECT - 60% of focus) ===",
		"The character is the MAIN SUBJECT - prominently featured",
		"",
		"Character Description (KEEP FROM IMAGE 1):",
	}

	if age := deref(character.Age); age != "" {
		lines = append(lines, fmt.Sprintf("- Age: %s years old", age))
	}
	if gender := deref(character.Gender); gender != "" {
		lines = append(lines, fmt.Sprintf("- Gender: %s", gender))
	}
	if skin := deref(character.SkinTone); skin != "" {
		lines = append(lines, fmt.Sprintf("- Skin tone: %s", skin))
	}
	if desc := hairDescription(character.Hair); desc != "" {
		lines = append(lines, fmt.Sprintf("- Hair: %s", desc))
	}
	if features := deref(character.FacialFeatures); features != "" {
		lines = append(lines, fmt.Sprintf("- Facial features: %s", features))
	}
	lines = append(lines, "- SAME face, body, and overall appearance as Image 1")

	lines = append(lines,
		"",
		"POSE & POSITIONING:",
		"- Standing or seated, natural comfortable position",
		"- Hands/arms prominently HOLDING or PRESENTING the product",
		"- Product visible and well-placed in character's hands or near body",
		"- Character looking at product OR toward camera with confident/engaging expression",
		"- Posture: Open, approachable, product-focused pose",
		"- Full body or close-up focusing on the hands holding product",
		"",
		"EXPRESSION & ENGAGEMENT:",
		"- Expression: Engaged, interested, possibly smiling or intrigued",
		"- Focus: Looking at product or making eye contact while holding it",
		"- Energy: Positive, confident, product-presentation energy",
		"- NOT looking away from or ignoring the product",
	)
	return lines
}

func buildHoldingProduct(b *build) []string {
	product := b.product
	lines := []string{
		"=== PRODUCT (SECONDARY FOCUS - IN HANDS) ===",
		"The product is PROMINENTLY VISIBLE, held or presented by character",
		"",
	}

	if garment := deref(product.GarmentType); garment != "" {
		lines = append(lines, fmt.Sprintf("Garment: %s", garment))
	} else if desc := deref(product.DetailedDescription); desc != "" {
		lines = append(lines, fmt.Sprintf("Item: %s", desc))
	}
	if style := deref(product.StyleCategory); style != "" {
		lines = append(lines, fmt.Sprintf("Style: %s", style))
	}

	lines = append(lines, "", "COLORS (Clear identification):")
	if primary := deref(product.PrimaryColor); primary != "" {
		lines = append(lines, fmt.Sprintf("  Primary: %s", primary))
	}
	if secondary := deref(product.SecondaryColor); secondary != "" {
		lines = append(lines, fmt.Sprintf("  Secondary: %s", secondary))
	}

	lines = append(lines, "", "MATERIAL & TEXTURE:")
	if fabric := deref(product.FabricType); fabric != "" {
		lines = append(lines,
			fmt.Sprintf("  Fabric: %s", fabric),
			fmt.Sprintf("  Appearance: Realistic %s texture", strings.ToLower(fabric)),
		)
	}

	lines = append(lines, "", "PATTERN & DESIGN:")
	if pattern := deref(product.Pattern); pattern != "" {
		lines = append(lines, fmt.Sprintf("  Pattern: %s", pattern))
	} else {
		lines = append(lines, "  Pattern: Solid color")
	}
	if details := deref(product.KeyDetails); details != "" {
		lines = append(lines, fmt.Sprintf("  Key details: %s", details))
	}

	lines = append(lines,
		"",
		"HOW PRODUCT IS PRESENTED:",
		"- Character HOLDS product clearly visible to camera",
		"- Hand position: Comfortable natural holding position",
		"- Product orientation: Clearly visible, not hidden or folded",
		"- Angle: Best angle to show product details",
	)
	switch b.req.ProductFocus {
	case FocusFullOutfit:
		lines = append(lines, "- Display: Garment held up, draped on arms, or worn by character")
	case FocusTop:
		lines = append(lines, "- Display: Top piece held or draped, clearly visible")
	case FocusBottom:
		lines = append(lines, "- Display: Bottom piece held up, folded visible in hands")
	case FocusShoes:
		lines = append(lines, "- Display: Shoes held in hands showing front/side view")
	case FocusAccessories:
		lines = append(lines, "- Display: Accessory prominently held or displayed near face/chest")
	}
	lines = append(lines, "- Lighting on product: Well-lit, colors true-to-life")

	return lines
}

func buildHandsPlacement(b *build) []string {
	return []string{
		"=== HANDS & PRODUCT PLACEMENT ===",
		"- Hands: Natural, well-shaped, clearly visible",
		"- Hand position: Comfortable holding or presenting pose",
		"- Fingers: Visible but not distracting, natural posture",
		"- Product placement: Center-right or slightly off-center for visual balance",
		"- Hand-product relationship: Product clearly held/presented by character",
	}
}

func buildHoldingStyling(b *build) []string {
	selected := b.req.Selected
	lines := []string{"=== STYLING & APPEARANCE ==="}

	if selected.Hairstyle != "" && selected.Hairstyle != "same" {
		lines = append(lines, fmt.Sprintf("Hairstyle: %s", b.suggestion(models.CategoryHairstyle, selected.Hairstyle)))
	} else {
		lines = append(lines, "Hairstyle: Keep from Image 1 reference")
	}

	if selected.Makeup != "" {
		lines = append(lines, fmt.Sprintf("Makeup: %s", b.suggestion(models.CategoryMakeup, selected.Makeup)))
	} else {
		lines = append(lines, "Makeup: Natural, fresh, professional look - enhances but not overpowering")
	}

	if len(selected.Accessories) > 0 {
		lines = append(lines,
			"",
			"Accessories: Minimal - does not compete with held product",
			fmt.Sprintf("- Featured: %s", strings.Join(selected.Accessories, ", ")),
		)
	}
	return lines
}

func buildHoldingChecklist(b *build) []string {
	return []string{
		"=== QUALITY & TECHNICAL SPECS ===",
		"Resolution: 8K ultra high quality",
		"Style: Professional marketing/affiliate photography",
		"Finish: Magazine-quality, retail-ready",
		"Details: Ultra-detailed, sharp focus, excellent clarity",
		"Aesthetic: Clean, professional, product-focused marketing image",
	}
}
