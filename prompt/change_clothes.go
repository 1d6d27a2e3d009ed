package prompt

import (
	"fmt"
	"strings"

	"github.com/raushankrgupta/fitly-ai/models"
)

// Section builders for the change-clothes use case. The garment swap is the
// core product flow, so these sections carry the most explicit instructions:
// when both reference images contain a person the model tends to swap them,
// and the image reference mapping plus the keep-character block is what
// prevents that.

func buildImageReference(b *build) []string {
	return []string{
		"[IMAGE REFERENCE MAPPING]",
		"Image 1 (First Upload) = CHARACTER REFERENCE - Person to be dressed",
		"Image 2 (Second Upload) = PRODUCT/OUTFIT REFERENCE - Clothing to apply",
		"CRITICAL: Do NOT swap these images. Keep character unchanged, change clothing only.",
	}
}

func buildKeepCharacter(b *build) []string {
	character := b.character
	lines := []string{
		"=== KEEP CHARACTER UNCHANGED (CRITICAL) ===",
		"Preserve EXACTLY everything about the person from Image 1:",
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
		length := deref(character.Hair.Length)
		if length == "" {
			length = "medium length"
		}
		lines = append(lines, fmt.Sprintf("- Hair: %s, %s", desc, length))
	}
	if features := deref(character.FacialFeatures); features != "" {
		lines = append(lines, fmt.Sprintf("- Facial features: %s", features))
	}

	lines = append(lines,
		"- SAME face with same expression and gaze",
		"- SAME body and body type exactly",
		"- SAME pose and position exactly as shown in Image 1",
		"- SAME pose orientation and arm position",
		"- SAME head tilt and neck angle",
		"- Do NOT change: face shape, eye color, nose, mouth, body texture",
	)
	return lines
}

// hairDescription renders whichever hair attributes the analysis found, so a
// partial analysis (color only, style only) still pins the hair down.
func hairDescription(hair *models.HairAttributes) string {
	if hair == nil {
		return ""
	}
	var parts []string
	if color := deref(hair.Color); color != "" {
		parts = append(parts, color+" hair")
	}
	if style := deref(hair.Style); style != "" {
		parts = append(parts, style+" style")
	}
	return strings.Join(parts, ", ")
}

func buildChangeClothing(b *build) []string {
	product := b.product
	lines := []string{
		"=== CHANGE CLOTHING TO (FROM IMAGE 2) ===",
		"Replace what the person is wearing with the garment specifications from Image 2.",
		"",
	}

	if garment := deref(product.GarmentType); garment != "" {
		lines = append(lines, fmt.Sprintf("GARMENT TYPE: %s", garment))
	} else if desc := deref(product.DetailedDescription); desc != "" {
		lines = append(lines, fmt.Sprintf("GARMENT: %s", desc))
	}
	if style := deref(product.StyleCategory); style != "" {
		lines = append(lines, fmt.Sprintf("Style Category: %s", style))
	}

	// Colors distinguish the target garment from whatever the character is
	// already wearing, so they always get their own block.
	lines = append(lines, "", "COLORS (Distinguishing feature for garment identification):")
	primary := deref(product.PrimaryColor)
	if primary != "" {
		lines = append(lines, fmt.Sprintf("  Primary Color: %s", primary))
	}
	if secondary := deref(product.SecondaryColor); secondary != "" {
		lines = append(lines, fmt.Sprintf("  Secondary Color: %s", secondary))
	} else if primary == "" {
		lines = append(lines, "  Color: As shown in Image 2")
	}

	lines = append(lines, "", "MATERIAL & TEXTURE:")
	if fabric := deref(product.FabricType); fabric != "" {
		lines = append(lines,
			fmt.Sprintf("  Fabric: %s", fabric),
			fmt.Sprintf("  Appearance: Realistic %s texture", strings.ToLower(fabric)),
		)
	} else {
		lines = append(lines, "  Material: High-quality as shown in Image 2")
	}

	lines = append(lines, "", "PATTERN:")
	if pattern := deref(product.Pattern); pattern != "" {
		lines = append(lines, fmt.Sprintf("  Pattern: %s", pattern))
	} else {
		lines = append(lines, "  Pattern: Solid color")
	}

	lines = append(lines, "", "FIT & SILHOUETTE:")
	if fit := deref(product.FitType); fit != "" {
		lines = append(lines, fmt.Sprintf("  Fit: %s", fit))
	}

	lines = append(lines, "", "DESIGN DETAILS:")
	if neckline := deref(product.Neckline); neckline != "" {
		lines = append(lines, fmt.Sprintf("  Neckline: %s", neckline))
	}
	if sleeves := deref(product.Sleeves); sleeves != "" {
		lines = append(lines, fmt.Sprintf("  Sleeves: %s", sleeves))
	}
	if details := deref(product.KeyDetails); details != "" {
		lines = append(lines, fmt.Sprintf("  Special Details: %s", details))
	} else {
		lines = append(lines, "  Details: As shown in Image 2 reference")
	}

	lines = append(lines, "", "LENGTH & COVERAGE:")
	if length := deref(product.Length); length != "" {
		lines = append(lines, fmt.Sprintf("  Length: %s", length))
	}
	if coverage := deref(product.Coverage); coverage != "" {
		lines = append(lines, fmt.Sprintf("  Coverage: %s", coverage))
	} else {
		lines = append(lines, "  Coverage: As shown in product image")
	}

	return lines
}

func buildHairMakeup(b *build) []string {
	selected := b.req.Selected
	lines := []string{"=== HAIRSTYLE & MAKEUP ==="}

	if selected.Hairstyle != "" && selected.Hairstyle != "same" {
		lines = append(lines, fmt.Sprintf("Hairstyle: %s", b.suggestion(models.CategoryHairstyle, selected.Hairstyle)))
	} else {
		lines = append(lines, "Hairstyle: Keep SAME as reference image - do NOT change")
	}

	if selected.Makeup != "" {
		lines = append(lines, fmt.Sprintf("Makeup: %s", b.suggestion(models.CategoryMakeup, selected.Makeup)))
	} else if makeup := deref(b.character.Makeup); makeup != "" {
		lines = append(lines, fmt.Sprintf("Makeup: %s", makeup))
	} else {
		lines = append(lines, "Makeup: Keep same as reference - professional, natural look")
	}

	return lines
}

func buildAccessories(b *build) []string {
	accessories := b.req.Selected.Accessories
	if len(accessories) == 0 {
		return nil
	}

	lines := []string{"=== ACCESSORIES ==="}
	for _, group := range GroupAccessories(accessories) {
		lines = append(lines, fmt.Sprintf("%s: %s", group.Category, strings.Join(group.Items, ", ")))
	}
	return lines
}

func buildFootwear(b *build) []string {
	shoes := b.req.Selected.Shoes
	if shoes == "" {
		return nil
	}
	return []string{
		"=== FOOTWEAR ===",
		fmt.Sprintf("Shoes: %s", b.suggestion(models.CategoryShoes, shoes)),
	}
}

func buildBottomWear(b *build) []string {
	bottom := b.req.Selected.Bottom
	if bottom == "" {
		return nil
	}
	return []string{
		"=== BOTTOM WEAR ===",
		b.suggestion(models.CategoryBottoms, bottom),
	}
}

func buildGarmentApplication(b *build) []string {
	return []string{
		"=== HOW TO APPLY THE GARMENT ===",
		"1. Take the garment from Image 2 reference",
		"2. Place it on the character's body with realistic draping",
		"3. Ensure natural fabric folds and wrinkles",
		"4. Match fabric behavior to material type",
		"5. Ensure proper fit on character's body",
		"6. Keep all gaps (neck, wrists, ankles) appropriate",
		"7. Do NOT distort character's body to fit garment",
		"8. Keep body proportions visible in shoulders/waist/hips",
	}
}

// buildSceneSection emits the locked scene background shared by every use
// case that places the character in an environment.
func buildSceneSection(b *build) []string {
	selected := b.req.Selected
	lines := []string{"=== SCENE LOCKED BACKGROUND ==="}

	if selected.Scene != "" {
		lines = append(lines, fmt.Sprintf("Setting: %s", b.sceneLockDirective(selected.Scene)))
	}

	if selected.Lighting != "" {
		lines = append(lines, "", fmt.Sprintf("Lighting: %s", b.suggestion(models.CategoryLighting, selected.Lighting)))
		for _, detail := range fallbackTechnicalDetails(models.CategoryLighting, selected.Lighting) {
			lines = append(lines, fmt.Sprintf("  %s: %s", detail.Key, detail.Value))
		}
	}

	if selected.Mood != "" {
		lines = append(lines, "", fmt.Sprintf("Mood/Atmosphere: %s", b.suggestion(models.CategoryMood, selected.Mood)))
	}

	return lines
}

func buildPhotography(b *build) []string {
	selected := b.req.Selected
	lines := []string{"=== PHOTOGRAPHY & QUALITY ==="}

	if selected.Style != "" {
		lines = append(lines, fmt.Sprintf("Style: %s", b.suggestion(models.CategoryStyle, selected.Style)))
	}
	if selected.CameraAngle != "" {
		lines = append(lines, fmt.Sprintf("Camera angle: %s", b.suggestion(models.CategoryCameraAngle, selected.CameraAngle)))
	}
	if selected.ColorPalette != "" {
		lines = append(lines, fmt.Sprintf("Color palette: %s", b.suggestion(models.CategoryColor, selected.ColorPalette)))
	}

	lines = append(lines,
		"Quality: Professional photography, 8k, sharp focus, ultra-detailed, photorealistic",
		"Detail Level: Realistic fabric texture, proper draping, anatomically correct",
	)
	return lines
}

func buildExecutionChecklist(b *build) []string {
	return []string{
		"=== EXECUTION CHECKLIST ===",
		"✓ Photo of person from Image 1 with character details preserved",
		"✓ Wearing garment from Image 2 with correct colors and materials",
		"✓ Same face, body, pose, expression - UNCHANGED",
		"✓ Realistic garment placement with natural draping",
		"✓ Professional lighting and composition",
		"✓ No distorted anatomy or bad proportions",
	}
}
