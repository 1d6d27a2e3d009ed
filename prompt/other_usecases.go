package prompt

import (
	"fmt"
	"strings"
)

// Section builders for the product-only and lifestyle use cases. These lean
// on the product analysis more than the character and carry lighter
// character-preservation language than change-clothes.

func buildEcommerceProduct(b *build) []string {
	product := b.product
	lines := []string{
		"[ECOMMERCE PRODUCT PHOTOGRAPHY]",
		"Purpose: Professional product photography for online retail",
		"Focus: Product clarity, colors, details, and commercial appeal",
		"",
		"=== PRODUCT (PRIMARY FOCUS) ===",
		"Product is the MAIN SUBJECT - displayed clearly and prominently",
	}

	if garment := deref(product.GarmentType); garment != "" {
		lines = append(lines, fmt.Sprintf("Item: %s", garment))
	}
	if desc := deref(product.DetailedDescription); desc != "" {
		lines = append(lines, fmt.Sprintf("Description: %s", desc))
	}
	if primary := deref(product.PrimaryColor); primary != "" {
		lines = append(lines, fmt.Sprintf("Primary Color: %s", primary))
	}
	if secondary := deref(product.SecondaryColor); secondary != "" {
		lines = append(lines, fmt.Sprintf("Secondary Color: %s", secondary))
	}
	if pattern := deref(product.Pattern); pattern != "" {
		lines = append(lines, fmt.Sprintf("Pattern: %s", pattern))
	}
	if fabric := deref(product.FabricType); fabric != "" {
		lines = append(lines, fmt.Sprintf("Material: %s", fabric))
	}
	if fit := deref(product.FitType); fit != "" {
		lines = append(lines, fmt.Sprintf("Fit: %s", fit))
	}
	if details := deref(product.KeyDetails); details != "" {
		lines = append(lines, fmt.Sprintf("Key Details: %s", details))
	}

	lines = append(lines,
		"",
		"Product Display Requirements:",
		"- All details visible and clear",
		"- True-to-life colors (not saturated)",
		"- Realistic fabric appearance and texture",
		"- Professional presentation suitable for retail",
	)
	return lines
}

func buildEcommerceBackground(b *build) []string {
	scene := b.req.Selected.Scene
	lines := []string{"=== BACKGROUND ==="}
	if scene == "" || scene == "white-background" {
		lines = append(lines,
			"Background: Pure white (#FFFFFF) or very subtle neutral",
			"Why: Ecommerce standard, allows easy background removal",
			"Lighting: Even, no shadows on background",
		)
	} else {
		lines = append(lines, fmt.Sprintf("Background: %s", b.sceneLockDirective(scene)))
	}
	lines = append(lines, "Context: Minimal - Focus on product")
	return lines
}

func buildEcommerceDisplay(b *build) []string {
	lines := []string{"=== HOW TO DISPLAY THE PRODUCT ==="}
	if b.req.ProductFocus == FocusFullOutfit {
		lines = append(lines,
			"Display Method: ON A MODEL or REALISTIC FORM",
			"- Model should be neutral and not distract from product",
			"- Face should be calm, neutral expression",
			"- Pose should showcase the garment",
			"- Model is secondary to product visibility",
		)
	} else {
		lines = append(lines,
			"Display Method: FLAT LAY or DETAIL CLOSE-UP",
			"- Show product against clean background",
			"- Multiple angles if possible",
			"- Highlight key design elements",
		)
	}
	lines = append(lines,
		"- All product edges visible and clear",
		"- No distortion or wrinkles that hide details",
	)
	return lines
}

func buildEcommerceLighting(b *build) []string {
	lines := []string{
		"=== LIGHTING & TECHNICAL SPECS ===",
		"Lighting: Bright, even studio lighting",
		"- Soft diffused light (3-light setup standard)",
		"- No harsh shadows",
		"- Consistent color temperature (5500K daylight)",
		"- High key (bright overall)",
	}
	if lighting := b.req.Selected.Lighting; lighting != "" {
		lines = append(lines, fmt.Sprintf("Style: %s", lighting))
	}
	lines = append(lines,
		"",
		"Color & Accuracy:",
		"- Accurate color reproduction",
		"- Neutral white balance",
		"- True material appearance",
		"",
		"Quality:",
		"- 8K resolution, ultra high quality",
		"- Sharp focus on entire product",
		"- Crisp details, clean edges",
		"- Commercial photography standard",
	)
	return lines
}

func buildEcommerceRestrictions(b *build) []string {
	return []string{
		"=== WHAT NOT TO DO ===",
		"- Do NOT have busy or distracting background",
		"- Do NOT use excessive styling or decoration",
		"- Do NOT distort or exaggerate product size",
		"- Do NOT add watermarks or logos",
		"- Do NOT use artistic filters or effects",
		"- Do NOT hide any important product details",
	}
}

func buildSocialCharacter(b *build) []string {
	character := b.character
	lines := []string{
		"[SOCIAL MEDIA CONTENT]",
		"Platform: Instagram/TikTok optimized",
		"Purpose: Engaging, trendy, scroll-stopping content",
		"",
		"=== CHARACTER & ENERGY ===",
	}
	if age := deref(character.Age); age != "" {
		lines = append(lines, fmt.Sprintf("Age: %s", age))
	}
	if gender := deref(character.Gender); gender != "" {
		lines = append(lines, fmt.Sprintf("Gender: %s", gender))
	}
	lines = append(lines,
		"Energy Level: HIGH - Confident, engaging, expressive",
		"Expression: Natural smile or expressive emotion",
		"Vibe: Relatable, trendy, aspirational",
		"Pose: Dynamic and natural (not stiff)",
		"Movement: Suggest motion or action",
	)
	return lines
}

func buildSocialStyling(b *build) []string {
	product := b.product
	selected := b.req.Selected
	lines := []string{"=== STYLING (CURRENT TRENDS) ==="}

	if garment := deref(product.GarmentType); garment != "" {
		lines = append(lines, fmt.Sprintf("Item: %s", garment))
	}
	if primary := deref(product.PrimaryColor); primary != "" {
		lines = append(lines, fmt.Sprintf("Main Color: %s", primary))
	}
	if secondary := deref(product.SecondaryColor); secondary != "" {
		lines = append(lines, fmt.Sprintf("Accent Color: %s", secondary))
	}
	if style := deref(product.StyleCategory); style != "" {
		lines = append(lines, fmt.Sprintf("Style: %s (on-trend)", style))
	}

	lines = append(lines,
		"Styling: Complete outfit looking, fashion-forward",
		"Accessories: Strategic, Instagram-worthy accessories",
	)
	if selected.Shoes != "" {
		lines = append(lines, fmt.Sprintf("Shoes: %s", selected.Shoes))
	}

	lines = append(lines, "", "Makeup: Instagram-optimized")
	if selected.Makeup != "" {
		lines = append(lines, fmt.Sprintf("Style: %s", selected.Makeup))
	} else {
		lines = append(lines, "Style: Camera-friendly, polished but natural looking")
	}
	lines = append(lines, "Hair: On-trend, moving naturally (suggests motion)")
	return lines
}

func buildSocialPhotography(b *build) []string {
	selected := b.req.Selected
	lines := []string{
		"=== PHOTOGRAPHY STYLE ===",
		"Style: Social media photography (film/aesthetic look)",
		"- Warm, appealing color grading",
		"- Subtle film grain or digital clean",
		"- Natural but slightly enhanced colors",
		"",
		"Composition:",
	}
	if selected.CameraAngle != "" {
		lines = append(lines, fmt.Sprintf("Angle: %s", selected.CameraAngle))
	} else {
		lines = append(lines, "Angle: Flattering three-quarter or full body")
	}
	lines = append(lines,
		"- Composition: Rule of thirds or dynamic",
		"- Leading lines: Optional but preferred",
	)
	return lines
}

func buildSocialDetails(b *build) []string {
	return []string{
		"=== HASHTAG-WORTHY DETAILS ===",
		"Make this image SHAREABLE:",
		"- Aspirational but relatable",
		"- Trendy yet timeless",
		"- Clear product visibility",
		"- Engaging composition",
		"- Instagram-algorithm-friendly (vibrant, clear, engaging)",
		"- Suitable for: Feed post, Reels thumbnail, Story",
	}
}

func buildEditorialCharacter(b *build) []string {
	character := b.character
	selected := b.req.Selected
	lines := []string{
		"[FASHION EDITORIAL PHOTOGRAPHY]",
		"Style: High-fashion magazine editorial (Vogue, Harper's Bazaar level)",
		"Purpose: Artistic, sophisticated fashion storytelling",
		"",
		"=== CHARACTER & STYLING ===",
	}
	if age := deref(character.Age); age != "" {
		lines = append(lines, fmt.Sprintf("Model: %s year old", age))
	}
	if gender := deref(character.Gender); gender != "" {
		lines = append(lines, fmt.Sprintf("Gender: %s", gender))
	}
	lines = append(lines,
		"Look: Editorial, chic, sophisticated",
		"Presence: Strong editorial presence, confident",
		"Expression: Dramatic but editorial (not smiling necessarily)",
		"",
		"Makeup: Editorial beauty",
	)
	if selected.Makeup != "" {
		lines = append(lines, fmt.Sprintf("- %s", selected.Makeup))
	} else {
		lines = append(lines, "- Artistic, bold but editorial-appropriate")
	}
	lines = append(lines, "Hair: Editorial styling")
	if selected.Hairstyle != "" {
		lines = append(lines, fmt.Sprintf("- %s", selected.Hairstyle))
	} else {
		lines = append(lines, "- Perfectly styled or artfully undone")
	}
	if len(selected.Accessories) > 0 {
		lines = append(lines,
			"",
			"Accessories: Curated editorial selection",
			fmt.Sprintf("- Featured: %s", strings.Join(selected.Accessories, ", ")),
			"- Coordinated with outfit (not random)",
		)
	}
	return lines
}

func buildEditorialArtDirection(b *build) []string {
	product := b.product
	lines := []string{"=== OUTFIT (ART DIRECTION) ==="}
	if garment := deref(product.GarmentType); garment != "" {
		lines = append(lines, fmt.Sprintf("Garment: %s", garment))
	}
	if style := deref(product.StyleCategory); style != "" {
		lines = append(lines, fmt.Sprintf("Category: %s", style))
	}

	lines = append(lines, "Color Story:")
	if primary := deref(product.PrimaryColor); primary != "" {
		lines = append(lines, fmt.Sprintf("- Primary: %s", primary))
	}
	if secondary := deref(product.SecondaryColor); secondary != "" {
		lines = append(lines, fmt.Sprintf("- Secondary: %s", secondary))
	}
	if pattern := deref(product.Pattern); pattern != "" {
		lines = append(lines, fmt.Sprintf("- Pattern: %s", pattern))
	}

	lines = append(lines, "Material & Texture:")
	if fabric := deref(product.FabricType); fabric != "" {
		lines = append(lines, fmt.Sprintf("- Fabric: %s", fabric))
	}
	lines = append(lines, "- Realistic luxurious texture")

	lines = append(lines, "Design Elements:")
	if details := deref(product.KeyDetails); details != "" {
		lines = append(lines, fmt.Sprintf("- Focus: %s", details))
	}
	lines = append(lines, "- Show garment artfully (from interesting angle)")
	return lines
}

func buildEditorialDirection(b *build) []string {
	selected := b.req.Selected
	lines := []string{
		"=== PHOTOGRAPHY DIRECTION ===",
		"Style: High-fashion editorial photography",
		"- Magazine-quality production",
		"- Artistic composition",
		"- Thoughtful use of space and negative space",
	}
	if selected.CameraAngle != "" {
		lines = append(lines, fmt.Sprintf("Angle: %s", selected.CameraAngle))
	} else {
		lines = append(lines, "Angle: Dynamic - full body or artistic crop")
	}
	if selected.ColorPalette != "" {
		lines = append(lines, fmt.Sprintf("Color Palette: %s", selected.ColorPalette))
	}
	lines = append(lines,
		"Direction:",
		"- Artistic and creative",
		"- Fashion-forward styling",
		"- Story-driven imagery",
		"- Suitable for: Magazine spread, lookbook, collection showcase",
	)
	return lines
}

func buildLifestyleCharacter(b *build) []string {
	character := b.character
	lines := []string{
		"[LIFESTYLE PHOTOGRAPHY]",
		"Purpose: Show how outfit works in real-world context",
		"Approach: Authentic, relatable, aspirational",
		"",
		"=== CHARACTER IN LIFESTYLE ===",
	}
	if age := deref(character.Age); age != "" {
		lines = append(lines, fmt.Sprintf("Person: %s years old", age))
	}
	if gender := deref(character.Gender); gender != "" {
		lines = append(lines, fmt.Sprintf("Gender: %s", gender))
	}
	lines = append(lines,
		"Expression: Natural, genuine, often smiling",
		"Attitude: Authentic, confident in their element",
		"Posture: Natural, relaxed, comfortable",
		"",
		"Activity/Context:",
		"- Suggest a real-world activity or moment",
		"- Not posed (or naturally posed)",
		"- Genuine living, not obviously modelling",
	)
	return lines
}

func buildLifestyleOutfit(b *build) []string {
	product := b.product
	selected := b.req.Selected
	lines := []string{"=== OUTFIT (HOW IT'S WORN) ==="}
	if garment := deref(product.GarmentType); garment != "" {
		lines = append(lines, fmt.Sprintf("Item: %s", garment))
	}
	if style := deref(product.StyleCategory); style != "" {
		lines = append(lines, fmt.Sprintf("Style: %s", style))
	}
	lines = append(lines,
		"Worn as part of a real moment:",
		"- Brunch outfit",
		"- Work-to-weekend look",
		"- Casual outing",
		"- Day-in-life moment",
	)
	if primary := deref(product.PrimaryColor); primary != "" {
		lines = append(lines, fmt.Sprintf("- Color: %s", primary))
	}
	if secondary := deref(product.SecondaryColor); secondary != "" {
		lines = append(lines, fmt.Sprintf("- With: %s", secondary))
	}
	if selected.Shoes != "" {
		lines = append(lines, fmt.Sprintf("- Shoes: %s", selected.Shoes))
	}
	lines = append(lines, "Accessories:")
	if len(selected.Accessories) > 0 {
		lines = append(lines, fmt.Sprintf("- Practical/stylish: %s", strings.Join(selected.Accessories, ", ")))
	}
	lines = append(lines, "- Fits naturally into the scene")
	return lines
}

func buildLifestyleAtmosphere(b *build) []string {
	selected := b.req.Selected
	lines := []string{
		"=== PHOTOGRAPHY STYLE ===",
		"Approach: Lifestyle photography",
		"- Documentary-style with style",
		"- Natural but polished",
	}
	if selected.CameraAngle != "" {
		lines = append(lines, fmt.Sprintf("Angle: %s", selected.CameraAngle))
	} else {
		lines = append(lines, "Angle: Natural, authentic perspective")
	}
	lines = append(lines,
		"Composition:",
		"- Environmental (show the scene)",
		"- Natural framing",
		"- Focus on the moment and the outfit",
		"",
		"Color & Tone:",
	)
	if selected.ColorPalette != "" {
		lines = append(lines, fmt.Sprintf("Palette: %s", selected.ColorPalette))
	} else {
		lines = append(lines, "Palette: Warm, inviting, natural")
	}
	lines = append(lines,
		"- Natural color grading",
		"- Warm undertones",
		"- Film-like or clean digital",
	)
	return lines
}

func buildBeforeAfterLayout(b *build) []string {
	product := b.product
	lines := []string{
		"=== TRANSFORMATION CONCEPT ===",
		"Story: Show how this product/outfit transforms the look",
		"Before State: Basic, neutral, baseline clothing on the same person",
		"After State: Stylish, confident, wearing the garment from Image 2",
		"",
	}
	if garment := deref(product.GarmentType); garment != "" {
		lines = append(lines, fmt.Sprintf("Added in After: Stylish %s", garment))
	}
	lines = append(lines,
		"",
		"=== PHOTOGRAPHY CONSISTENCY ===",
		"Both halves must be consistent:",
		"- Same lighting style",
		"- Same background (or very similar)",
		"- Same camera angle",
		"- Only the outfit and minimal styling changes",
		"",
		"=== BEFORE/AFTER LAYOUT ===",
		"[LEFT SIDE - BEFORE] [RIGHT SIDE - AFTER]",
		"Split screen with clear visual comparison",
	)
	return lines
}

// buildQualityLine closes the lighter use cases with a shared quality block.
func buildQualityLine(b *build) []string {
	return []string{
		"=== QUALITY ===",
		"Resolution: High quality, sharp focus on subject",
		"Colors: Vibrant but natural",
		"Finish: Professional but approachable",
	}
}
