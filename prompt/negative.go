package prompt

import (
	"strings"

	"github.com/raushankrgupta/fitly-ai/models"
)

// Baseline negative prompt for virtual try-on. The character-preservation
// terms come first since they matter most for the change-clothes flow.
var baseNegatives = []string{
	"changes to face",
	"different face shape",
	"modified body type",
	"changed pose",
	"different expression",
	"altered eye appearance",
	"different skin color",
	"changed hair style",
	"different hairstyle",
	"different eye color",
	"cropped head",
	"damaged face",
	"changed body",

	"blurry",
	"low quality",
	"distorted",
	"deformed",
	"ugly",
	"bad anatomy",
	"extra limbs",
	"missing limbs",
	"bad hands",
	"bad fingers",
	"poorly fitted clothing",
	"wrinkled clothing",
	"damaged clothing",
	"torn clothing",
	"bad lighting",
	"overexposed",
	"underexposed",
	"harsh shadows",
	"bad composition",
	"cropped",
	"cut off",
	"out of frame",
	"watermark",
	"signature",
	"text",
	"jpeg artifacts",
	"pixelated",
	"grainy",
	"noise",
	"chromatic aberration",

	"floating garment",
	"disconnected clothing",
	"unrealistic draping",
	"awkward fit",
	"reversed colors",
	"color bleeding",
	"misaligned seams",
}

var sceneNegatives = map[string][]string{
	"studio":           {"busy background", "cluttered", "messy"},
	"white-background": {"shadows on background", "uneven lighting", "color cast"},
	"urban-street":     {"cars", "people in background", "garbage"},
	"luxury-interior":  {"dusty", "worn furniture", "cheap decor"},
}

var lightingNegatives = map[string][]string{
	"soft-diffused":      {"harsh shadows", "bright spots", "uneven lighting"},
	"dramatic-rembrandt": {"flat lighting", "no shadows", "overexposed"},
}

// buildNegativePrompt assembles the negative prompt from the baseline plus
// product, scene and lighting specific additions, deduplicated with first
// occurrence kept.
func buildNegativePrompt(product *models.ProductAnalysis, selected models.SelectedOptions) string {
	negatives := make([]string, len(baseNegatives))
	copy(negatives, baseNegatives)

	if product != nil {
		garment := strings.ToLower(deref(product.GarmentType))
		if strings.Contains(garment, "dress") || strings.Contains(garment, "gown") {
			negatives = append(negatives, "torn fabric", "stained", "dirty hem")
		}
		fabric := strings.ToLower(deref(product.FabricType))
		if fabric == "silk" || fabric == "satin" {
			negatives = append(negatives, "creased", "wrinkled", "shiny spots")
		}
		if fabric == "leather" {
			negatives = append(negatives, "scratched", "worn out", "artificial looking")
		}
		if strings.Contains(garment, "shoe") || strings.Contains(garment, "sneaker") || strings.Contains(garment, "boot") {
			negatives = append(negatives, "dirty soles", "scuffed", "untied laces")
		}
	}

	negatives = append(negatives, sceneNegatives[selected.Scene]...)
	negatives = append(negatives, lightingNegatives[selected.Lighting]...)

	return strings.Join(dedupe(negatives), ", ")
}

// GenericNegativePrompt is the short negative used when no product analysis
// is available (e.g. prompt preview before analysis runs).
func GenericNegativePrompt() string {
	return "blurry, low quality, distorted, bad anatomy, ugly, artifacts, watermark, text, out of focus, pixelated"
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
