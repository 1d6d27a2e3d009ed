package analysis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/raushankrgupta/fitly-ai/models"
	"google.golang.org/api/option"
)

// VisionAnalyzer extracts the structured character and product attributes the
// prompt assembler consumes from the two uploaded reference images.
type VisionAnalyzer struct {
	apiKey string
	model  string
}

func NewVisionAnalyzer(apiKey string) *VisionAnalyzer {
	return &VisionAnalyzer{apiKey: apiKey, model: "gemini-1.5-flash"}
}

func (a *VisionAnalyzer) Available() bool { return a.apiKey != "" }

// AnalyzeCharacter describes the person in the reference image. Every field
// the model cannot determine stays nil.
func (a *VisionAnalyzer) AnalyzeCharacter(ctx context.Context, imageURL string) (*models.CharacterAnalysis, error) {
	prompt := `Analyze the person in this photo for a virtual try-on system.
Respond with ONLY a JSON object, no other text. Omit any field you cannot determine:
{"age": "<age range>", "gender": "<gender>", "skin_tone": "<skin tone>",
"hair": {"color": "<color>", "style": "<style>", "length": "<length>"},
"facial_features": "<notable facial features>", "body_type": "<body type>",
"makeup": "<current makeup>", "expression": "<facial expression>"}`

	var result models.CharacterAnalysis
	if err := a.analyzeImage(ctx, imageURL, prompt, &result); err != nil {
		return nil, fmt.Errorf("character analysis failed: %v", err)
	}
	return &result, nil
}

// AnalyzeProduct describes the garment in the product image.
func (a *VisionAnalyzer) AnalyzeProduct(ctx context.Context, imageURL string) (*models.ProductAnalysis, error) {
	prompt := `Analyze the clothing product in this photo for a virtual try-on system.
Respond with ONLY a JSON object, no other text. Omit any field you cannot determine:
{"garment_type": "<type>", "detailed_description": "<one sentence>",
"style_category": "<casual/formal/sporty/...>", "primary_color": "<color>",
"secondary_color": "<color>", "fabric_type": "<fabric>", "pattern": "<pattern>",
"fit_type": "<fit>", "neckline": "<neckline>", "sleeves": "<sleeve style>",
"key_details": "<distinctive details>", "length": "<garment length>",
"coverage": "<what it covers>"}`

	var result models.ProductAnalysis
	if err := a.analyzeImage(ctx, imageURL, prompt, &result); err != nil {
		return nil, fmt.Errorf("product analysis failed: %v", err)
	}
	return &result, nil
}

func (a *VisionAnalyzer) analyzeImage(ctx context.Context, imageURL, prompt string, out interface{}) error {
	if a.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	data, err := loadImage(imageURL)
	if err != nil {
		return fmt.Errorf("failed to fetch image: %v", err)
	}

	model := client.GenerativeModel(a.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData("jpeg", data))
	if err != nil {
		return fmt.Errorf("vision request failed: %v", err)
	}

	return DecodeJSONObject(textFromResponse(resp), out)
}

func loadImage(pathOrURL string) ([]byte, error) {
	if !strings.HasPrefix(pathOrURL, "http") {
		return os.ReadFile(pathOrURL)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(pathOrURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image, status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
