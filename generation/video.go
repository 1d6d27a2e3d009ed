package generation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/raushankrgupta/fitly-ai/analysis"
	"google.golang.org/api/option"
)

// VideoRequest asks for a short video from one selected try-on image.
type VideoRequest struct {
	SourceImageURL string
	UserPrompt     string
}

// VideoResult is the provider's answer: a hosted video URL.
type VideoResult struct {
	VideoURL string
	Provider string
	Prompt   string
	Motion   *MotionAnalysis
}

// MotionAnalysis describes how the still image should move.
type MotionAnalysis struct {
	Motion   string `json:"motion"`
	Camera   string `json:"camera"`
	Lighting string `json:"lighting"`
}

// MotionAnalyzer proposes motion, camera and lighting directions for the
// source image before the video prompt is assembled.
type MotionAnalyzer interface {
	AnalyzeMotion(ctx context.Context, imageURL string) (*MotionAnalysis, error)
}

// VideoProvider renders a video for an assembled prompt.
type VideoProvider interface {
	Name() string
	Available() bool
	GenerateVideo(ctx context.Context, prompt string, req VideoRequest) (*VideoResult, error)
}

// VideoChain runs the video phase: analyze the source image, assemble the
// video prompt, then try providers in order. Analysis failure is soft; the
// chain falls back to the user prompt alone.
type VideoChain struct {
	analyzer          MotionAnalyzer
	providers         []VideoProvider
	OnProviderFailure func(provider string, err error)
}

func NewVideoChain(analyzer MotionAnalyzer, providers ...VideoProvider) *VideoChain {
	return &VideoChain{
		analyzer:  analyzer,
		providers: providers,
		OnProviderFailure: func(provider string, err error) {
			log.Printf("video provider %s failed: %v", provider, err)
		},
	}
}

func (c *VideoChain) Generate(ctx context.Context, req VideoRequest) (*VideoResult, error) {
	var motion *MotionAnalysis
	if c.analyzer != nil {
		m, err := c.analyzer.AnalyzeMotion(ctx, req.SourceImageURL)
		if err != nil {
			log.Printf("motion analysis failed, using user prompt only: %v", err)
		} else {
			motion = m
		}
	}

	prompt := BuildVideoPrompt(req.UserPrompt, motion)
	if prompt == "" {
		return nil, fmt.Errorf("video prompt is empty")
	}

	var lastErr error
	for _, provider := range c.providers {
		if !provider.Available() {
			continue
		}
		result, err := provider.GenerateVideo(ctx, prompt, req)
		if err != nil {
			lastErr = err
			if c.OnProviderFailure != nil {
				c.OnProviderFailure(provider.Name(), err)
			}
			continue
		}
		result.Provider = provider.Name()
		result.Prompt = prompt
		result.Motion = motion
		return result, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all video providers failed, last error: %v", lastErr)
	}
	return nil, fmt.Errorf("no video provider is configured or available")
}

// BuildVideoPrompt combines the user's direction with the analyzed motion
// hints into one provider-agnostic prompt.
func BuildVideoPrompt(userPrompt string, motion *MotionAnalysis) string {
	var parts []string
	if userPrompt = strings.TrimSpace(userPrompt); userPrompt != "" {
		parts = append(parts, userPrompt)
	}
	if motion != nil {
		if motion.Motion != "" {
			parts = append(parts, fmt.Sprintf("Motion: %s", motion.Motion))
		}
		if motion.Camera != "" {
			parts = append(parts, fmt.Sprintf("Camera: %s", motion.Camera))
		}
		if motion.Lighting != "" {
			parts = append(parts, fmt.Sprintf("Lighting: %s", motion.Lighting))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "Subtle natural movement, model shifts weight and fabric sways gently")
	}
	return strings.Join(parts, ". ")
}

// GeminiMotionAnalyzer derives motion hints from the source image with the
// Gemini vision model.
type GeminiMotionAnalyzer struct {
	apiKey string
	model  string
}

func NewGeminiMotionAnalyzer(apiKey string) *GeminiMotionAnalyzer {
	return &GeminiMotionAnalyzer{apiKey: apiKey, model: "gemini-1.5-flash"}
}

func (a *GeminiMotionAnalyzer) AnalyzeMotion(ctx context.Context, imageURL string) (*MotionAnalysis, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	data, err := fetchImage(imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source image: %v", err)
	}

	model := client.GenerativeModel(a.model)
	prompt := `Analyze this fashion photo and suggest how to animate it as a short video.
Respond with ONLY a JSON object, no other text:
{"motion": "<how the subject should move>", "camera": "<camera movement>", "lighting": "<lighting behavior>"}`

	resp, err := model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData("jpeg", data))
	if err != nil {
		return nil, fmt.Errorf("motion analysis request failed: %v", err)
	}

	var text strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}

	var motion MotionAnalysis
	if err := analysis.DecodeJSONObject(text.String(), &motion); err != nil {
		return nil, fmt.Errorf("parsing motion analysis: %v", err)
	}
	return &motion, nil
}
