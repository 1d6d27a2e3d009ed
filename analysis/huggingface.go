package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const hfInferenceBase = "https://api-inference.huggingface.co/models/"

// HuggingFaceProvider is the free fallback backend. It runs captioning,
// object detection and classification over the inference API and derives a
// quality score from model confidence.
type HuggingFaceProvider struct {
	apiKey string
	client *http.Client
}

func NewHuggingFaceProvider(apiKey string) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HuggingFaceProvider) Name() string { return "huggingface" }

func (p *HuggingFaceProvider) Available() bool { return p.apiKey != "" }

func (p *HuggingFaceProvider) Analyze(ctx context.Context, subject Subject) (*Result, error) {
	imageData, err := p.fetchImage(ctx, subject.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("could not fetch image for analysis: %v", err)
	}

	caption := p.caption(ctx, imageData)
	objects := p.detectObjects(ctx, imageData)
	labels := p.classify(ctx, imageData)

	content := contentReport(subject)
	content.Caption = caption
	content.Objects = objects
	content.Labels = labels

	score := 7.0
	if caption != "" {
		score++
	}
	if len(objects) > 0 {
		score += 0.5
	}
	if len(labels) > 0 {
		score += 0.5
	}
	if !subject.Success {
		score = 3
	}
	score = clampScore(score)

	feedback := "Analysis based on HuggingFace models"
	if caption != "" {
		feedback = "AI Caption: " + caption
	}

	result := &Result{
		Basic:   basicInfo(subject),
		Content: content,
		Quality: QualityReport{
			OverallScore: score,
			Criteria: QualityCriteria{
				TechnicalQuality: score,
				AestheticAppeal:  score,
				PromptAdherence:  score,
				PracticalUtility: score,
			},
			Feedback: feedback,
			Grade:    ScoreToGrade(score),
		},
		Suggestions: []Suggestion{
			{
				Type:        "info",
				Title:       "Free Analysis",
				Description: "Analyzed with free HuggingFace inference models",
				Impact:      "Zero cost analysis",
			},
			{
				Type:        "upgrade",
				Title:       "Upgrade to Gemini",
				Description: "For more detailed analysis, configure a Gemini API key",
				Impact:      "Get LLM powered insights",
			},
		},
	}
	return result, nil
}

// caption runs BLIP image captioning. Individual model failures are not
// fatal; the caller just gets an empty caption.
func (p *HuggingFaceProvider) caption(ctx context.Context, image []byte) string {
	var replies []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := p.post(ctx, "Salesforce/blip-image-captioning-base", image, &replies); err != nil {
		return ""
	}
	if len(replies) == 0 {
		return ""
	}
	return replies[0].GeneratedText
}

// detectObjects runs DETR detection, keeping labels over 0.5 confidence,
// top 10.
func (p *HuggingFaceProvider) detectObjects(ctx context.Context, image []byte) []string {
	var replies []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := p.post(ctx, "facebook/detr-resnet-50", image, &replies); err != nil {
		return nil
	}
	var objects []string
	for _, r := range replies {
		if r.Score > 0.5 {
			objects = append(objects, r.Label)
		}
		if len(objects) >= 10 {
			break
		}
	}
	return objects
}

// classify runs ViT classification, top 5 labels.
func (p *HuggingFaceProvider) classify(ctx context.Context, image []byte) []string {
	var replies []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := p.post(ctx, "google/vit-base-patch16-224", image, &replies); err != nil {
		return nil
	}
	var labels []string
	for i, r := range replies {
		if i >= 5 {
			break
		}
		labels = append(labels, r.Label)
	}
	return labels
}

func (p *HuggingFaceProvider) post(ctx context.Context, model string, image []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hfInferenceBase+model, bytes.NewReader(image))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("huggingface %s returned %d: %s", model, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (p *HuggingFaceProvider) fetchImage(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("subject has no image url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image, status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
