package generation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiImageModel = "gemini-3-pro-image-preview"

// GeminiImageProvider generates try-on images through the Gemini multimodal
// API: the assembled prompt plus the character and product reference images
// go in, candidate images come back as inline blobs.
type GeminiImageProvider struct {
	apiKey string
	model  string
}

func NewGeminiImageProvider(apiKey string) *GeminiImageProvider {
	return &GeminiImageProvider{apiKey: apiKey, model: geminiImageModel}
}

func (p *GeminiImageProvider) Name() string { return "gemini" }

func (p *GeminiImageProvider) Available() bool { return p.apiKey != "" }

func (p *GeminiImageProvider) GenerateImage(ctx context.Context, prompt, negative string, opts Options) ([]Image, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)

	fullPrompt := prompt
	if negative != "" {
		fullPrompt = fmt.Sprintf("%s\n\nDo NOT include any of the following: %s", prompt, negative)
	}
	parts := []genai.Part{genai.Text(fullPrompt)}

	if opts.CharacterImageURL != "" {
		data, err := fetchImage(opts.CharacterImageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch character image: %v", err)
		}
		parts = append(parts, genai.ImageData("jpeg", data))
	}
	for _, url := range opts.ProductImageURLs {
		if url == "" {
			continue
		}
		data, err := fetchImage(url)
		if err != nil {
			// A missing secondary reference degrades the prompt but should
			// not kill the attempt.
			continue
		}
		parts = append(parts, genai.ImageData("jpeg", data))
	}

	var images []Image
	for len(images) < opts.ImageCount {
		resp, err := model.GenerateContent(ctx, parts...)
		if err != nil {
			if len(images) > 0 {
				break
			}
			return nil, fmt.Errorf("failed to generate content: %v", err)
		}
		blobs := extractBlobs(resp)
		if len(blobs) == 0 {
			if len(images) > 0 {
				break
			}
			return nil, fmt.Errorf("no image data in response")
		}
		images = append(images, blobs...)
	}

	if len(images) > opts.ImageCount {
		images = images[:opts.ImageCount]
	}
	return images, nil
}

func extractBlobs(resp *genai.GenerateContentResponse) []Image {
	var images []Image
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			blob, ok := part.(genai.Blob)
			if !ok {
				continue
			}
			format := "png"
			if i := strings.Index(blob.MIMEType, "/"); i >= 0 {
				format = blob.MIMEType[i+1:]
			}
			images = append(images, Image{Data: blob.Data, Format: format})
		}
	}
	return images
}

func fetchImage(pathOrURL string) ([]byte, error) {
	if !strings.HasPrefix(pathOrURL, "http") {
		return os.ReadFile(pathOrURL)
	}
	resp, err := http.Get(pathOrURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image, status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
