package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raushankrgupta/fitly-ai/config"
	"github.com/raushankrgupta/fitly-ai/generation"
	"github.com/raushankrgupta/fitly-ai/models"
	"github.com/raushankrgupta/fitly-ai/prompt"
	"github.com/raushankrgupta/fitly-ai/utils"
)

// GenerateRequest is the payload for the end-to-end image generation flow.
// Analyses may be supplied by the client (from a previous analyze call);
// missing ones are computed server-side from the reference images.
type GenerateRequest struct {
	CharacterImage    string                    `json:"character_image"`
	ProductImage      string                    `json:"product_image"`
	UseCase           string                    `json:"use_case"`
	ProductFocus      string                    `json:"product_focus"`
	Language          string                    `json:"language"`
	Options           models.SelectedOptions    `json:"options"`
	CharacterAnalysis *models.CharacterAnalysis `json:"character_analysis,omitempty"`
	ProductAnalysis   *models.ProductAnalysis   `json:"product_analysis,omitempty"`
}

// GenerateHandler runs the whole image phase: analyze the reference images,
// assemble the prompt, drive the provider chain, upload results and record
// the flow.
func GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Generate API]")
	initServices()

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ProductImage == "" {
		utils.RespondError(w, &logMessageBuilder, "product_image is required", http.StatusBadRequest)
		return
	}
	if req.CharacterImage == "" && req.UseCase != prompt.UseCaseEcommerce {
		utils.RespondError(w, &logMessageBuilder, "character_image is required for this use case", http.StatusBadRequest)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, "Warning: UserID not found in context")
	}

	language := prompt.NormalizeLanguage(req.Language)
	if req.Language == "" {
		language = config.DefaultLanguage
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	flow, err := flowStore.Create(ctx, &models.Flow{
		UserID:         userID,
		CharacterImage: req.CharacterImage,
		ProductImage:   req.ProductImage,
		UseCase:        req.UseCase,
		ProductFocus:   req.ProductFocus,
		Language:       language,
		Image: models.ImagePhase{
			Status:       models.ImageStatusAnalyzing,
			StyleOptions: &req.Options,
		},
	})
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to create flow: %v", err), http.StatusInternalServerError)
		return
	}
	flowID := flow.ID.Hex()
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Flow created: %s", flowID))

	// Stored S3 keys become presigned URLs before they reach the vision model
	characterURL := presignIfKey(r.Context(), req.CharacterImage)
	productURL := presignIfKey(r.Context(), req.ProductImage)

	// Product links shared from shops are often shortened; follow redirects
	// before fetching. External references are then mirrored into S3 so the
	// flow stays replayable after the source link dies.
	if strings.HasPrefix(req.ProductImage, "http") {
		if resolved, err := utils.ResolveShortenedURL(req.ProductImage); err == nil {
			productURL = resolved
		}
	}
	mirrorExternalRefs(flowID, &logMessageBuilder, characterURL, productURL)

	// Heavy phase gets its own boundary timeout, detached from the request
	// context so a dropped client does not orphan a half-recorded flow.
	genCtx, cancelGen := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancelGen()

	character, product, err := resolveAnalyses(genCtx, &req, characterURL, productURL)
	if err != nil {
		flowStore.MarkImageFailed(ctx, flowID, err)
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Analysis failed: %v", err), http.StatusBadGateway)
		return
	}

	result, err := assembler.Build(genCtx, prompt.Request{
		Character:    character,
		Product:      product,
		Selected:     req.Options,
		UseCase:      req.UseCase,
		ProductFocus: req.ProductFocus,
		Language:     language,
	})
	if err != nil {
		flowStore.MarkImageFailed(ctx, flowID, err)
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Prompt assembly failed: %v", err), http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Prompt assembled: %d chars", len(result.Prompt)))

	bumpSelectedUsage(req.Options)

	started := time.Now()
	phase := flow.Image
	phase.Status = models.ImageStatusGenerating
	phase.CharacterAnalysis = character
	phase.ProductAnalysis = product
	phase.Prompt = result.Prompt
	phase.NegativePrompt = result.NegativePrompt
	phase.StartedAt = &started
	if err := flowStore.UpdateImagePhase(ctx, flowID, phase, nil); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to record generating phase: %v", err))
	}

	images, provider, err := orchestrator.Generate(genCtx, result.Prompt, result.NegativePrompt, generation.Options{
		CharacterImageURL: characterURL,
		ProductImageURLs:  []string{productURL},
		ImageCount:        req.Options.ImageCount,
		AspectRatio:       req.Options.AspectRatio,
	})
	if err != nil {
		flowStore.MarkImageFailed(ctx, flowID, err)
		if strings.Contains(err.Error(), "429") || strings.Contains(strings.ToLower(err.Error()), "quota") {
			utils.RespondError(w, &logMessageBuilder, "Quota exceeded. Please try again later.", http.StatusTooManyRequests)
		} else {
			utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Image generation failed: %v", err), http.StatusBadGateway)
		}
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generated %d images via %s", len(images), provider))

	saved, err := uploadGeneratedImages(r.Context(), flowID, images)
	if err != nil {
		flowStore.MarkImageFailed(ctx, flowID, err)
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to upload generated images: %v", err), http.StatusInternalServerError)
		return
	}

	if err := flowStore.SaveImages(ctx, flowID, saved, provider); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to save images on flow: %v", err))
	}

	// Presign for the response; keys stay in the database.
	for i := range saved {
		saved[i].URL = presignIfKey(r.Context(), saved[i].Path)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"flow_id":         flowID,
		"provider":        provider,
		"prompt":          result.Prompt,
		"negative_prompt": result.NegativePrompt,
		"images":          saved,
		"duration_ms":     time.Since(started).Milliseconds(),
	})
}

// PromptPreviewHandler assembles the prompt without generating anything, so
// clients can show the user what will be sent.
func PromptPreviewHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Prompt Preview API]")
	initServices()

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.CharacterAnalysis == nil || req.ProductAnalysis == nil {
		utils.RespondError(w, &logMessageBuilder, "character_analysis and product_analysis are required for preview", http.StatusBadRequest)
		return
	}

	result, err := assembler.Build(r.Context(), prompt.Request{
		Character:    req.CharacterAnalysis,
		Product:      req.ProductAnalysis,
		Selected:     req.Options,
		UseCase:      req.UseCase,
		ProductFocus: req.ProductFocus,
		Language:     prompt.NormalizeLanguage(req.Language),
	})
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Prompt assembly failed: %v", err), http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Preview assembled")
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"prompt":          result.Prompt,
		"negative_prompt": result.NegativePrompt,
		"sections":        result.Sections,
	})
}

// resolveAnalyses uses client-provided analyses when present and fills the
// gaps with the vision model.
func resolveAnalyses(ctx context.Context, req *GenerateRequest, characterURL, productURL string) (*models.CharacterAnalysis, *models.ProductAnalysis, error) {
	character := req.CharacterAnalysis
	product := req.ProductAnalysis

	if character == nil && req.CharacterImage != "" {
		analyzed, err := vision.AnalyzeCharacter(ctx, characterURL)
		if err != nil {
			return nil, nil, err
		}
		character = analyzed
	}
	if product == nil {
		analyzed, err := vision.AnalyzeProduct(ctx, productURL)
		if err != nil {
			return nil, nil, err
		}
		product = analyzed
	}
	return character, product, nil
}

// bumpSelectedUsage counts every picked option in the background.
func bumpSelectedUsage(opts models.SelectedOptions) {
	optionCatalog.BumpUsage(models.CategoryScene, opts.Scene)
	optionCatalog.BumpUsage(models.CategoryLighting, opts.Lighting)
	optionCatalog.BumpUsage(models.CategoryMood, opts.Mood)
	optionCatalog.BumpUsage(models.CategoryStyle, opts.Style)
	optionCatalog.BumpUsage(models.CategoryColor, opts.ColorPalette)
	optionCatalog.BumpUsage(models.CategoryCameraAngle, opts.CameraAngle)
	optionCatalog.BumpUsage(models.CategoryHairstyle, opts.Hairstyle)
	optionCatalog.BumpUsage(models.CategoryMakeup, opts.Makeup)
	optionCatalog.BumpUsage(models.CategoryBottoms, opts.Bottom)
	optionCatalog.BumpUsage(models.CategoryShoes, opts.Shoes)
	optionCatalog.BumpUsage(models.CategoryAccessories, opts.Accessories...)
}

// uploadGeneratedImages stores the rendered bytes in S3 and returns the
// records to attach to the flow. Keys carry the flow id for traceability.
func uploadGeneratedImages(ctx context.Context, flowID string, images []generation.Image) ([]models.GeneratedImage, error) {
	saved := make([]models.GeneratedImage, 0, len(images))
	for _, img := range images {
		format := img.Format
		if format == "" {
			format = "png"
		}
		objectKey := fmt.Sprintf("generated_images/%s/%s.%s", flowID, uuid.New().String(), format)

		contentType := "image/" + format
		if _, err := utils.UploadFileToS3(ctx, bytes.NewReader(img.Data), objectKey, contentType); err != nil {
			return nil, err
		}
		saved = append(saved, models.GeneratedImage{
			Path:      objectKey,
			Seed:      img.Seed,
			Format:    format,
			Provider:  img.Provider,
			CreatedAt: time.Now(),
		})
	}
	return saved, nil
}

// mirrorExternalRefs copies externally hosted reference images into S3 in
// the background. Best effort; the generation itself reads the live URLs.
// Presigned URLs for our own bucket are skipped.
func mirrorExternalRefs(flowID string, logMessageBuilder *strings.Builder, urls ...string) {
	var external []string
	for _, u := range urls {
		if strings.HasPrefix(u, "http") && !strings.Contains(u, "X-Amz-Signature") {
			external = append(external, u)
		}
	}
	if len(external) == 0 {
		return
	}
	utils.AddToLogMessage(logMessageBuilder, fmt.Sprintf("Mirroring %d reference images", len(external)))

	go func() {
		mirrorCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		utils.UploadImagesToS3(mirrorCtx, external, "reference_images/"+flowID)
	}()
}

// presignIfKey leaves full URLs alone and presigns stored S3 keys.
func presignIfKey(ctx context.Context, pathOrURL string) string {
	if pathOrURL == "" || strings.HasPrefix(pathOrURL, "http") {
		return pathOrURL
	}
	if url, err := utils.GetPresignedURL(ctx, pathOrURL); err == nil {
		return url
	}
	return pathOrURL
}
