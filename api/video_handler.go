package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raushankrgupta/fitly-ai/generation"
	"github.com/raushankrgupta/fitly-ai/models"
	"github.com/raushankrgupta/fitly-ai/utils"
)

// VideoRequest starts the video phase for a completed flow.
type VideoRequest struct {
	FlowID           string `json:"flow_id"`
	SourceImageIndex int    `json:"source_image_index"`
	UserPrompt       string `json:"user_prompt"`
}

// VideoHandler animates one of the flow's generated images and records the
// video phase on the flow.
func VideoHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Video API]")
	initServices()

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.FlowID == "" {
		utils.RespondError(w, &logMessageBuilder, "flow_id is required", http.StatusBadRequest)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	flow, err := flowStore.GetForUser(r.Context(), req.FlowID, userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Flow not found", http.StatusNotFound)
		return
	}
	if flow.Image.Status != models.ImageStatusCompleted || len(flow.Image.Images) == 0 {
		utils.RespondError(w, &logMessageBuilder, "Flow has no completed images to animate", http.StatusConflict)
		return
	}

	idx := req.SourceImageIndex
	if idx < 0 || idx >= len(flow.Image.Images) {
		idx = 0
	}
	sourceURL := presignIfKey(r.Context(), flow.Image.Images[idx].Path)

	started := time.Now()
	phase := models.VideoPhase{
		Status:           models.VideoStatusAnalyzing,
		SourceImageIndex: idx,
		UserPrompt:       req.UserPrompt,
		StartedAt:        &started,
	}
	if err := flowStore.UpdateVideoPhase(r.Context(), req.FlowID, phase); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to record video phase start: %v", err))
	}

	genCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := videoChain.Generate(genCtx, generation.VideoRequest{
		SourceImageURL: sourceURL,
		UserPrompt:     req.UserPrompt,
	})
	if err != nil {
		phase.Status = models.VideoStatusFailed
		phase.Error = err.Error()
		flowStore.UpdateVideoPhase(r.Context(), req.FlowID, phase)
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Video generation failed: %v", err), http.StatusBadGateway)
		return
	}

	completed := time.Now()
	phase.Status = models.VideoStatusCompleted
	phase.Prompt = result.Prompt
	phase.VideoURL = result.VideoURL
	phase.Provider = result.Provider
	phase.CompletedAt = &completed
	phase.DurationMs = completed.Sub(started).Milliseconds()
	if result.Motion != nil {
		phase.MotionAnalysis = result.Motion.Motion
		phase.CameraAnalysis = result.Motion.Camera
		phase.LightingAnalysis = result.Motion.Lighting
	}
	if err := flowStore.UpdateVideoPhase(r.Context(), req.FlowID, phase); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to record video phase: %v", err))
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Video generated via %s", result.Provider))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"flow_id":     req.FlowID,
		"video_url":   result.VideoURL,
		"provider":    result.Provider,
		"prompt":      result.Prompt,
		"duration_ms": phase.DurationMs,
	})
}
