package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/fitly-ai/analysis"
	"github.com/raushankrgupta/fitly-ai/utils"
)

// AnalyzeRequest targets one generated artifact, either by flow id or as a
// fully described subject.
type AnalyzeRequest struct {
	FlowID  string            `json:"flow_id,omitempty"`
	Subject *analysis.Subject `json:"subject,omitempty"`
}

// AnalyzeHandler scores one generated image through the provider chain.
func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Analyze API]")
	initServices()

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	subject := req.Subject
	if subject == nil {
		if req.FlowID == "" {
			utils.RespondError(w, &logMessageBuilder, "flow_id or subject is required", http.StatusBadRequest)
			return
		}
		loaded, err := flowStore.Subject(r.Context(), req.FlowID)
		if err != nil {
			utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to load flow: %v", err), http.StatusNotFound)
			return
		}
		subject = loaded
	}

	result := chain.Analyze(r.Context(), *subject)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Analyzed via %s, grade %s", result.Provider, result.Quality.Grade))
	utils.RespondJSON(w, http.StatusOK, result)
}

// AnalyzeBatchRequest lists the flows to analyze, in order.
type AnalyzeBatchRequest struct {
	FlowIDs []string `json:"flow_ids"`
}

// AnalyzeBatchHandler scores several flows sequentially and returns the
// per-item results with a summary.
func AnalyzeBatchHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Analyze Batch API]")
	initServices()

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if len(req.FlowIDs) == 0 {
		utils.RespondError(w, &logMessageBuilder, "flow_ids is required", http.StatusBadRequest)
		return
	}

	result := chain.AnalyzeBatch(r.Context(), flowStore, req.FlowIDs)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Batch analyzed %d flows", len(req.FlowIDs)))
	utils.RespondJSON(w, http.StatusOK, result)
}
