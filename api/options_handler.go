package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/raushankrgupta/fitly-ai/models"
	"github.com/raushankrgupta/fitly-ai/utils"
)

// UpsertOptionRequest is the admin payload for adding or updating a catalog
// option.
type UpsertOptionRequest struct {
	Category string            `json:"category"`
	Value    string            `json:"value"`
	Label    string            `json:"label"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// OptionsHandler lists catalog options by category (GET) and upserts one
// (POST).
func OptionsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Options API]")
	initServices()

	switch r.Method {
	case http.MethodGet:
		listOptions(w, r, &logMessageBuilder)
	case http.MethodPost:
		upsertOption(w, r, &logMessageBuilder)
	default:
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func listOptions(w http.ResponseWriter, r *http.Request, logMessageBuilder *strings.Builder) {
	category := r.URL.Query().Get("category")
	if category == "" {
		utils.RespondError(w, logMessageBuilder, "category query parameter is required", http.StatusBadRequest)
		return
	}

	options, err := optionCatalog.GetByCategory(r.Context(), category)
	if err != nil {
		utils.RespondError(w, logMessageBuilder, fmt.Sprintf("Failed to load options: %v", err), http.StatusInternalServerError)
		return
	}
	if options == nil {
		options = []models.Option{}
	}

	utils.AddToLogMessage(logMessageBuilder, fmt.Sprintf("Listed %d options for %s", len(options), category))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"options":  options,
	})
}

func upsertOption(w http.ResponseWriter, r *http.Request, logMessageBuilder *strings.Builder) {
	var req UpsertOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, logMessageBuilder, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Category == "" || req.Value == "" || req.Label == "" {
		utils.RespondError(w, logMessageBuilder, "category, value and label are required", http.StatusBadRequest)
		return
	}

	opt, err := optionCatalog.AddOrUpdate(r.Context(), req.Category, req.Value, req.Label, req.Metadata)
	if err != nil {
		utils.RespondError(w, logMessageBuilder, fmt.Sprintf("Failed to save option: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(logMessageBuilder, fmt.Sprintf("Upserted option %s:%s", opt.Category, opt.Value))
	utils.RespondJSON(w, http.StatusOK, opt)
}

// TrendingOptionsHandler returns the most-used options of a category.
func TrendingOptionsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Trending Options API]")
	initServices()

	if r.Method != http.MethodGet {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		utils.RespondError(w, &logMessageBuilder, "category query parameter is required", http.StatusBadRequest)
		return
	}

	limit := 10
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	options, err := optionCatalog.GetMostUsed(r.Context(), category, limit)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to load trending options: %v", err), http.StatusInternalServerError)
		return
	}
	if options == nil {
		options = []models.Option{}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"trending": options,
	})
}
