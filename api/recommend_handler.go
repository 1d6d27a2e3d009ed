package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/fitly-ai/recommend"
	"github.com/raushankrgupta/fitly-ai/utils"
)

// RecommendationsHandler returns per-category option suggestions for the
// given analysis text plus personalized presets for the signed-in user.
func RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Recommendations API]")
	initServices()

	if r.Method != http.MethodGet {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	analysisText := r.URL.Query().Get("analysis")
	suggestions := recommend.SuggestOptionsWithUsage(r.Context(), analysisText, optionCatalog)

	reqContext := map[string]string{}
	if useCase := r.URL.Query().Get("use_case"); useCase != "" {
		reqContext["use_case"] = useCase
	}

	presets, err := engine.PersonalizedPresets(r.Context(), userID, reqContext)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Preset scoring failed, using defaults: %v", err))
		presets = recommend.DefaultPresets()
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Returning %d suggestions, %d presets", len(suggestions), len(presets)))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
		"presets":     presets,
	})
}
