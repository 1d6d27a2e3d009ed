package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/fitly-ai/utils"
)

// InsightsHandler returns the signed-in user's usage stats plus the behavior
// profile classified from them.
func InsightsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Insights API]")
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

	stats, err := flowStore.BehaviorStats(r.Context(), userID)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to aggregate stats: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to fetch data", http.StatusInternalServerError)
		return
	}

	profile := behavior.AnalyzePatterns(r.Context(), *stats)

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User %s classified as %s over %d generations", userID, profile.UserType, stats.TotalGenerations))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"stats":   stats,
		"profile": profile,
	})
}
