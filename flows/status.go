package flows

import "github.com/raushankrgupta/fitly-ai/models"

// DeriveOverallStatus collapses the two phase statuses into the single status
// shown on history cards. A failure in either phase always surfaces as failed,
// even when the other phase completed.
func DeriveOverallStatus(image string, video *string) string {
	if image == models.ImageStatusFailed {
		return models.FlowStatusFailed
	}
	if video != nil && *video == models.VideoStatusFailed {
		return models.FlowStatusFailed
	}

	switch image {
	case models.ImageStatusPending:
		return models.FlowStatusDraft
	case models.ImageStatusAnalyzing, models.ImageStatusGenerating:
		return models.FlowStatusImageGenerating
	}

	// Image phase completed; the video phase decides the rest.
	if video == nil || *video == models.VideoStatusPending {
		return models.FlowStatusImageCompleted
	}
	if *video == models.VideoStatusCompleted {
		return models.FlowStatusCompleted
	}
	return models.FlowStatusVideoGenerating
}

// OverallStatusOf is the convenience form for a loaded flow document.
func OverallStatusOf(flow *models.Flow) string {
	var video *string
	if flow.Video != nil {
		video = &flow.Video.Status
	}
	return DeriveOverallStatus(flow.Image.Status, video)
}
