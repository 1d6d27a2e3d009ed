package api

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/raushankrgupta/fitly-ai/flows"
	"github.com/raushankrgupta/fitly-ai/models"
	"github.com/raushankrgupta/fitly-ai/utils"
)

// FlowHistoryResponse is the paginated history payload.
type FlowHistoryResponse struct {
	Flows       []models.Flow `json:"flows"`
	Total       int64         `json:"total"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}

// FlowsHandler returns the signed-in user's generation history, newest first.
func FlowsHandler(w http.ResponseWriter, r *http.Request) {
	initServices()
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	page := 1
	limit := 10
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	total, err := flowStore.CountForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}

	history, err := flowStore.UserHistory(r.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		http.Error(w, "Failed to fetch data", http.StatusInternalServerError)
		return
	}

	// Stored keys become presigned URLs for the client.
	for i := range history {
		for j := range history[i].Image.Images {
			img := &history[i].Image.Images[j]
			if img.Path != "" {
				img.URL = presignIfKey(r.Context(), img.Path)
			}
		}
		history[i].CharacterImage = presignIfKey(r.Context(), history[i].CharacterImage)
		history[i].ProductImage = presignIfKey(r.Context(), history[i].ProductImage)
		if history[i].Feedback != nil {
			history[i].Feedback.Screenshots = utils.PresignImageURLs(r.Context(), history[i].Feedback.Screenshots)
		}
	}

	if history == nil {
		history = []models.Flow{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	utils.RespondJSON(w, http.StatusOK, FlowHistoryResponse{
		Flows:       history,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

// FlowFeedbackHandler attaches ratings, a comment and optional screenshots to
// one of the user's flows. Multipart so screenshots upload in the same call.
func FlowFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	logMessageBuilder := strings.Builder{}
	utils.AddToLogMessage(&logMessageBuilder, "[Flow Feedback API]")
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	initServices()

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	flowID := r.FormValue("flow_id")
	if flowID == "" {
		utils.RespondError(w, &logMessageBuilder, "flow_id is required", http.StatusBadRequest)
		return
	}

	feedback := models.FlowFeedback{Comment: r.FormValue("comment")}
	if v, err := strconv.Atoi(r.FormValue("image_rating")); err == nil {
		feedback.ImageRating = v
	}
	if v, err := strconv.Atoi(r.FormValue("video_rating")); err == nil {
		feedback.VideoRating = v
	}

	if r.MultipartForm != nil {
		for _, file := range r.MultipartForm.File["screenshots"] {
			f, err := file.Open()
			if err != nil {
				utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error opening file %s", file.Filename), http.StatusInternalServerError)
				return
			}
			defer f.Close()

			ext := filepath.Ext(file.Filename)
			objectKey := fmt.Sprintf("feedback/%s/%s%s", userID, uuid.New().String(), ext)

			path, err := utils.UploadFileToS3(context.TODO(), f, objectKey, file.Header.Get("Content-Type"))
			if err != nil {
				utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error uploading file %s", file.Filename), http.StatusInternalServerError)
				return
			}
			feedback.Screenshots = append(feedback.Screenshots, path)
		}
	}

	if err := flowStore.SetFeedback(r.Context(), flowID, userID, feedback); err != nil {
		switch err {
		case flows.ErrInvalidRating:
			utils.RespondError(w, &logMessageBuilder, "Ratings must be between 1 and 5", http.StatusBadRequest)
		case flows.ErrNotFound:
			utils.RespondError(w, &logMessageBuilder, "Flow not found", http.StatusNotFound)
		default:
			utils.RespondError(w, &logMessageBuilder, "Error saving feedback", http.StatusInternalServerError)
		}
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Feedback saved for flow %s", flowID))
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"message": "Feedback submitted successfully"})
}
