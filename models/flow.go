package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image generation phase statuses.
const (
	ImageStatusPending    = "pending"
	ImageStatusAnalyzing  = "analyzing"
	ImageStatusGenerating = "generating"
	ImageStatusCompleted  = "completed"
	ImageStatusFailed     = "failed"
)

// Video generation phase statuses.
const (
	VideoStatusPending    = "pending"
	VideoStatusAnalyzing  = "analyzing"
	VideoStatusPrompting  = "prompting"
	VideoStatusGenerating = "generating"
	VideoStatusCompleted  = "completed"
	VideoStatusFailed     = "failed"
)

// Overall flow statuses derived from the two phase statuses.
const (
	FlowStatusDraft           = "draft"
	FlowStatusImageGenerating = "image-generating"
	FlowStatusImageCompleted  = "image-completed"
	FlowStatusVideoGenerating = "video-generating"
	FlowStatusCompleted       = "completed"
	FlowStatusFailed          = "failed"
)

// GeneratedImage is one rendered result inside the image phase.
type GeneratedImage struct {
	Path      string    `bson:"path" json:"path"`
	URL       string    `bson:"url" json:"url"`
	Seed      string    `bson:"seed,omitempty" json:"seed,omitempty"`
	Format    string    `bson:"format,omitempty" json:"format,omitempty"`
	Provider  string    `bson:"provider,omitempty" json:"provider,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ImagePhase tracks the analyze -> prompt -> generate stage of a flow.
type ImagePhase struct {
	Status             string             `bson:"status" json:"status"`
	CharacterAnalysis  *CharacterAnalysis `bson:"character_analysis,omitempty" json:"character_analysis,omitempty"`
	ProductAnalysis    *ProductAnalysis   `bson:"product_analysis,omitempty" json:"product_analysis,omitempty"`
	Prompt             string             `bson:"prompt,omitempty" json:"prompt,omitempty"`
	NegativePrompt     string             `bson:"negative_prompt,omitempty" json:"negative_prompt,omitempty"`
	StyleOptions       *SelectedOptions   `bson:"style_options,omitempty" json:"style_options,omitempty"`
	Images             []GeneratedImage   `bson:"images,omitempty" json:"images,omitempty"`
	SelectedImageIndex int                `bson:"selected_image_index" json:"selected_image_index"`
	StartedAt          *time.Time         `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt        *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	DurationMs         int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	Error              string             `bson:"error,omitempty" json:"error,omitempty"`
}

// VideoPhase tracks the optional image-to-video stage of a flow.
type VideoPhase struct {
	Status           string     `bson:"status" json:"status"`
	SourceImageIndex int        `bson:"source_image_index" json:"source_image_index"`
	UserPrompt       string     `bson:"user_prompt,omitempty" json:"user_prompt,omitempty"`
	MotionAnalysis   string     `bson:"motion_analysis,omitempty" json:"motion_analysis,omitempty"`
	CameraAnalysis   string     `bson:"camera_analysis,omitempty" json:"camera_analysis,omitempty"`
	LightingAnalysis string     `bson:"lighting_analysis,omitempty" json:"lighting_analysis,omitempty"`
	Prompt           string     `bson:"prompt,omitempty" json:"prompt,omitempty"`
	VideoURL         string     `bson:"video_url,omitempty" json:"video_url,omitempty"`
	Provider         string     `bson:"provider,omitempty" json:"provider,omitempty"`
	StartedAt        *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt      *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	DurationMs       int64      `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	Error            string     `bson:"error,omitempty" json:"error,omitempty"`
}

// FlowFeedback holds optional 1-5 star ratings plus a free-text comment.
type FlowFeedback struct {
	ImageRating int       `bson:"image_rating,omitempty" json:"image_rating,omitempty"`
	VideoRating int       `bson:"video_rating,omitempty" json:"video_rating,omitempty"`
	Comment     string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Screenshots []string  `bson:"screenshots,omitempty" json:"screenshots,omitempty"`
	CreatedAt   time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// FlowMetadata aggregates cost/time bookkeeping across both phases.
type FlowMetadata struct {
	TotalDurationMs int64   `bson:"total_duration_ms,omitempty" json:"total_duration_ms,omitempty"`
	TotalCost       float64 `bson:"total_cost,omitempty" json:"total_cost,omitempty"`
	ModelUsed       string  `bson:"model_used,omitempty" json:"model_used,omitempty"`
	Provider        string  `bson:"provider,omitempty" json:"provider,omitempty"`
}

// Flow is one end-to-end user generation session, from upload through image
// generation to optional video generation.
type Flow struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	CharacterImage string             `bson:"character_image" json:"character_image"`
	ProductImage   string             `bson:"product_image" json:"product_image"`
	UseCase        string             `bson:"use_case" json:"use_case"`
	ProductFocus   string             `bson:"product_focus,omitempty" json:"product_focus,omitempty"`
	Language       string             `bson:"language,omitempty" json:"language,omitempty"`
	Image          ImagePhase         `bson:"image_generation" json:"image_generation"`
	Video          *VideoPhase        `bson:"video_generation,omitempty" json:"video_generation,omitempty"`
	OverallStatus  string             `bson:"overall_status" json:"overall_status"`
	Feedback       *FlowFeedback      `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Metadata       FlowMetadata       `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
