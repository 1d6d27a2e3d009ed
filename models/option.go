package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Option categories known to the catalog. Different categories can reuse the
// same value, so uniqueness is on (category, value).
const (
	CategoryScene       = "scene"
	CategoryLighting    = "lighting"
	CategoryMood        = "mood"
	CategoryStyle       = "style"
	CategoryColor       = "colorPalette"
	CategoryCameraAngle = "cameraAngle"
	CategoryHairstyle   = "hairstyle"
	CategoryMakeup      = "makeup"
	CategoryBottoms     = "bottoms"
	CategoryShoes       = "shoes"
	CategoryAccessories = "accessories"
	CategoryOuterwear   = "outerwear"
	CategoryUseCase     = "useCase"
)

// Option is a reusable style choice for prompt building (e.g. scene=studio).
// PromptSuggestion carries the natural-language fragment the prompt assembler
// splices in place of the machine value.
type Option struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category            string             `bson:"category" json:"category"`
	Value               string             `bson:"value" json:"value"`
	Label               string             `bson:"label" json:"label"`
	LabelVi             string             `bson:"label_vi,omitempty" json:"label_vi,omitempty"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionVi       string             `bson:"description_vi,omitempty" json:"description_vi,omitempty"`
	PromptSuggestion    string             `bson:"prompt_suggestion,omitempty" json:"prompt_suggestion,omitempty"`
	PromptSuggestionVi  string             `bson:"prompt_suggestion_vi,omitempty" json:"prompt_suggestion_vi,omitempty"`
	SceneLockedPrompt   string             `bson:"scene_locked_prompt,omitempty" json:"scene_locked_prompt,omitempty"`
	SceneLockedPromptVi string             `bson:"scene_locked_prompt_vi,omitempty" json:"scene_locked_prompt_vi,omitempty"`
	UseSceneLock        *bool              `bson:"use_scene_lock,omitempty" json:"use_scene_lock,omitempty"`
	Keywords            []string           `bson:"keywords,omitempty" json:"keywords,omitempty"`
	TechnicalDetails    map[string]string  `bson:"technical_details,omitempty" json:"technical_details,omitempty"`
	PreviewImage        string             `bson:"preview_image,omitempty" json:"preview_image,omitempty"`
	Source              string             `bson:"source,omitempty" json:"source,omitempty"` // "seed" or "ai-analysis"
	IsAiGenerated       bool               `bson:"is_ai_generated" json:"is_ai_generated"`
	UsageCount          int                `bson:"usage_count" json:"usage_count"`
	LastUsed            *time.Time         `bson:"last_used,omitempty" json:"last_used,omitempty"`
	IsActive            bool               `bson:"is_active" json:"is_active"`
	SortOrder           int                `bson:"sort_order" json:"sort_order"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
}
