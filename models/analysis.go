package models

// HairAttributes describes the character's hair as seen in the reference image.
type HairAttributes struct {
	Color  *string `bson:"color,omitempty" json:"color,omitempty"`
	Style  *string `bson:"style,omitempty" json:"style,omitempty"`
	Length *string `bson:"length,omitempty" json:"length,omitempty"`
}

// CharacterAnalysis is the vision-model output for the uploaded person image.
// Every field is optional: an absent attribute is simply left out of the
// prompt, never treated as an error.
type CharacterAnalysis struct {
	Age            *string         `bson:"age,omitempty" json:"age,omitempty"`
	Gender         *string         `bson:"gender,omitempty" json:"gender,omitempty"`
	SkinTone       *string         `bson:"skin_tone,omitempty" json:"skin_tone,omitempty"`
	Hair           *HairAttributes `bson:"hair,omitempty" json:"hair,omitempty"`
	FacialFeatures *string         `bson:"facial_features,omitempty" json:"facial_features,omitempty"`
	BodyType       *string         `bson:"body_type,omitempty" json:"body_type,omitempty"`
	Makeup         *string         `bson:"makeup,omitempty" json:"makeup,omitempty"`
	Expression     *string         `bson:"expression,omitempty" json:"expression,omitempty"`
}

// ProductAnalysis is the vision-model output for the uploaded garment image.
type ProductAnalysis struct {
	GarmentType         *string `bson:"garment_type,omitempty" json:"garment_type,omitempty"`
	DetailedDescription *string `bson:"detailed_description,omitempty" json:"detailed_description,omitempty"`
	StyleCategory       *string `bson:"style_category,omitempty" json:"style_category,omitempty"`
	PrimaryColor        *string `bson:"primary_color,omitempty" json:"primary_color,omitempty"`
	SecondaryColor      *string `bson:"secondary_color,omitempty" json:"secondary_color,omitempty"`
	FabricType          *string `bson:"fabric_type,omitempty" json:"fabric_type,omitempty"`
	Pattern             *string `bson:"pattern,omitempty" json:"pattern,omitempty"`
	FitType             *string `bson:"fit_type,omitempty" json:"fit_type,omitempty"`
	Neckline            *string `bson:"neckline,omitempty" json:"neckline,omitempty"`
	Sleeves             *string `bson:"sleeves,omitempty" json:"sleeves,omitempty"`
	KeyDetails          *string `bson:"key_details,omitempty" json:"key_details,omitempty"`
	Length              *string `bson:"length,omitempty" json:"length,omitempty"`
	Coverage            *string `bson:"coverage,omitempty" json:"coverage,omitempty"`
}

// SelectedOptions carries the style choices the user picked for a generation.
// Empty string means "not selected" for single-value categories.
type SelectedOptions struct {
	Scene               string   `bson:"scene,omitempty" json:"scene,omitempty"`
	Lighting            string   `bson:"lighting,omitempty" json:"lighting,omitempty"`
	Mood                string   `bson:"mood,omitempty" json:"mood,omitempty"`
	Style               string   `bson:"style,omitempty" json:"style,omitempty"`
	ColorPalette        string   `bson:"color_palette,omitempty" json:"color_palette,omitempty"`
	CameraAngle         string   `bson:"camera_angle,omitempty" json:"camera_angle,omitempty"`
	Hairstyle           string   `bson:"hairstyle,omitempty" json:"hairstyle,omitempty"`
	Makeup              string   `bson:"makeup,omitempty" json:"makeup,omitempty"`
	Bottom              string   `bson:"bottom,omitempty" json:"bottom,omitempty"`
	Shoes               string   `bson:"shoes,omitempty" json:"shoes,omitempty"`
	Accessories         []string `bson:"accessories,omitempty" json:"accessories,omitempty"`
	CustomPrompt        string   `bson:"custom_prompt,omitempty" json:"custom_prompt,omitempty"`
	NegativePrompt      string   `bson:"negative_prompt,omitempty" json:"negative_prompt,omitempty"`
	SceneOverridePrompt string   `bson:"scene_override_prompt,omitempty" json:"scene_override_prompt,omitempty"`
	DisableSceneLock    bool     `bson:"disable_scene_lock,omitempty" json:"disable_scene_lock,omitempty"`
	ImageCount          int      `bson:"image_count,omitempty" json:"image_count,omitempty"`
	AspectRatio         string   `bson:"aspect_ratio,omitempty" json:"aspect_ratio,omitempty"`
}
