package flows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raushankrgupta/fitly-ai/analysis"
	"github.com/raushankrgupta/fitly-ai/models"
	"github.com/raushankrgupta/fitly-ai/recommend"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no flow matches the requested id.
var ErrNotFound = errors.New("flow not found")

// ErrInvalidRating is returned when a feedback rating falls outside 1-5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Store persists generation flows in a MongoDB collection. Besides the flow
// CRUD it implements analysis.SubjectSource and recommend.ActivitySource, so
// the batch analyzer and the recommendation engine read straight from the
// same history collection.
type Store struct {
	col *mongo.Collection
}

// NewStore wraps a collection handle, typically
// utils.GetCollection(config.DBName, "generation_flows").
func NewStore(col *mongo.Collection) *Store {
	return &Store{col: col}
}

// Create inserts a new flow in draft state and returns it with its id set.
func (s *Store) Create(ctx context.Context, flow *models.Flow) (*models.Flow, error) {
	now := time.Now()
	flow.ID = primitive.NewObjectID()
	flow.CreatedAt = now
	flow.UpdatedAt = now
	if flow.Image.Status == "" {
		flow.Image.Status = models.ImageStatusPending
	}
	flow.OverallStatus = OverallStatusOf(flow)

	if _, err := s.col.InsertOne(ctx, flow); err != nil {
		return nil, fmt.Errorf("failed to create flow: %v", err)
	}
	return flow, nil
}

// Get loads one flow by id.
func (s *Store) Get(ctx context.Context, id string) (*models.Flow, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid flow id %q: %v", id, err)
	}

	var flow models.Flow
	err = s.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&flow)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load flow %s: %v", id, err)
	}
	return &flow, nil
}

// GetForUser loads one flow and verifies ownership in the same query, so a
// user can never read another user's flow by guessing ids.
func (s *Store) GetForUser(ctx context.Context, id, userID string) (*models.Flow, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid flow id %q: %v", id, err)
	}

	var flow models.Flow
	err = s.col.FindOne(ctx, bson.M{"_id": objID, "user_id": userID}).Decode(&flow)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load flow %s: %v", id, err)
	}
	return &flow, nil
}

// UpdateImagePhase replaces the image phase, rederives the overall status and
// refreshes updated_at.
func (s *Store) UpdateImagePhase(ctx context.Context, id string, phase models.ImagePhase, video *models.VideoPhase) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid flow id %q: %v", id, err)
	}

	var videoStatus *string
	if video != nil {
		videoStatus = &video.Status
	}
	update := bson.M{"$set": bson.M{
		"image_generation": phase,
		"overall_status":   DeriveOverallStatus(phase.Status, videoStatus),
		"updated_at":       time.Now(),
	}}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update image phase for %s: %v", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateVideoPhase replaces the video phase on a flow whose image phase is
// already done, rederiving the overall status.
func (s *Store) UpdateVideoPhase(ctx context.Context, id string, phase models.VideoPhase) error {
	flow, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"video_generation": phase,
		"overall_status":   DeriveOverallStatus(flow.Image.Status, &phase.Status),
		"updated_at":       time.Now(),
	}}

	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": flow.ID}, update); err != nil {
		return fmt.Errorf("failed to update video phase for %s: %v", id, err)
	}
	return nil
}

// SaveImages records the rendered results and marks the image phase completed.
func (s *Store) SaveImages(ctx context.Context, id string, images []models.GeneratedImage, provider string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid flow id %q: %v", id, err)
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"image_generation.status":       models.ImageStatusCompleted,
		"image_generation.images":       images,
		"image_generation.completed_at": now,
		"metadata.provider":             provider,
		"overall_status":                models.FlowStatusImageCompleted,
		"updated_at":                    now,
	}}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to save images for %s: %v", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkImageFailed records the error and flips the flow to failed.
func (s *Store) MarkImageFailed(ctx context.Context, id string, genErr error) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid flow id %q: %v", id, err)
	}

	update := bson.M{"$set": bson.M{
		"image_generation.status": models.ImageStatusFailed,
		"image_generation.error":  genErr.Error(),
		"overall_status":          models.FlowStatusFailed,
		"updated_at":              time.Now(),
	}}

	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": objID}, update); err != nil {
		return fmt.Errorf("failed to mark flow %s failed: %v", id, err)
	}
	return nil
}

// SetFeedback attaches user feedback to a flow the user owns. Zero ratings
// mean "not rated"; non-zero ratings must be 1-5.
func (s *Store) SetFeedback(ctx context.Context, id, userID string, feedback models.FlowFeedback) error {
	if feedback.ImageRating < 0 || feedback.ImageRating > 5 ||
		feedback.VideoRating < 0 || feedback.VideoRating > 5 {
		return ErrInvalidRating
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid flow id %q: %v", id, err)
	}

	feedback.CreatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"feedback":   feedback,
		"updated_at": feedback.CreatedAt,
	}}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": objID, "user_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to save feedback for %s: %v", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UserHistory returns a user's most recent flows, newest first.
func (s *Store) UserHistory(ctx context.Context, userID string, limit, skip int) ([]models.Flow, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}
	if skip > 0 {
		findOpts = findOpts.SetSkip(int64(skip))
	}

	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to query flows for user %s: %v", userID, err)
	}
	defer cursor.Close(ctx)

	var flows []models.Flow
	if err := cursor.All(ctx, &flows); err != nil {
		return nil, fmt.Errorf("failed to decode flows for user %s: %v", userID, err)
	}
	return flows, nil
}

// CountForUser returns how many flows a user has, for history pagination.
func (s *Store) CountForUser(ctx context.Context, userID string) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count flows for user %s: %v", userID, err)
	}
	return count, nil
}

// Subject resolves a flow id to its selected generated image for batch
// analysis. Implements analysis.SubjectSource.
func (s *Store) Subject(ctx context.Context, id string) (*analysis.Subject, error) {
	flow, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(flow.Image.Images) == 0 {
		return nil, fmt.Errorf("flow %s has no generated images", id)
	}

	idx := flow.Image.SelectedImageIndex
	if idx < 0 || idx >= len(flow.Image.Images) {
		idx = 0
	}
	img := flow.Image.Images[idx]

	subject := &analysis.Subject{
		ID:             flow.ID.Hex(),
		Prompt:         flow.Image.Prompt,
		NegativePrompt: flow.Image.NegativePrompt,
		ImageURL:       img.URL,
		Provider:       img.Provider,
		Format:         img.Format,
		Success:        flow.Image.Status == models.ImageStatusCompleted,
		CreatedAt:      img.CreatedAt,
	}
	if flow.Image.DurationMs > 0 {
		subject.GenerationTime = float64(flow.Image.DurationMs) / 1000
	}
	return subject, nil
}

// Activity summarizes a user's recent flows for the recommendation engine.
// Implements recommend.ActivitySource.
func (s *Store) Activity(ctx context.Context, userID string) (*recommend.UserActivity, error) {
	// The last 50 flows are enough signal; older history barely moves the
	// category counts.
	flows, err := s.UserHistory(ctx, userID, 50, 0)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var recent []string
	seen := make(map[string]bool)
	for i, flow := range flows {
		for _, category := range flowCategories(&flow) {
			counts[category]++
			if i < 10 && !seen[category] {
				seen[category] = true
				recent = append(recent, category)
			}
		}
	}

	return &recommend.UserActivity{
		TopCategories:    topCategories(counts, 3),
		RecentCategories: recent,
		TotalGenerations: len(flows),
	}, nil
}

// BehaviorStats aggregates the usage facts the pattern analyzer consumes.
// Success rate only counts flows whose image phase actually finished.
func (s *Store) BehaviorStats(ctx context.Context, userID string) (*analysis.BehaviorStats, error) {
	total, err := s.CountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.UserHistory(ctx, userID, 50, 0)
	if err != nil {
		return nil, err
	}

	var completed, failed, rated int
	counts := make(map[string]int)
	for _, flow := range history {
		switch flow.Image.Status {
		case models.ImageStatusCompleted:
			completed++
		case models.ImageStatusFailed:
			failed++
		}
		if flow.Feedback != nil {
			rated++
		}
		for _, category := range flowCategories(&flow) {
			counts[category]++
		}
	}

	successRate := 0.0
	if completed+failed > 0 {
		successRate = float64(completed) / float64(completed+failed) * 100
	}

	return &analysis.BehaviorStats{
		TotalGenerations: int(total),
		RatedFlows:       rated,
		SuccessRate:      successRate,
		TopCategories:    topCategories(counts, 3),
	}, nil
}

// flowCategories lists the catalog categories a flow actually used.
func flowCategories(flow *models.Flow) []string {
	opts := flow.Image.StyleOptions
	if opts == nil {
		return nil
	}

	pairs := []struct{ category, value string }{
		{models.CategoryScene, opts.Scene},
		{models.CategoryLighting, opts.Lighting},
		{models.CategoryMood, opts.Mood},
		{models.CategoryStyle, opts.Style},
		{models.CategoryColor, opts.ColorPalette},
		{models.CategoryCameraAngle, opts.CameraAngle},
	}

	var categories []string
	for _, p := range pairs {
		if p.value != "" {
			categories = append(categories, p.category)
		}
	}
	return categories
}

func topCategories(counts map[string]int, n int) []string {
	var top []string
	for len(top) < n {
		best, bestCount := "", 0
		for category, count := range counts {
			if count > bestCount || (count == bestCount && bestCount > 0 && category < best) {
				best, bestCount = category, count
			}
		}
		if bestCount == 0 {
			break
		}
		top = append(top, best)
		delete(counts, best)
	}
	return top
}

// EnsureIndexes creates the history and lookup indexes. Called once at
// startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "overall_status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create flow indexes: %v", err)
	}
	return nil
}
