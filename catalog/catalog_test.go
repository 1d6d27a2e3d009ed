package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/raushankrgupta/fitly-ai/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	mu   sync.Mutex
	docs map[string]*models.Option
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]*models.Option)}
}

func key(category, value string) string { return category + "|" + value }

func (s *memStore) FindOne(ctx context.Context, category, value string) (*models.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if opt, ok := s.docs[key(category, value)]; ok {
		copied := *opt
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (s *memStore) Find(ctx context.Context, category string, limit int) ([]models.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Option
	for _, opt := range s.docs {
		if opt.Category == category && opt.IsActive {
			out = append(out, *opt)
		}
	}
	return out, nil
}

func (s *memStore) Insert(ctx context.Context, opt *models.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(opt.Category, opt.Value)
	if _, exists := s.docs[k]; exists {
		return ErrDuplicate
	}
	opt.ID = primitive.NewObjectID()
	copied := *opt
	s.docs[k] = &copied
	return nil
}

func (s *memStore) Replace(ctx context.Context, opt *models.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *opt
	s.docs[key(opt.Category, opt.Value)] = &copied
	return nil
}

func (s *memStore) IncrementUsage(ctx context.Context, category, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if opt, ok := s.docs[key(category, value)]; ok {
		opt.UsageCount++
	}
	return nil
}

func TestNormalizeValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Soft Daylight", "soft-daylight"},
		{"  Soft   Daylight  ", "soft-daylight"},
		{"STUDIO", "studio"},
		{"golden hour light", "golden-hour-light"},
		{"already-normalized", "already-normalized"},
	}
	for _, c := range cases {
		if got := NormalizeValue(c.in); got != c.want {
			t.Errorf("NormalizeValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTitleCaseLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"soft-daylight", "Soft Daylight"},
		{"studio", "Studio"},
		{"golden-hour-light", "Golden Hour Light"},
	}
	for _, c := range cases {
		if got := TitleCaseLabel(c.in); got != c.want {
			t.Errorf("TitleCaseLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFindOrCreateIdempotent(t *testing.T) {
	cat := NewCatalog(newMemStore())
	ctx := context.Background()

	first, err := cat.FindOrCreate(ctx, "scene", "Soft Daylight")
	if err != nil {
		t.Fatalf("first FindOrCreate failed: %v", err)
	}
	if first.Value != "soft-daylight" {
		t.Errorf("stored value = %q, want %q", first.Value, "soft-daylight")
	}
	if first.Label != "Soft Daylight" {
		t.Errorf("label = %q, want %q", first.Label, "Soft Daylight")
	}
	if !first.IsAiGenerated || first.Source != "ai-analysis" {
		t.Errorf("lazily created option should be marked ai-generated with source ai-analysis")
	}

	second, err := cat.FindOrCreate(ctx, "scene", "  soft   daylight ")
	if err != nil {
		t.Fatalf("second FindOrCreate failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same option id on repeat call, got %s and %s", first.ID.Hex(), second.ID.Hex())
	}

	all, _ := cat.GetByCategory(ctx, "scene")
	if len(all) != 1 {
		t.Errorf("expected 1 option after two equivalent calls, got %d", len(all))
	}
}

func TestFindOrCreateDuplicateRace(t *testing.T) {
	store := newMemStore()
	cat := NewCatalog(store)
	ctx := context.Background()

	// Simulate a concurrent creator winning the insert.
	winner := &models.Option{Category: "scene", Value: "rooftop", Label: "Rooftop", IsActive: true}
	if err := store.Insert(ctx, winner); err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}

	got, err := cat.FindOrCreate(ctx, "scene", "Rooftop")
	if err != nil {
		t.Fatalf("FindOrCreate after race failed: %v", err)
	}
	if got.ID != winner.ID {
		t.Errorf("expected the concurrently created option, got a different document")
	}
}

func TestAddOrUpdateKeepsInsertOnlyFields(t *testing.T) {
	cat := NewCatalog(newMemStore())
	ctx := context.Background()

	created, err := cat.AddOrUpdate(ctx, "lighting", "golden hour", "Golden Hour", map[string]string{"color_temp": "3200K"})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if created.Value != "golden-hour" {
		t.Errorf("value = %q, want normalized %q", created.Value, "golden-hour")
	}
	if !created.IsAiGenerated {
		t.Errorf("IsAiGenerated should be set on insert")
	}

	if err := cat.IncrementUsage(ctx, "lighting", "golden-hour"); err != nil {
		t.Fatalf("increment failed: %v", err)
	}

	updated, err := cat.AddOrUpdate(ctx, "lighting", "golden-hour", "Golden Hour Glow", map[string]string{"direction": "low angle"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Label != "Golden Hour Glow" {
		t.Errorf("label not refreshed on update")
	}
	if updated.UsageCount != 1 {
		t.Errorf("usage count touched on update: got %d, want 1", updated.UsageCount)
	}
	if updated.TechnicalDetails["color_temp"] != "3200K" || updated.TechnicalDetails["direction"] != "low angle" {
		t.Errorf("metadata not merged: %v", updated.TechnicalDetails)
	}
}
