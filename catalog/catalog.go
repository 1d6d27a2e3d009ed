package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/raushankrgupta/fitly-ai/models"
)

// Catalog is the categorized store of reusable prompt options. It is safe for
// concurrent use as long as the underlying Store is.
type Catalog struct {
	store Store
}

// NewCatalog builds a catalog over the given store.
func NewCatalog(store Store) *Catalog {
	return &Catalog{store: store}
}

// NormalizeValue turns free text into the machine key form: lowercase,
// trimmed, any run of whitespace collapsed to a single hyphen.
// "Soft Daylight" -> "soft-daylight".
func NormalizeValue(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(text))), "-")
}

// TitleCaseLabel builds a display label from a normalized value:
// hyphen-split, each token capitalized. "soft-daylight" -> "Soft Daylight".
func TitleCaseLabel(value string) string {
	tokens := strings.Split(value, "-")
	for i, token := range tokens {
		if token == "" {
			continue
		}
		tokens[i] = strings.ToUpper(token[:1]) + token[1:]
	}
	return strings.Join(tokens, " ")
}

// GetByCategory returns the active options for a category, highest usage
// first.
func (c *Catalog) GetByCategory(ctx context.Context, category string) ([]models.Option, error) {
	return c.store.Find(ctx, category, 0)
}

// GetMostUsed returns up to limit active options ranked by usage.
func (c *Catalog) GetMostUsed(ctx context.Context, category string, limit int) ([]models.Option, error) {
	return c.store.Find(ctx, category, limit)
}

// Lookup fetches a single option, ErrNotFound when absent.
func (c *Catalog) Lookup(ctx context.Context, category, value string) (*models.Option, error) {
	return c.store.FindOne(ctx, category, value)
}

// AddOrUpdate upserts an option keyed on (category, value). On update the
// label is refreshed and metadata merged; IsAiGenerated and UsageCount are
// only ever set on insert.
func (c *Catalog) AddOrUpdate(ctx context.Context, category, value, label string, metadata map[string]string) (*models.Option, error) {
	value = NormalizeValue(value)
	if category == "" || value == "" {
		return nil, fmt.Errorf("category and value are required")
	}

	existing, err := c.store.FindOne(ctx, category, value)
	if err != nil && err != ErrNotFound {
		return nil, err
	}

	if existing != nil {
		existing.Label = label
		if len(metadata) > 0 {
			if existing.TechnicalDetails == nil {
				existing.TechnicalDetails = make(map[string]string, len(metadata))
			}
			for k, v := range metadata {
				existing.TechnicalDetails[k] = v
			}
		}
		if err := c.store.Replace(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	now := time.Now()
	opt := &models.Option{
		Category:         category,
		Value:            value,
		Label:            label,
		Description:      label,
		Keywords:         []string{strings.ToLower(label)},
		TechnicalDetails: metadata,
		IsAiGenerated:    true,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := c.insertOrRelookup(ctx, opt); err != nil {
		return nil, err
	}
	return opt, nil
}

// FindOrCreate normalizes freeText and returns the matching option, creating
// it lazily when the recommendation engine proposes a value the catalog has
// never seen. Idempotent: equivalent text always resolves to the same option.
func (c *Catalog) FindOrCreate(ctx context.Context, category, freeText string) (*models.Option, error) {
	value := NormalizeValue(freeText)
	if category == "" || value == "" {
		return nil, fmt.Errorf("category and a non-empty value are required")
	}

	existing, err := c.store.FindOne(ctx, category, value)
	if err == nil {
		return existing, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	now := time.Now()
	opt := &models.Option{
		Category:      category,
		Value:         value,
		Label:         TitleCaseLabel(value),
		Source:        "ai-analysis",
		IsAiGenerated: true,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := c.insertOrRelookup(ctx, opt); err != nil {
		return nil, err
	}
	// insertOrRelookup may have swapped in the concurrently created document
	return c.store.FindOne(ctx, category, value)
}

// insertOrRelookup inserts the option, degrading a duplicate-key race to a
// plain lookup so concurrent creators never see a fatal error.
func (c *Catalog) insertOrRelookup(ctx context.Context, opt *models.Option) error {
	err := c.store.Insert(ctx, opt)
	if err == ErrDuplicate {
		winner, lookupErr := c.store.FindOne(ctx, opt.Category, opt.Value)
		if lookupErr != nil {
			return fmt.Errorf("duplicate option %s:%s but lookup failed: %v", opt.Category, opt.Value, lookupErr)
		}
		*opt = *winner
		return nil
	}
	return err
}

// PromptSource adapts the catalog to the prompt assembler's lookup shape.
// Store errors degrade to a miss: prompt building never fails on a flaky
// option read, it just loses the suggestion text.
type PromptSource struct {
	c *Catalog
}

func (c *Catalog) PromptSource() *PromptSource {
	return &PromptSource{c: c}
}

func (s *PromptSource) Lookup(ctx context.Context, category, value string) (*models.Option, bool) {
	opt, err := s.c.Lookup(ctx, category, value)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("option lookup failed for %s:%s: %v", category, value, err)
		}
		return nil, false
	}
	return opt, true
}

// MostUsedValue returns the value of the category's most-used active option.
// Misses and store errors both report false.
func (c *Catalog) MostUsedValue(ctx context.Context, category string) (string, bool) {
	opts, err := c.store.Find(ctx, category, 1)
	if err != nil || len(opts) == 0 {
		return "", false
	}
	return opts[0].Value, true
}

// IncrementUsage bumps the usage counter immediately.
func (c *Catalog) IncrementUsage(ctx context.Context, category, value string) error {
	return c.store.IncrementUsage(ctx, category, value)
}

// BumpUsage increments usage counters in the background. The request path
// never waits on this and a failed bump is only logged.
func (c *Catalog) BumpUsage(category string, values ...string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, value := range values {
			if value == "" {
				continue
			}
			if err := c.store.IncrementUsage(ctx, category, value); err != nil {
				log.Printf("usage bump failed for %s:%s: %v", category, value, err)
			}
		}
	}()
}
