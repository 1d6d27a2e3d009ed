package generation

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Image is one generated candidate image, still in memory. The caller owns
// persistence (S3 upload) and turns these into flow records.
type Image struct {
	Data     []byte
	Format   string
	Provider string
	// Seed is opaque provider metadata; not every provider reports one.
	Seed string
}

// Options carries the per-request generation knobs.
type Options struct {
	CharacterImageURL string
	ProductImageURLs  []string
	ImageCount        int
	AspectRatio       string
}

// ImageProvider generates candidate images for a prompt pair. Providers are
// opaque: an API call and a driven web UI satisfy the same contract.
type ImageProvider interface {
	Name() string
	Available() bool
	GenerateImage(ctx context.Context, prompt, negative string, opts Options) ([]Image, error)
}

// Orchestrator tries image providers in configured order until one returns
// at least one image. A provider error or an empty result moves on to the
// next provider; only full exhaustion fails the generation step.
type Orchestrator struct {
	providers []ImageProvider
	// Timeout bounds each provider attempt. Zero means no per-attempt bound
	// beyond the caller's context.
	Timeout time.Duration
	// OnProviderFailure observes skipped providers. Defaults to log.Printf.
	OnProviderFailure func(provider string, err error)
}

func NewOrchestrator(providers ...ImageProvider) *Orchestrator {
	return &Orchestrator{
		providers: providers,
		Timeout:   5 * time.Minute,
		OnProviderFailure: func(provider string, err error) {
			log.Printf("image provider %s failed: %v", provider, err)
		},
	}
}

// Generate runs the provider chain and returns the images plus the name of
// the provider that produced them.
func (o *Orchestrator) Generate(ctx context.Context, prompt, negative string, opts Options) ([]Image, string, error) {
	if prompt == "" {
		return nil, "", fmt.Errorf("prompt is required")
	}
	if opts.ImageCount <= 0 {
		opts.ImageCount = 1
	}

	var lastErr error
	for _, provider := range o.providers {
		if !provider.Available() {
			continue
		}

		images, err := o.tryProvider(ctx, provider, prompt, negative, opts)
		if err != nil {
			lastErr = err
			if o.OnProviderFailure != nil {
				o.OnProviderFailure(provider.Name(), err)
			}
			if ctx.Err() != nil {
				// The caller's deadline is gone; further providers would
				// fail the same way.
				return nil, "", ctx.Err()
			}
			continue
		}

		for i := range images {
			images[i].Provider = provider.Name()
		}
		return images, provider.Name(), nil
	}

	if lastErr != nil {
		return nil, "", fmt.Errorf("all image providers failed, last error: %v", lastErr)
	}
	return nil, "", fmt.Errorf("no image provider is configured or available")
}

func (o *Orchestrator) tryProvider(ctx context.Context, provider ImageProvider, prompt, negative string, opts Options) ([]Image, error) {
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	images, err := provider.GenerateImage(ctx, prompt, negative, opts)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("provider returned no images")
	}
	return images, nil
}
