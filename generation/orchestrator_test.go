package generation

import (
	"context"
	"fmt"
	"testing"
)

type fakeImageProvider struct {
	name      string
	available bool
	images    []Image
	err       error
	calls     int
}

func (f *fakeImageProvider) Name() string    { return f.name }
func (f *fakeImageProvider) Available() bool { return f.available }
func (f *fakeImageProvider) GenerateImage(ctx context.Context, prompt, negative string, opts Options) ([]Image, error) {
	f.calls++
	return f.images, f.err
}

func TestOrchestratorFirstAvailableWins(t *testing.T) {
	primary := &fakeImageProvider{name: "primary", available: true, images: []Image{{Data: []byte("a")}}}
	secondary := &fakeImageProvider{name: "secondary", available: true, images: []Image{{Data: []byte("b")}}}
	o := NewOrchestrator(primary, secondary)

	images, provider, err := o.Generate(context.Background(), "prompt", "", Options{ImageCount: 1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if provider != "primary" {
		t.Errorf("provider = %q, want primary", provider)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.calls)
	}
	if len(images) != 1 || images[0].Provider != "primary" {
		t.Errorf("images not tagged with provider: %+v", images)
	}
}

func TestOrchestratorSkipsUnavailableAndFailing(t *testing.T) {
	down := &fakeImageProvider{name: "down", available: false}
	failing := &fakeImageProvider{name: "failing", available: true, err: fmt.Errorf("quota exceeded")}
	empty := &fakeImageProvider{name: "empty", available: true}
	working := &fakeImageProvider{name: "working", available: true, images: []Image{{Data: []byte("x")}}}
	o := NewOrchestrator(down, failing, empty, working)

	var failures []string
	o.OnProviderFailure = func(provider string, err error) {
		failures = append(failures, provider)
	}

	_, provider, err := o.Generate(context.Background(), "prompt", "", Options{})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if provider != "working" {
		t.Errorf("provider = %q, want working", provider)
	}
	if down.calls != 0 {
		t.Error("unavailable provider should never be called")
	}
	// Both the erroring provider and the empty-result provider count as
	// failures before the chain moves on.
	if len(failures) != 2 || failures[0] != "failing" || failures[1] != "empty" {
		t.Errorf("failures = %v, want [failing empty]", failures)
	}
}

func TestOrchestratorAllProvidersFail(t *testing.T) {
	failing := &fakeImageProvider{name: "failing", available: true, err: fmt.Errorf("boom")}
	o := NewOrchestrator(failing)

	if _, _, err := o.Generate(context.Background(), "prompt", "", Options{}); err == nil {
		t.Fatal("expected error when every provider fails")
	}

	if _, _, err := NewOrchestrator().Generate(context.Background(), "prompt", "", Options{}); err == nil {
		t.Fatal("expected error with no providers configured")
	}
}

func TestOrchestratorEmptyPrompt(t *testing.T) {
	working := &fakeImageProvider{name: "working", available: true, images: []Image{{}}}
	o := NewOrchestrator(working)

	if _, _, err := o.Generate(context.Background(), "", "", Options{}); err == nil {
		t.Fatal("expected error for empty prompt")
	}
	if working.calls != 0 {
		t.Error("provider should not run for an empty prompt")
	}
}

type fakeVideoProvider struct {
	name      string
	available bool
	result    *VideoResult
	err       error
}

func (f *fakeVideoProvider) Name() string    { return f.name }
func (f *fakeVideoProvider) Available() bool { return f.available }
func (f *fakeVideoProvider) GenerateVideo(ctx context.Context, prompt string, req VideoRequest) (*VideoResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeMotion MotionAnalysis

func (f fakeMotion) AnalyzeMotion(ctx context.Context, imageURL string) (*MotionAnalysis, error) {
	m := MotionAnalysis(f)
	return &m, nil
}

func TestVideoChainBuildsPromptFromMotion(t *testing.T) {
	provider := &fakeVideoProvider{name: "studio", available: true, result: &VideoResult{VideoURL: "https://cdn/video.mp4"}}
	chain := NewVideoChain(fakeMotion{Motion: "slow turn", Camera: "dolly in", Lighting: "steady"}, provider)

	result, err := chain.Generate(context.Background(), VideoRequest{SourceImageURL: "https://cdn/img.png", UserPrompt: "model walks forward"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	want := "model walks forward. Motion: slow turn. Camera: dolly in. Lighting: steady"
	if result.Prompt != want {
		t.Errorf("prompt = %q, want %q", result.Prompt, want)
	}
	if result.Provider != "studio" || result.VideoURL != "https://cdn/video.mp4" {
		t.Errorf("result = %+v", result)
	}
}

func TestVideoChainFallsThroughProviders(t *testing.T) {
	failing := &fakeVideoProvider{name: "a", available: true, err: fmt.Errorf("down")}
	working := &fakeVideoProvider{name: "b", available: true, result: &VideoResult{VideoURL: "u"}}
	chain := NewVideoChain(nil, failing, working)

	result, err := chain.Generate(context.Background(), VideoRequest{UserPrompt: "walk"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if result.Provider != "b" {
		t.Errorf("provider = %q, want b", result.Provider)
	}
}
