package api

import (
	"context"
	"sync"

	"github.com/raushankrgupta/fitly-ai/analysis"
	"github.com/raushankrgupta/fitly-ai/catalog"
	"github.com/raushankrgupta/fitly-ai/config"
	"github.com/raushankrgupta/fitly-ai/flows"
	"github.com/raushankrgupta/fitly-ai/generation"
	"github.com/raushankrgupta/fitly-ai/models"
	"github.com/raushankrgupta/fitly-ai/prompt"
	"github.com/raushankrgupta/fitly-ai/recommend"
	"github.com/raushankrgupta/fitly-ai/utils"
)

// Shared service singletons. Built lazily because config and the Mongo client
// are only ready after main() runs LoadConfig and ConnectMongo.
var (
	servicesOnce  sync.Once
	optionCatalog *catalog.Catalog
	flowStore     *flows.Store
	assembler     *prompt.Assembler
	chain         *analysis.Chain
	vision        *analysis.VisionAnalyzer
	engine        *recommend.Engine
	orchestrator  *generation.Orchestrator
	videoChain    *generation.VideoChain
	behavior      *analysis.BehaviorAnalyzer
)

func initServices() {
	servicesOnce.Do(func() {
		optionCatalog = catalog.NewCatalog(
			catalog.NewMongoStore(utils.GetCollection(config.DBName, "prompt_options")))
		flowStore = flows.NewStore(utils.GetCollection(config.DBName, "generation_flows"))
		assembler = prompt.NewAssembler(optionCatalog.PromptSource())
		chain = analysis.NewChain(
			analysis.NewGeminiProvider(config.GeminiAPIKey),
			analysis.NewHuggingFaceProvider(config.HuggingFaceAPIKey),
		)
		vision = analysis.NewVisionAnalyzer(config.GeminiAPIKey)
		engine = recommend.NewEngine(&catalogPresets{optionCatalog}, flowStore, nil)
		orchestrator = generation.NewOrchestrator(
			generation.NewGeminiImageProvider(config.GeminiAPIKey),
			generation.NewChromeDPProvider(config.WebStudioURL),
			generation.NewSeleniumProvider(config.WebStudioURL, config.ChromeDriverPath),
		)
		videoChain = generation.NewVideoChain(
			generation.NewGeminiMotionAnalyzer(config.GeminiAPIKey))
		behavior = analysis.NewBehaviorAnalyzer(config.GeminiAPIKey)
	})
}

// catalogPresets feeds the recommendation engine candidate options from the
// preset-bearing categories.
type catalogPresets struct {
	c *catalog.Catalog
}

var presetCategories = []string{
	models.CategoryStyle,
	models.CategoryScene,
	models.CategoryMood,
	models.CategoryLighting,
}

func (p *catalogPresets) Candidates(ctx context.Context) ([]models.Option, error) {
	var candidates []models.Option
	for _, category := range presetCategories {
		opts, err := p.c.GetByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, opts...)
	}
	return candidates, nil
}
