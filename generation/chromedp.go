package generation

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// Selectors of the hosted web studio UI driven by the browser providers.
const (
	studioPromptSelector   = "textarea#prompt"
	studioNegativeSelector = "textarea#negative-prompt"
	studioGenerateSelector = "button#generate"
	studioResultSelector   = "img.generation-result"
)

// ChromeDPProvider drives the hosted web studio through a headless Chrome
// session. Used when no direct API provider is available for an account.
type ChromeDPProvider struct {
	StudioURL string
}

func NewChromeDPProvider(studioURL string) *ChromeDPProvider {
	return &ChromeDPProvider{StudioURL: studioURL}
}

func (p *ChromeDPProvider) Name() string { return "web-studio-chromedp" }

func (p *ChromeDPProvider) Available() bool { return p.StudioURL != "" }

func (p *ChromeDPProvider) GenerateImage(ctx context.Context, prompt, negative string, opts Options) ([]Image, error) {
	browserOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, browserOpts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	headers := map[string]interface{}{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	}
	if err := chromedp.Run(taskCtx, network.SetExtraHTTPHeaders(network.Headers(headers))); err != nil {
		return nil, fmt.Errorf("chromedp header error: %w", err)
	}

	tasks := chromedp.Tasks{
		chromedp.Navigate(p.StudioURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.SendKeys(studioPromptSelector, prompt, chromedp.ByQuery),
	}
	if negative != "" {
		tasks = append(tasks, chromedp.SendKeys(studioNegativeSelector, negative, chromedp.ByQuery))
	}
	tasks = append(tasks,
		chromedp.Click(studioGenerateSelector, chromedp.ByQuery),
		chromedp.Sleep(time.Duration(5+rand.Float64()*5)*time.Second),
		chromedp.WaitVisible(studioResultSelector, chromedp.ByQuery),
	)

	var htmlContent string
	tasks = append(tasks, chromedp.OuterHTML("html", &htmlContent))

	if err := chromedp.Run(taskCtx, tasks...); err != nil {
		return nil, fmt.Errorf("chromedp navigation error: %w", err)
	}

	return downloadResultImages(htmlContent, opts.ImageCount)
}

// downloadResultImages pulls the rendered result images out of the studio
// page and fetches their bytes.
func downloadResultImages(htmlContent string, limit int) ([]Image, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parsing studio page: %w", err)
	}

	var images []Image
	doc.Find(studioResultSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			return true
		}
		data, err := fetchImage(src)
		if err != nil {
			return true
		}
		images = append(images, Image{Data: data, Format: imageFormat(src)})
		return limit <= 0 || len(images) < limit
	})

	if len(images) == 0 {
		return nil, fmt.Errorf("studio page contained no downloadable results")
	}
	return images, nil
}

func imageFormat(src string) string {
	src = strings.ToLower(src)
	switch {
	case strings.Contains(src, ".jpg"), strings.Contains(src, ".jpeg"):
		return "jpeg"
	case strings.Contains(src, ".webp"):
		return "webp"
	default:
		return "png"
	}
}
