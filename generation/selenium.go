package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// SeleniumProvider drives the web studio through chromedriver. It is the
// fallback browser driver for environments where the bundled Chrome used by
// chromedp is unavailable.
type SeleniumProvider struct {
	StudioURL  string
	DriverPath string
}

func NewSeleniumProvider(studioURL, driverPath string) *SeleniumProvider {
	return &SeleniumProvider{StudioURL: studioURL, DriverPath: driverPath}
}

func (p *SeleniumProvider) Name() string { return "web-studio-selenium" }

func (p *SeleniumProvider) Available() bool {
	return p.StudioURL != "" && p.DriverPath != ""
}

func (p *SeleniumProvider) GenerateImage(ctx context.Context, prompt, negative string, opts Options) ([]Image, error) {
	InitPortManager(4444, 16)

	port, err := globalPortManager.GetPort()
	if err != nil {
		return nil, fmt.Errorf("port error: %w", err)
	}
	defer globalPortManager.ReleasePort(port)

	service, err := selenium.NewChromeDriverService(p.DriverPath, port)
	if err != nil {
		return nil, fmt.Errorf("error starting Chrome driver service: %v", err)
	}
	defer service.Stop()

	caps := selenium.Capabilities{"browserName": "chrome"}
	userAgent := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-blink-features=AutomationControlled",
			"--disable-extensions",
			"--disable-gpu",
			"--window-size=1920,1080",
			fmt.Sprintf("--user-agent=%s", userAgent),
		},
		ExcludeSwitches: []string{"enable-automation"},
		Prefs: map[string]interface{}{
			"profile.default_content_setting_values.notifications": 2,
		},
	})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return nil, fmt.Errorf("error creating WebDriver: %v", err)
	}
	defer driver.Quit()

	maskScript := `
        Object.defineProperty(navigator, 'webdriver', {get: () => undefined});
        window.chrome = {runtime: {}};
    `

	driver.SetPageLoadTimeout(60 * time.Second)
	if err := driver.Get(p.StudioURL); err != nil {
		return nil, fmt.Errorf("navigation error: %w", err)
	}
	driver.ExecuteScript(maskScript, nil)

	promptField, err := driver.FindElement(selenium.ByCSSSelector, studioPromptSelector)
	if err != nil {
		return nil, fmt.Errorf("prompt field not found: %v", err)
	}
	if err := promptField.SendKeys(prompt); err != nil {
		return nil, fmt.Errorf("filling prompt: %v", err)
	}

	if negative != "" {
		if field, err := driver.FindElement(selenium.ByCSSSelector, studioNegativeSelector); err == nil {
			field.SendKeys(negative)
		}
	}

	generate, err := driver.FindElement(selenium.ByCSSSelector, studioGenerateSelector)
	if err != nil {
		return nil, fmt.Errorf("generate button not found: %v", err)
	}
	if err := generate.Click(); err != nil {
		return nil, fmt.Errorf("clicking generate: %v", err)
	}

	// Poll for the result instead of a fixed sleep; studio renders can take
	// most of a minute under load.
	deadline := time.Now().Add(2 * time.Minute)
	for {
		if _, err := driver.FindElement(selenium.ByCSSSelector, studioResultSelector); err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for generation result")
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		time.Sleep(2 * time.Second)
	}

	html, err := driver.PageSource()
	if err != nil {
		return nil, fmt.Errorf("page source error: %w", err)
	}
	return downloadResultImages(html, opts.ImageCount)
}
