package render

import (
    "context"
    "fmt"

    "github.com/alim08/cmc_top/pkg/config"
    "github.com/alim08/cmc_top/pkg/logger"
    "github.com/chromedp/chromedp"
    "go.uber.org/zap"
)

// scrollScript advances the viewport one screen height per cycle, the same
// trick the listing page's infinite scroll reacts to.
const scrollScript = `window.scrollBy(0, window.innerHeight)`

// Fetch drives a browser to the listing page, performs the configured number
// of scroll-and-wait cycles so lazily loaded rows render, and returns the
// resulting markup. The browser session is torn down before returning; any
// launch or navigation failure propagates to the caller.
func Fetch(ctx context.Context, cfg *config.Config) (string, error) {
    ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
    defer cancel()

    opts := append(chromedp.DefaultExecAllocatorOptions[:],
        chromedp.Flag("headless", cfg.Headless),
        chromedp.WindowSize(1920, 1080),
    )
    allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
    defer cancelAlloc()

    browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
    defer cancelBrowser()

    logger.Log.Info("fetching listing page",
        zap.String("url", cfg.TargetURL),
        zap.Int("scrolls", cfg.ScrollCount),
        zap.Duration("pause", cfg.ScrollPause))

    var html string
    if err := chromedp.Run(browserCtx, fetchTasks(cfg, &html)); err != nil {
        return "", fmt.Errorf("page fetch failed: %w", err)
    }
    return html, nil
}

// fetchTasks builds the navigate / scroll-sleep / capture sequence.
func fetchTasks(cfg *config.Config, html *string) chromedp.Tasks {
    tasks := chromedp.Tasks{chromedp.Navigate(cfg.TargetURL)}
    for i := 0; i < cfg.ScrollCount; i++ {
        tasks = append(tasks,
            chromedp.Evaluate(scrollScript, nil),
            chromedp.Sleep(cfg.ScrollPause),
        )
    }
    return append(tasks, chromedp.OuterHTML("html", html, chromedp.ByQuery))
}
