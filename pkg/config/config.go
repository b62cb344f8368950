package config

import (
    "flag"
    "fmt"
    "os"
    "strconv"
    "strings"
    "time"
)

// Selectors carries the CSS selectors the listing page is scraped with. They
// track CoinMarketCap's generated style classes and drift whenever the site
// ships a new frontend build, so they are overridable without a rebuild.
type Selectors struct {
    Table     string
    Name      string
    MarketCap string
}

type Config struct {
    TargetURL    string
    ScrollCount  int
    ScrollPause  time.Duration
    FetchTimeout time.Duration
    Headless     bool
    OutputDir    string
    Selectors    Selectors
    RedisURL     string // optional snapshot cache
    MetricsPort  int    // 0 disables the metrics endpoint
}

// Load reads environment variables and application flags (via a local FlagSet),
// strips out any -test.* flags, and validates required fields.
func Load() (*Config, error) {
    // 1. Build a fresh FlagSet so we don't collide with `go test` flags
    fs := flag.NewFlagSet("config", flag.ContinueOnError)

    // 2. Define only the flags this package cares about
    var targetURL string
    var outputDir string
    var scrollCount int
    var redisURL string
    var metricsPort int
    fs.StringVar(&targetURL, "url", getEnvOrDefault("TARGET_URL", "https://coinmarketcap.com/"), "listing page URL")
    fs.StringVar(&outputDir, "out", getEnvOrDefault("OUTPUT_DIR", "."), "directory the snapshot CSV is written to")
    fs.IntVar(&scrollCount, "scrolls", 10, "scroll-and-wait cycles used to trigger lazy loading")
    fs.StringVar(&redisURL, "redis", os.Getenv("REDIS_URL"), "Redis connection URL (optional)")
    fs.IntVar(&metricsPort, "metrics-port", 0, "Metrics server port, 0 to disable")

    // 3. Filter out any -test.* args before parsing
    var appArgs []string
    for _, arg := range os.Args[1:] {
        if strings.HasPrefix(arg, "-test.") {
            continue
        }
        appArgs = append(appArgs, arg)
    }
    if err := fs.Parse(appArgs); err != nil {
        return nil, err
    }

    // 4. Populate our Config struct
    cfg := &Config{
        TargetURL:    targetURL,
        ScrollCount:  scrollCount,
        ScrollPause:  time.Second,
        FetchTimeout: 2 * time.Minute,
        Headless:     true,
        OutputDir:    outputDir,
        RedisURL:     redisURL,
        MetricsPort:  metricsPort,
        Selectors: Selectors{
            Table:     "tbody",
            Name:      getEnvOrDefault("NAME_SELECTOR", "p.sc-4984dd93-0.kKpPOn"),
            MarketCap: getEnvOrDefault("CAP_SELECTOR", "span.sc-7bc56c81-1.bCdPBp"),
        },
    }

    // Env overrides for the fetch tuning knobs
    if env := os.Getenv("SCROLL_COUNT"); env != "" {
        n, err := strconv.Atoi(env)
        if err != nil {
            return nil, fmt.Errorf("invalid SCROLL_COUNT env var: %v", err)
        }
        cfg.ScrollCount = n
    }
    cfg.ScrollPause = getDurationEnvOrDefault("SCROLL_PAUSE", cfg.ScrollPause)
    cfg.FetchTimeout = getDurationEnvOrDefault("FETCH_TIMEOUT", cfg.FetchTimeout)
    if env := os.Getenv("HEADLESS"); env != "" {
        v, err := strconv.ParseBool(env)
        if err != nil {
            return nil, fmt.Errorf("invalid HEADLESS env var: %v", err)
        }
        cfg.Headless = v
    }
    if env := os.Getenv("METRICS_PORT"); env != "" {
        p, err := strconv.Atoi(env)
        if err != nil {
            return nil, fmt.Errorf("invalid METRICS_PORT env var: %v", err)
        }
        cfg.MetricsPort = p
    }

    // 5. Validate required fields
    if err := cfg.validate(); err != nil {
        return nil, err
    }

    return cfg, nil
}

func (c *Config) validate() error {
    if !strings.HasPrefix(c.TargetURL, "http://") && !strings.HasPrefix(c.TargetURL, "https://") {
        return fmt.Errorf("target URL must be http(s), got %q", c.TargetURL)
    }
    if c.ScrollCount < 0 {
        return fmt.Errorf("scroll count must be >= 0, got %d", c.ScrollCount)
    }
    if c.ScrollPause <= 0 {
        return fmt.Errorf("scroll pause must be positive, got %s", c.ScrollPause)
    }
    if c.FetchTimeout <= 0 {
        return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
    }
    if c.OutputDir == "" {
        return fmt.Errorf("output directory must not be empty")
    }
    if c.Selectors.Table == "" || c.Selectors.Name == "" || c.Selectors.MarketCap == "" {
        return fmt.Errorf("selectors must not be empty")
    }
    return nil
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

// getDurationEnvOrDefault returns environment variable as duration or default
func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
    if value := os.Getenv(key); value != "" {
        if duration, err := time.ParseDuration(value); err == nil {
            return duration
        }
    }
    return defaultValue
}
