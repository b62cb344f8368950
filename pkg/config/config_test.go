package config

import (
    "testing"
    "time"
)

func TestLoad_Defaults(t *testing.T) {
    cfg, err := Load()
    if err != nil {
        t.Fatalf("expected no error, got %v", err)
    }
    if cfg.TargetURL != "https://coinmarketcap.com/" {
        t.Errorf("TargetURL = %q; want default CMC URL", cfg.TargetURL)
    }
    if cfg.ScrollCount != 10 {
        t.Errorf("ScrollCount = %d; want 10", cfg.ScrollCount)
    }
    if cfg.ScrollPause != time.Second {
        t.Errorf("ScrollPause = %s; want 1s", cfg.ScrollPause)
    }
    if !cfg.Headless {
        t.Error("Headless = false; want true by default")
    }
    if cfg.OutputDir != "." {
        t.Errorf("OutputDir = %q; want %q", cfg.OutputDir, ".")
    }
    if cfg.MetricsPort != 0 {
        t.Errorf("MetricsPort = %d; want 0 (disabled)", cfg.MetricsPort)
    }
}

func TestLoad_EnvOverrides(t *testing.T) {
    t.Setenv("TARGET_URL", "https://example.com/coins")
    t.Setenv("SCROLL_COUNT", "3")
    t.Setenv("SCROLL_PAUSE", "250ms")
    t.Setenv("HEADLESS", "false")
    t.Setenv("REDIS_URL", "redis://localhost:6379/0")
    t.Setenv("METRICS_PORT", "8082")

    cfg, err := Load()
    if err != nil {
        t.Fatalf("expected no error, got %v", err)
    }
    if cfg.TargetURL != "https://example.com/coins" {
        t.Errorf("TargetURL = %q; want env override", cfg.TargetURL)
    }
    if cfg.ScrollCount != 3 {
        t.Errorf("ScrollCount = %d; want 3", cfg.ScrollCount)
    }
    if cfg.ScrollPause != 250*time.Millisecond {
        t.Errorf("ScrollPause = %s; want 250ms", cfg.ScrollPause)
    }
    if cfg.Headless {
        t.Error("Headless = true; want false")
    }
    if cfg.RedisURL != "redis://localhost:6379/0" {
        t.Errorf("RedisURL = %q; want env value", cfg.RedisURL)
    }
    if cfg.MetricsPort != 8082 {
        t.Errorf("MetricsPort = %d; want 8082", cfg.MetricsPort)
    }
}

func TestLoad_InvalidValues(t *testing.T) {
    cases := []struct {
        name string
        key  string
        val  string
    }{
        {"bad scroll count", "SCROLL_COUNT", "ten"},
        {"negative scroll count", "SCROLL_COUNT", "-1"},
        {"bad headless", "HEADLESS", "maybe"},
        {"bad metrics port", "METRICS_PORT", "http"},
        {"non-http url", "TARGET_URL", "ftp://coinmarketcap.com/"},
    }
    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            t.Setenv(c.key, c.val)
            if _, err := Load(); err == nil {
                t.Errorf("expected error for %s=%q, got nil", c.key, c.val)
            }
        })
    }
}
