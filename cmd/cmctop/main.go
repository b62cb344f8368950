package main

import (
    "context"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/alim08/cmc_top/pkg/config"
    "github.com/alim08/cmc_top/pkg/extract"
    "github.com/alim08/cmc_top/pkg/logger"
    "github.com/alim08/cmc_top/pkg/metrics"
    "github.com/alim08/cmc_top/pkg/models"
    "github.com/alim08/cmc_top/pkg/redisclient"
    "github.com/alim08/cmc_top/pkg/render"
    "github.com/alim08/cmc_top/pkg/report"
    "github.com/go-chi/chi/v5"
    "github.com/joho/godotenv"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "go.uber.org/zap"
)

func main() {
    // 1. Load .env if present, then config
    _ = godotenv.Load()
    cfg, err := config.Load()
    if err != nil {
        panic("config error: " + err.Error())
    }

    // 2. Init logger
    if err := logger.Init(); err != nil {
        panic("logger init: " + err.Error())
    }
    defer logger.Log.Sync()

    // 3. Optional Prometheus metrics endpoint
    if cfg.MetricsPort > 0 {
        go startMetricsServer(cfg.MetricsPort)
    }

    // 4. Ctrl-C cancels the browser session cleanly
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    // 5. Fetch the rendered listing page
    start := time.Now()
    html, err := render.Fetch(ctx, cfg)
    metrics.FetchDuration.Observe(time.Since(start).Seconds())
    if err != nil {
        metrics.FetchErrors.Inc()
        logger.Log.Fatal("page fetch failed", zap.Error(err))
    }

    // 6. Extract the listing entries
    capturedAt := time.Now()
    quotes, err := extract.Listing(html, cfg.Selectors, capturedAt)
    if err != nil {
        metrics.ExtractErrors.Inc()
        logger.Log.Fatal("extraction failed", zap.Error(err))
    }
    metrics.ExtractedQuotes.Set(float64(len(quotes)))

    // 7. Write the snapshot CSV
    path, err := report.Write(cfg.OutputDir, capturedAt, quotes)
    if err != nil {
        metrics.ReportErrors.Inc()
        logger.Log.Fatal("snapshot write failed", zap.Error(err))
    }
    logger.Log.Info("snapshot written",
        zap.String("path", path),
        zap.Int("quotes", len(quotes)))

    snapshot := models.Snapshot{CapturedAt: capturedAt.UnixMilli(), Quotes: quotes}

    // 8. Optional sinks: the CSV is already on disk, so sink failures are
    // logged and counted but do not fail the run.
    if cfg.RedisURL != "" {
        rdb := redisclient.New(cfg.RedisURL)
        if err := publishSnapshot(ctx, rdb, snapshot); err != nil {
            logger.Log.Error("redis snapshot publish failed", zap.Error(err))
        }
        rdb.Close()
    }
    if os.Getenv("DB_HOST") != "" {
        archiveSnapshot(ctx, snapshot)
    }
}

func startMetricsServer(port int) {
    r := chi.NewRouter()
    r.Handle("/metrics", promhttp.Handler())
    addr := fmt.Sprintf(":%d", port)
    logger.Log.Info("metrics server listening", zap.String("addr", addr))
    http.ListenAndServe(addr, r) // errors are logged by default
}
