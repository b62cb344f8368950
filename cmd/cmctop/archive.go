package main

import (
    "context"

    "github.com/alim08/cmc_top/pkg/database"
    "github.com/alim08/cmc_top/pkg/logger"
    "github.com/alim08/cmc_top/pkg/metrics"
    "github.com/alim08/cmc_top/pkg/models"
    "go.uber.org/zap"
)

// archiveSnapshot persists the run to Postgres when DB_HOST is configured.
func archiveSnapshot(ctx context.Context, snapshot models.Snapshot) {
    db, err := database.New(database.NewConfig())
    if err != nil {
        metrics.ArchivalErrorCounter.Inc()
        logger.Log.Error("database connect failed", zap.Error(err))
        return
    }
    defer db.Close()

    if err := db.RunMigrations(ctx); err != nil {
        metrics.ArchivalErrorCounter.Inc()
        logger.Log.Error("migrations failed", zap.Error(err))
        return
    }

    repo := database.NewSnapshotRepository(db)
    if err := repo.SaveSnapshot(ctx, snapshot); err != nil {
        metrics.ArchivalErrorCounter.Inc()
        logger.Log.Error("snapshot archival failed", zap.Error(err))
        return
    }

    metrics.ArchivalSuccessCounter.Inc()
    logger.Log.Info("snapshot archived",
        zap.Int64("captured_at", snapshot.CapturedAt),
        zap.Int("quotes", len(snapshot.Quotes)))
}
