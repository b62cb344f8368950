package main

import (
    "context"
    "fmt"

    "github.com/alim08/cmc_top/pkg/logger"
    "github.com/alim08/cmc_top/pkg/metrics"
    "github.com/alim08/cmc_top/pkg/models"
    "github.com/alim08/cmc_top/pkg/redisclient"
    "go.uber.org/zap"
)

const (
    latestKeyPrefix = "cmc:latest:"
    snapshotStream  = "cmc:snapshots"
    pubsubChannel   = "cmc:pubsub"
)

// publishSnapshot mirrors the run into Redis: a latest-quote hash per coin,
// one stream entry per coin for consumers that replay runs, and the full
// snapshot JSON on the pub/sub channel.
func publishSnapshot(ctx context.Context, rdb *redisclient.Client, snapshot models.Snapshot) error {
    for _, q := range snapshot.Quotes {
        if err := rdb.HSet(ctx, latestKeyPrefix+q.Name, q.ToMap()); err != nil {
            metrics.CachePubErrors.Inc()
            return fmt.Errorf("cache quote %q: %w", q.Name, err)
        }
        if err := rdb.AddToStream(ctx, snapshotStream, q.ToMap()); err != nil {
            metrics.CachePubErrors.Inc()
            return fmt.Errorf("stream quote %q: %w", q.Name, err)
        }
        metrics.CachePubCounter.Inc()
    }

    payload, err := snapshot.ToJSON()
    if err != nil {
        metrics.CachePubErrors.Inc()
        return err
    }
    if err := rdb.Publish(ctx, pubsubChannel, payload); err != nil {
        metrics.CachePubErrors.Inc()
        return fmt.Errorf("publish snapshot: %w", err)
    }

    logger.Log.Info("snapshot published to redis",
        zap.Int("quotes", len(snapshot.Quotes)),
        zap.String("channel", pubsubChannel))
    return nil
}
