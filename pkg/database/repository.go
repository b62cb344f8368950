package database

import (
	"context"
	"fmt"
	"time"

	"github.com/alim08/cmc_top/pkg/metrics"
	"github.com/alim08/cmc_top/pkg/models"
)

// SnapshotRepository defines the interface for snapshot data access
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error
}

// snapshotRepository implements SnapshotRepository
type snapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// SaveSnapshot archives one scrape run in a single transaction: one row per
// quote, keyed by (captured_at, rank).
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	start := time.Now()
	status := "success"
	defer func() {
		metrics.DatabaseOperationDuration.WithLabelValues("save_snapshot", status).Observe(time.Since(start).Seconds())
	}()

	if err := snapshot.Validate(); err != nil {
		status = "validation_error"
		return fmt.Errorf("snapshot validation failed: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		status = "error"
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cmc_snapshots (captured_at, rank, name, market_cap, market_share)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (captured_at, rank) DO NOTHING
	`)
	if err != nil {
		status = "error"
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range snapshot.Quotes {
		if _, err := stmt.ExecContext(ctx, snapshot.CapturedAt, q.Rank, q.Name, q.MarketCap, q.MarketShare); err != nil {
			status = "error"
			return fmt.Errorf("insert quote %q: %w", q.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		status = "error"
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
