package database

import (
	"context"
	"fmt"

	"github.com/alim08/cmc_top/pkg/logger"
	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Version     int
	Description string
	UpSQL       string
}

// Migrations holds all database migrations
var Migrations = []Migration{
	{
		Version:     1,
		Description: "Create snapshot schema",
		UpSQL: `
			CREATE TABLE IF NOT EXISTS cmc_snapshots (
				id BIGSERIAL PRIMARY KEY,
				captured_at BIGINT NOT NULL,
				rank INT NOT NULL CHECK (rank > 0),
				name VARCHAR(100) NOT NULL,
				market_cap DECIMAL(24,2) NOT NULL CHECK (market_cap > 0),
				market_share DECIMAL(9,6) NOT NULL CHECK (market_share >= 0 AND market_share <= 100),
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE INDEX IF NOT EXISTS idx_cmc_snapshots_captured_at ON cmc_snapshots(captured_at);
			CREATE INDEX IF NOT EXISTS idx_cmc_snapshots_name ON cmc_snapshots(name);
			CREATE UNIQUE INDEX IF NOT EXISTS idx_cmc_snapshots_run_rank ON cmc_snapshots(captured_at, rank);
		`,
	},
}

// RunMigrations applies every migration in order. Each UpSQL is idempotent,
// so re-running on an already-migrated database is safe.
func (db *DB) RunMigrations(ctx context.Context) error {
	for _, m := range Migrations {
		if _, err := db.ExecContext(ctx, m.UpSQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}
		logger.Log.Info("migration applied",
			zap.Int("version", m.Version),
			zap.String("description", m.Description))
	}
	return nil
}
