package janitor

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Purger deletes rooms that were dissolved before a point in time.
type Purger interface {
	PurgeDissolved(ctx context.Context, before time.Time) (int64, error)
}

// Start schedules the dissolved-room purge and starts the scheduler. Rooms
// that still have members are never touched. Stop the returned cron on shutdown.
func Start(p Purger, schedule string, retention time.Duration, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		RunPurge(context.Background(), p, time.Now().Add(-retention), logger)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule purge %q: %w", schedule, err)
	}
	c.Start()
	logger.Info("room purge scheduled", zap.String("schedule", schedule), zap.Duration("retention", retention))
	return c, nil
}

// RunPurge runs one purge pass.
func RunPurge(ctx context.Context, p Purger, before time.Time, logger *zap.Logger) {
	logger.Info("purging dissolved rooms", zap.Time("before", before))
	n, err := p.PurgeDissolved(ctx, before)
	if err != nil {
		logger.Error("dissolved room purge failed", zap.Error(err))
		return
	}
	logger.Info("dissolved rooms purged", zap.Int64("rooms_deleted", n))
}
