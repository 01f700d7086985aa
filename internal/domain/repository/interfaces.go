package repository

import (
	"context"

	"SignalDesk/internal/domain/models"
)

// Publisher pushes derived snapshots to downstream consumers.
type Publisher interface {
	PublishSnapshot(ctx context.Context, snap *models.PipelineSnapshot) error
	Close() error
}

// SnapshotStore holds the latest published pipeline snapshot.
type SnapshotStore interface {
	Publish(snap *models.PipelineSnapshot)
	Latest() *models.PipelineSnapshot
}

// Metrics records pipeline observability signals.
type Metrics interface {
	RecordFeedItems(provider string, n int)
	RecordError(kind string)
	RecordAssetChange(asset string, pct float64)
	RecordSnapshotSize(entity string, n int)
	RecordLatency(stage string, seconds float64)
}
