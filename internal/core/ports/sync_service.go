package ports

import (
	"context"
	"time"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// SyncTask is one unit of synchronization work: pull bookings for a
// single property and refresh its reservations and cleaning jobs.
type SyncTask struct {
	Property domain.Property
}

// SyncOutcome reports what one task changed.
type SyncOutcome struct {
	Reservations int
	Cleanings    int
}

// SyncReport summarizes a whole synchronization run.
type SyncReport struct {
	Properties   int       `json:"properties"`
	Reservations int       `json:"reservations"`
	Cleanings    int       `json:"cleanings"`
	Timestamp    time.Time `json:"-"`
}

// PropertySyncer performs the per-property work; dispatcher workers call it.
type PropertySyncer interface {
	SyncProperty(ctx context.Context, task SyncTask) (SyncOutcome, error)
}

// SyncDispatcher fans a batch of tasks out to workers, preserving
// per-property ordering, and aggregates the outcomes.
type SyncDispatcher interface {
	RunBatch(ctx context.Context, tasks []SyncTask) SyncReport
}

type SyncService interface {
	// Run synchronizes the operator's properties against Smoobu.
	// A second Run while one is in flight fails with
	// domain.ErrSyncInProgress.
	Run(ctx context.Context, operatorID int64) (*SyncReport, error)
}

// SyncLock serializes synchronization runs across the process (and, with
// a shared redis, across replicas).
type SyncLock interface {
	TryAcquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}
