package ports

import (
	"context"
	"time"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// JobDetail is a cleaning job joined with the display attributes the
// dashboard needs: property identity and the reservation that caused it.
type JobDetail struct {
	domain.CleaningJob
	PropertyName    string
	PropertyAddress string
	GuestName       string
	CheckinDate     *time.Time
	CheckoutDate    *time.Time
}

// CleaningJobRepository persists cleaning jobs. Every read and write is
// pre-filtered by the operator's ownership grants: a job not reachable
// through operator_properties must never be returned or mutated.
type CleaningJobRepository interface {
	// ListByOperator returns jobs on properties owned by operatorID whose
	// scheduled date falls within [from, to], ordered by date then time.
	ListByOperator(ctx context.Context, operatorID int64, from, to time.Time) ([]JobDetail, error)

	// FindOwned returns the job only when it is reachable through the
	// operator's grants; any other case, including a nonexistent job,
	// yields domain.ErrForbidden so existence cannot be probed.
	FindOwned(ctx context.Context, jobID, operatorID int64) (*domain.CleaningJob, error)

	UpdateStatus(ctx context.Context, jobID int64, status domain.JobStatus, completionNotes string, completedAt *time.Time) error

	// UpsertSynced inserts or refreshes a job imported from Smoobu,
	// keyed by its smoobu reservation id. Reports whether a row was
	// created (true) or refreshed (false).
	UpsertSynced(ctx context.Context, job *domain.CleaningJob) (bool, error)
}
