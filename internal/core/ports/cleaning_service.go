package ports

import (
	"context"
	"time"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// ListJobsInput scopes a dashboard listing. From/To default to the
// rolling 3-day window when zero.
type ListJobsInput struct {
	OperatorID int64
	From       time.Time
	To         time.Time
}

// UpdateJobInput carries a status change request from the dashboard.
type UpdateJobInput struct {
	OperatorID      int64
	JobID           int64
	Status          domain.JobStatus
	CompletionNotes string
}

type CleaningService interface {
	ListJobs(ctx context.Context, input ListJobsInput) ([]JobDetail, error)
	UpdateJobStatus(ctx context.Context, input UpdateJobInput) error
}
