package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/api/metrics"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// dashboardWindowDays is the rolling window the dashboard shows when the
// caller supplies no explicit range: today plus the next two days.
const dashboardWindowDays = 3

type CleaningService struct {
	repo   ports.CleaningJobRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewCleaningService(repo ports.CleaningJobRepository, logger zerolog.Logger) *CleaningService {
	return &CleaningService{repo: repo, logger: logger, now: time.Now}
}

// ListJobs returns the operator's cleaning jobs inside the requested
// window. Zero bounds fall back to the rolling 3-day dashboard window,
// and an inverted range is clamped to it as well.
func (s *CleaningService) ListJobs(ctx context.Context, input ports.ListJobsInput) ([]ports.JobDetail, error) {
	from, to := input.From, input.To
	today := truncateToDay(s.now().UTC())

	if from.IsZero() {
		from = today
	}
	if to.IsZero() || to.Before(from) {
		to = from.AddDate(0, 0, dashboardWindowDays-1)
	}

	return s.repo.ListByOperator(ctx, input.OperatorID, from, to)
}

// UpdateJobStatus applies a status change requested from the dashboard.
// The job must be reachable through the operator's ownership grants and
// the transition must be allowed by the job state machine. Completing a
// job stamps completed_at; any other target status clears it.
func (s *CleaningService) UpdateJobStatus(ctx context.Context, input ports.UpdateJobInput) error {
	job, err := s.repo.FindOwned(ctx, input.JobID, input.OperatorID)
	if err != nil {
		return err
	}

	if !input.Status.Valid() || !job.Status.CanTransitionTo(input.Status) {
		return domain.ErrInvalidTransition
	}

	var completedAt *time.Time
	if input.Status == domain.JobCompleted {
		now := s.now().UTC()
		completedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, input.JobID, input.Status, input.CompletionNotes, completedAt); err != nil {
		s.logger.Error().Err(err).Int64("job_id", input.JobID).Msg("failed to update job status")
		return err
	}

	metrics.JobsUpdatedTotal.WithLabelValues(string(input.Status)).Inc()
	s.logger.Info().
		Int64("job_id", input.JobID).
		Int64("operator_id", input.OperatorID).
		Str("status", string(input.Status)).
		Msg("job status updated")

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
