package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// CleaningJobRepository implements ports.CleaningJobRepository over
// PostgreSQL. Reads and writes join through operator_properties: a job
// on a property the operator has no grant for behaves as if it did not
// exist.
type CleaningJobRepository struct {
	pool poolIface
}

func NewCleaningJobRepository(pool poolIface) *CleaningJobRepository {
	return &CleaningJobRepository{pool: pool}
}

func (r *CleaningJobRepository) ListByOperator(ctx context.Context, operatorID int64, from, to time.Time) ([]ports.JobDetail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT
		    cj.id, cj.property_id, cj.reservation_id, cj.smoobu_reservation_id,
		    cj.type, cj.scheduled_date, cj.scheduled_time, cj.status, cj.priority,
		    cj.notes, cj.completion_notes, cj.completed_at,
		    p.name, p.address,
		    r.guest_name, r.checkin_date, r.checkout_date
		 FROM cleaning_jobs cj
		 JOIN properties p ON cj.property_id = p.id
		 JOIN operator_properties op ON p.id = op.property_id
		 LEFT JOIN reservations r ON cj.reservation_id = r.id
		 WHERE op.operator_id = $1
		   AND cj.scheduled_date BETWEEN $2 AND $3
		 ORDER BY cj.scheduled_date, cj.scheduled_time`,
		operatorID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]ports.JobDetail, 0)
	for rows.Next() {
		var d ports.JobDetail
		var guestName *string
		if err := rows.Scan(
			&d.ID, &d.PropertyID, &d.ReservationID, &d.SmoobuReservationID,
			&d.Type, &d.ScheduledDate, &d.ScheduledTime, &d.Status, &d.Priority,
			&d.Notes, &d.CompletionNotes, &d.CompletedAt,
			&d.PropertyName, &d.PropertyAddress,
			&guestName, &d.CheckinDate, &d.CheckoutDate,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		if guestName != nil {
			d.GuestName = *guestName
		}
		jobs = append(jobs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}

// FindOwned returns the job only when it is reachable through the
// operator's grants. A missing job and a job owned by someone else both
// come back as domain.ErrForbidden, so existence cannot be probed.
func (r *CleaningJobRepository) FindOwned(ctx context.Context, jobID, operatorID int64) (*domain.CleaningJob, error) {
	var job domain.CleaningJob
	err := r.pool.QueryRow(ctx,
		`SELECT cj.id, cj.property_id, cj.reservation_id, cj.smoobu_reservation_id,
		        cj.type, cj.scheduled_date, cj.scheduled_time, cj.status, cj.priority,
		        cj.notes, cj.completion_notes, cj.completed_at
		 FROM cleaning_jobs cj
		 JOIN operator_properties op ON cj.property_id = op.property_id
		 WHERE cj.id = $1 AND op.operator_id = $2`,
		jobID, operatorID,
	).Scan(
		&job.ID, &job.PropertyID, &job.ReservationID, &job.SmoobuReservationID,
		&job.Type, &job.ScheduledDate, &job.ScheduledTime, &job.Status, &job.Priority,
		&job.Notes, &job.CompletionNotes, &job.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	return &job, nil
}

func (r *CleaningJobRepository) UpdateStatus(ctx context.Context, jobID int64, status domain.JobStatus, completionNotes string, completedAt *time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE cleaning_jobs
		 SET status = $2, completion_notes = $3, completed_at = $4
		 WHERE id = $1`,
		jobID, status, completionNotes, completedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *CleaningJobRepository) UpsertSynced(ctx context.Context, job *domain.CleaningJob) (bool, error) {
	var created bool
	err := r.pool.QueryRow(ctx,
		`INSERT INTO cleaning_jobs
		    (property_id, reservation_id, smoobu_reservation_id, type,
		     scheduled_date, scheduled_time, status, priority, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (smoobu_reservation_id) DO UPDATE SET
		    scheduled_date = EXCLUDED.scheduled_date,
		    scheduled_time = EXCLUDED.scheduled_time,
		    notes          = EXCLUDED.notes
		 RETURNING (xmax = 0)`,
		job.PropertyID, job.ReservationID, job.SmoobuReservationID, job.Type,
		job.ScheduledDate, job.ScheduledTime, job.Status, job.Priority, job.Notes,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert job: %w", err)
	}
	return created, nil
}
