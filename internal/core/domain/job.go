package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a cleaning job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
	JobCancelled  JobStatus = "cancelled"
)

// JobType classifies why a cleaning is scheduled.
type JobType string

const (
	JobCheckout    JobType = "checkout"
	JobCheckin     JobType = "checkin"
	JobMaintenance JobType = "maintenance"
	JobDeepClean   JobType = "deep_clean"
)

// JobPriority orders jobs within a day.
type JobPriority string

const (
	PriorityLow    JobPriority = "low"
	PriorityMedium JobPriority = "medium"
	PriorityHigh   JobPriority = "high"
)

// validTransitions defines the allowed job state machine. Completed and
// cancelled jobs can be reopened back to pending from the dashboard.
var validTransitions = map[JobStatus][]JobStatus{
	JobPending:    {JobInProgress, JobCompleted, JobCancelled},
	JobInProgress: {JobCompleted, JobCancelled},
	JobCompleted:  {JobPending},
	JobCancelled:  {JobPending},
}

var ErrJobNotFound = errors.New("cleaning job not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether the status is one of the known lifecycle states.
func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobInProgress, JobCompleted, JobCancelled:
		return true
	}
	return false
}

// CleaningJob is the core aggregate: one scheduled cleaning on one
// property, optionally tied to the reservation that caused it.
type CleaningJob struct {
	ID                  int64       `json:"id"`
	PropertyID          int64       `json:"property_id"`
	ReservationID       *int64      `json:"reservation_id,omitempty"`
	SmoobuReservationID *int64      `json:"smoobu_reservation_id,omitempty"`
	Type                JobType     `json:"type"`
	ScheduledDate       time.Time   `json:"scheduled_date"`
	ScheduledTime       string      `json:"scheduled_time"`
	Status              JobStatus   `json:"status"`
	Priority            JobPriority `json:"priority"`
	Notes               string      `json:"notes,omitempty"`
	CompletionNotes     string      `json:"completion_notes,omitempty"`
	CompletedAt         *time.Time  `json:"completed_at,omitempty"`
}
