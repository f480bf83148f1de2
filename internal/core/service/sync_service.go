package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/api/metrics"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// SyncService orchestrates a synchronization run: it serializes runs
// through the sync lock, selects the operator's syncable properties and
// hands them to the dispatcher.
type SyncService struct {
	properties ports.PropertyRepository
	lock       ports.SyncLock
	dispatcher ports.SyncDispatcher
	client     ports.SmoobuClient
	logger     zerolog.Logger
	now        func() time.Time
}

func NewSyncService(properties ports.PropertyRepository, lock ports.SyncLock, dispatcher ports.SyncDispatcher, client ports.SmoobuClient, logger zerolog.Logger) *SyncService {
	return &SyncService{
		properties: properties,
		lock:       lock,
		dispatcher: dispatcher,
		client:     client,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *SyncService) Run(ctx context.Context, operatorID int64) (*ports.SyncReport, error) {
	if s.dispatcher == nil {
		return nil, domain.ErrSmoobuNotConfigured
	}

	acquired, err := s.lock.TryAcquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire sync lock: %w", err)
	}
	if !acquired {
		metrics.SyncRunsTotal.WithLabelValues("locked").Inc()
		return nil, domain.ErrSyncInProgress
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn().Err(err).Msg("failed to release sync lock")
		}
	}()

	props, err := s.properties.ListByOperator(ctx, operatorID)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("list properties: %w", err)
	}

	// Properties whose smoobu link no longer resolves to a live
	// apartment are skipped instead of failing every booking fetch.
	var apartments map[int64]bool
	if s.client != nil {
		list, err := s.client.Apartments(ctx)
		if err != nil {
			metrics.SyncRunsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("fetch apartments: %w", err)
		}
		apartments = make(map[int64]bool, len(list))
		for _, a := range list {
			apartments[a.ID] = true
		}
	}

	tasks := make([]ports.SyncTask, 0, len(props))
	for _, p := range props {
		if p.SmoobuID == 0 {
			continue // never linked to Smoobu, nothing to pull
		}
		if apartments != nil && !apartments[p.SmoobuID] {
			metrics.SyncErrorsTotal.WithLabelValues("stale_link").Inc()
			s.logger.Warn().
				Int64("property_id", p.ID).
				Int64("smoobu_id", p.SmoobuID).
				Msg("property links to an unknown smoobu apartment, skipping")
			continue
		}
		tasks = append(tasks, ports.SyncTask{Property: p})
	}

	start := s.now()
	report := s.dispatcher.RunBatch(ctx, tasks)
	report.Timestamp = s.now().UTC()

	metrics.SyncRunsTotal.WithLabelValues("ok").Inc()
	metrics.SyncDuration.Observe(time.Since(start).Seconds())
	s.logger.Info().
		Int64("operator_id", operatorID).
		Int("properties", report.Properties).
		Int("reservations", report.Reservations).
		Int("cleanings", report.Cleanings).
		Msg("synchronization completed")

	return &report, nil
}

// PropertySync pulls bookings for one property from Smoobu and upserts
// the local reservations and checkout cleaning jobs. It implements
// ports.PropertySyncer and is driven by the dispatcher's workers.
type PropertySync struct {
	client       ports.SmoobuClient
	reservations ports.ReservationRepository
	jobs         ports.CleaningJobRepository
	lookahead    time.Duration
	logger       zerolog.Logger
	now          func() time.Time
}

const defaultLookahead = 30 * 24 * time.Hour

func NewPropertySync(client ports.SmoobuClient, reservations ports.ReservationRepository, jobs ports.CleaningJobRepository, logger zerolog.Logger) *PropertySync {
	return &PropertySync{
		client:       client,
		reservations: reservations,
		jobs:         jobs,
		lookahead:    defaultLookahead,
		logger:       logger,
		now:          time.Now,
	}
}

func (p *PropertySync) SyncProperty(ctx context.Context, task ports.SyncTask) (ports.SyncOutcome, error) {
	var out ports.SyncOutcome

	from := truncateToDay(p.now().UTC())
	to := from.Add(p.lookahead)

	bookings, err := p.client.Reservations(ctx, task.Property.SmoobuID, from, to)
	if err != nil {
		metrics.SyncErrorsTotal.WithLabelValues("smoobu_fetch").Inc()
		return out, fmt.Errorf("fetch reservations for property %d: %w", task.Property.ID, err)
	}

	for _, b := range bookings {
		resID, created, err := p.reservations.Upsert(ctx, &domain.Reservation{
			PropertyID:   task.Property.ID,
			SmoobuID:     b.ID,
			GuestName:    b.GuestName,
			CheckinDate:  b.Arrival,
			CheckoutDate: b.Departure,
		})
		if err != nil {
			metrics.SyncErrorsTotal.WithLabelValues("reservation_upsert").Inc()
			return out, fmt.Errorf("upsert reservation %d: %w", b.ID, err)
		}
		if created {
			out.Reservations++
		}

		smoobuID := b.ID
		jobCreated, err := p.jobs.UpsertSynced(ctx, &domain.CleaningJob{
			PropertyID:          task.Property.ID,
			ReservationID:       &resID,
			SmoobuReservationID: &smoobuID,
			Type:                domain.JobCheckout,
			ScheduledDate:       truncateToDay(b.Departure),
			ScheduledTime:       "10:00",
			Status:              domain.JobPending,
			Priority:            domain.PriorityMedium,
			Notes:               "Checkout " + b.GuestName,
		})
		if err != nil {
			metrics.SyncErrorsTotal.WithLabelValues("job_upsert").Inc()
			return out, fmt.Errorf("upsert cleaning job for reservation %d: %w", b.ID, err)
		}
		if jobCreated {
			out.Cleanings++
		}
	}

	p.logger.Debug().
		Int64("property_id", task.Property.ID).
		Int("bookings", len(bookings)).
		Msg("property synchronized")

	return out, nil
}
