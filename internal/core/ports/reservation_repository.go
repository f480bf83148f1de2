package ports

import (
	"context"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// ReservationRepository persists bookings imported from Smoobu.
type ReservationRepository interface {
	// Upsert inserts or refreshes a reservation keyed by its smoobu id
	// and returns the local row id. Reports whether a row was created.
	Upsert(ctx context.Context, r *domain.Reservation) (int64, bool, error)
}
