package postgres

import (
	"context"
	"fmt"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

// ReservationRepository implements ports.ReservationRepository over
// PostgreSQL.
type ReservationRepository struct {
	pool poolIface
}

func NewReservationRepository(pool poolIface) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Upsert inserts or refreshes a reservation keyed by its smoobu id.
func (r *ReservationRepository) Upsert(ctx context.Context, res *domain.Reservation) (int64, bool, error) {
	var id int64
	var created bool
	err := r.pool.QueryRow(ctx,
		`INSERT INTO reservations (property_id, smoobu_id, guest_name, checkin_date, checkout_date)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (smoobu_id) DO UPDATE SET
		    guest_name    = EXCLUDED.guest_name,
		    checkin_date  = EXCLUDED.checkin_date,
		    checkout_date = EXCLUDED.checkout_date
		 RETURNING id, (xmax = 0)`,
		res.PropertyID, res.SmoobuID, res.GuestName, res.CheckinDate, res.CheckoutDate,
	).Scan(&id, &created)
	if err != nil {
		return 0, false, fmt.Errorf("upsert reservation: %w", err)
	}
	return id, created, nil
}
