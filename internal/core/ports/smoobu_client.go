package ports

import (
	"context"
	"time"
)

// SmoobuApartment is a rental unit as reported by the Smoobu API.
type SmoobuApartment struct {
	ID   int64
	Name string
}

// SmoobuReservation is a booking as reported by the Smoobu API.
type SmoobuReservation struct {
	ID          int64
	ApartmentID int64
	GuestName   string
	Arrival     time.Time
	Departure   time.Time
}

// SmoobuClient talks to the Smoobu booking platform.
type SmoobuClient interface {
	Apartments(ctx context.Context) ([]SmoobuApartment, error)
	Reservations(ctx context.Context, apartmentID int64, from, to time.Time) ([]SmoobuReservation, error)
}
