package domain

import (
	"errors"
	"time"
)

var ErrSyncInProgress = errors.New("synchronization already in progress")
var ErrSmoobuNotConfigured = errors.New("smoobu api key not configured")

// Reservation is a booking imported from Smoobu. Checkout day drives
// cleaning job creation during synchronization.
type Reservation struct {
	ID           int64     `json:"id"`
	PropertyID   int64     `json:"property_id"`
	SmoobuID     int64     `json:"smoobu_id"`
	GuestName    string    `json:"guest_name"`
	CheckinDate  time.Time `json:"checkin_date"`
	CheckoutDate time.Time `json:"checkout_date"`
}
