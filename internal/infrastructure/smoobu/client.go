// Package smoobu is the HTTP adapter for the Smoobu booking platform.
package smoobu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

const (
	defaultBaseURL = "https://login.smoobu.com"
	defaultTimeout = 15 * time.Second
	dateFormat     = "2006-01-02"
)

// Config captures the settings for talking to the Smoobu API.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client implements ports.SmoobuClient against the real Smoobu REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a Smoobu client. An empty API key is rejected so a
// misconfigured deployment fails at wiring time, not mid-sync.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("smoobu: api key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type apartmentPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type apartmentsResponse struct {
	Apartments []apartmentPayload `json:"apartments"`
}

type bookingPayload struct {
	ID        int64            `json:"id"`
	Apartment apartmentPayload `json:"apartment"`
	GuestName string           `json:"guest-name"`
	Arrival   string           `json:"arrival"`
	Departure string           `json:"departure"`
}

type bookingsResponse struct {
	Bookings []bookingPayload `json:"bookings"`
}

func (c *Client) Apartments(ctx context.Context) ([]ports.SmoobuApartment, error) {
	var payload apartmentsResponse
	if err := c.get(ctx, "/api/apartments", nil, &payload); err != nil {
		return nil, err
	}

	apartments := make([]ports.SmoobuApartment, 0, len(payload.Apartments))
	for _, a := range payload.Apartments {
		apartments = append(apartments, ports.SmoobuApartment{ID: a.ID, Name: a.Name})
	}
	return apartments, nil
}

func (c *Client) Reservations(ctx context.Context, apartmentID int64, from, to time.Time) ([]ports.SmoobuReservation, error) {
	query := url.Values{}
	query.Set("apartmentId", strconv.FormatInt(apartmentID, 10))
	query.Set("from", from.Format(dateFormat))
	query.Set("to", to.Format(dateFormat))

	var payload bookingsResponse
	if err := c.get(ctx, "/api/reservations", query, &payload); err != nil {
		return nil, err
	}

	reservations := make([]ports.SmoobuReservation, 0, len(payload.Bookings))
	for _, b := range payload.Bookings {
		arrival, err := time.Parse(dateFormat, b.Arrival)
		if err != nil {
			return nil, fmt.Errorf("smoobu: booking %d: bad arrival %q: %w", b.ID, b.Arrival, err)
		}
		departure, err := time.Parse(dateFormat, b.Departure)
		if err != nil {
			return nil, fmt.Errorf("smoobu: booking %d: bad departure %q: %w", b.ID, b.Departure, err)
		}
		reservations = append(reservations, ports.SmoobuReservation{
			ID:          b.ID,
			ApartmentID: b.Apartment.ID,
			GuestName:   b.GuestName,
			Arrival:     arrival,
			Departure:   departure,
		})
	}
	return reservations, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("smoobu: build request: %w", err)
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("smoobu: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("smoobu: %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("smoobu: %s: decode response: %w", path, err)
	}
	return nil
}
