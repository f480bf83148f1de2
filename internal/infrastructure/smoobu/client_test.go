package smoobu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestClient_Apartments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/apartments", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"apartments":[{"id":101,"name":"Casa Marina"},{"id":102,"name":"Villa Sole"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret-key"})
	require.NoError(t, err)

	apartments, err := client.Apartments(context.Background())
	require.NoError(t, err)
	require.Len(t, apartments, 2)
	assert.Equal(t, int64(101), apartments[0].ID)
	assert.Equal(t, "Villa Sole", apartments[1].Name)
}

func TestClient_Reservations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("Api-Key"))
		assert.Equal(t, "101", r.URL.Query().Get("apartmentId"))
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-10-01", r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookings":[
			{"id":9001,"apartment":{"id":101,"name":"Casa Marina"},"guest-name":"Anna Bianchi","arrival":"2026-09-01","departure":"2026-09-05"}
		]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret-key"})
	require.NoError(t, err)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	reservations, err := client.Reservations(context.Background(), 101, from, to)
	require.NoError(t, err)
	require.Len(t, reservations, 1)

	res := reservations[0]
	assert.Equal(t, int64(9001), res.ID)
	assert.Equal(t, int64(101), res.ApartmentID)
	assert.Equal(t, "Anna Bianchi", res.GuestName)
	assert.Equal(t, from, res.Arrival)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), res.Departure)
}

func TestClient_Reservations_BadDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bookings":[{"id":9001,"apartment":{"id":101},"guest-name":"x","arrival":"not-a-date","departure":"2026-09-05"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "secret-key"})
	require.NoError(t, err)

	_, err = client.Reservations(context.Background(), 101, time.Now(), time.Now())
	assert.ErrorContains(t, err, "bad arrival")
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "wrong-key"})
	require.NoError(t, err)

	_, err = client.Apartments(context.Background())
	assert.ErrorContains(t, err, "unexpected status 401")
}
