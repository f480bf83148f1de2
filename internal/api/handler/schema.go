package handler

import (
	"time"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

const dateFormat = "2006-01-02"

// errorResponse is the canonical failure envelope for every 4xx/5xx
// response: {"success": false, "message": "..."}.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Response-only types owned by the transport layer. These are
// intentionally separate from ports/domain types so the JSON contract is
// not coupled to internal service changes.

type jobResponse struct {
	ID              int64  `json:"id"`
	Type            string `json:"type"`
	ScheduledDate   string `json:"scheduled_date"`
	ScheduledTime   string `json:"scheduled_time"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	Notes           string `json:"notes,omitempty"`
	CompletionNotes string `json:"completion_notes,omitempty"`
	CompletedAt     string `json:"completed_at,omitempty"`
	PropertyID      int64  `json:"property_id"`
	PropertyName    string `json:"property_name"`
	PropertyAddress string `json:"property_address"`
	GuestName       string `json:"guest_name,omitempty"`
	CheckinDate     string `json:"checkin_date,omitempty"`
	CheckoutDate    string `json:"checkout_date,omitempty"`
}

type listJobsResponse struct {
	Success bool          `json:"success"`
	Jobs    []jobResponse `json:"jobs"`
}

type updateJobRequest struct {
	JobID           int64  `json:"job_id" validate:"required"`
	Status          string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	CompletionNotes string `json:"completion_notes"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type propertyResponse struct {
	ID       int64  `json:"id"`
	SmoobuID int64  `json:"smoobu_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Type     string `json:"type"`
}

type listPropertiesResponse struct {
	Success    bool               `json:"success"`
	Properties []propertyResponse `json:"properties"`
}

type syncResponse struct {
	Success      bool             `json:"success"`
	Message      string           `json:"message"`
	Timestamp    string           `json:"timestamp"`
	Synchronized ports.SyncReport `json:"synchronized"`
}

func toJobResponse(d ports.JobDetail) jobResponse {
	r := jobResponse{
		ID:              d.ID,
		Type:            string(d.Type),
		ScheduledDate:   d.ScheduledDate.Format(dateFormat),
		ScheduledTime:   d.ScheduledTime,
		Status:          string(d.Status),
		Priority:        string(d.Priority),
		Notes:           d.Notes,
		CompletionNotes: d.CompletionNotes,
		PropertyID:      d.PropertyID,
		PropertyName:    d.PropertyName,
		PropertyAddress: d.PropertyAddress,
		GuestName:       d.GuestName,
	}
	if d.CompletedAt != nil {
		r.CompletedAt = d.CompletedAt.UTC().Format(time.RFC3339)
	}
	if d.CheckinDate != nil {
		r.CheckinDate = d.CheckinDate.Format(dateFormat)
	}
	if d.CheckoutDate != nil {
		r.CheckoutDate = d.CheckoutDate.Format(dateFormat)
	}
	return r
}

func toPropertyResponse(p domain.Property) propertyResponse {
	return propertyResponse{
		ID:       p.ID,
		SmoobuID: p.SmoobuID,
		Name:     p.Name,
		Address:  p.Address,
		Type:     string(p.Type),
	}
}
