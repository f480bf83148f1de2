package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

type stubCleaningService struct {
	jobs      []ports.JobDetail
	listInput ports.ListJobsInput
	updated   ports.UpdateJobInput
	err       error
}

func (s *stubCleaningService) ListJobs(_ context.Context, input ports.ListJobsInput) ([]ports.JobDetail, error) {
	s.listInput = input
	return s.jobs, s.err
}

func (s *stubCleaningService) UpdateJobStatus(_ context.Context, input ports.UpdateJobInput) error {
	s.updated = input
	return s.err
}

func newJobContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("operator_id", int64(1))
	return c, rec
}

func TestJobHandler_List(t *testing.T) {
	completed := time.Date(2026, 8, 30, 16, 0, 0, 0, time.UTC)
	checkin := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	checkout := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	svc := &stubCleaningService{jobs: []ports.JobDetail{{
		CleaningJob: domain.CleaningJob{
			ID:            10,
			PropertyID:    1,
			Type:          domain.JobCheckout,
			ScheduledDate: checkout,
			ScheduledTime: "10:00",
			Status:        domain.JobCompleted,
			CompletedAt:   &completed,
		},
		PropertyName:    "Casa Marina",
		PropertyAddress: "Via Roma 1",
		GuestName:       "Anna Bianchi",
		CheckinDate:     &checkin,
		CheckoutDate:    &checkout,
	}}}
	h := NewJobHandler(svc)

	c, rec := newJobContext(t, http.MethodGet, "/cleaning-jobs?date_from=2026-08-31&date_to=2026-09-02", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if svc.listInput.OperatorID != 1 {
		t.Errorf("operator id not scoped: %+v", svc.listInput)
	}
	if svc.listInput.From.Format("2006-01-02") != "2026-08-31" {
		t.Errorf("date_from not parsed: %s", svc.listInput.From)
	}

	var resp struct {
		Success bool `json:"success"`
		Jobs    []struct {
			ID            int64  `json:"id"`
			ScheduledDate string `json:"scheduled_date"`
			Status        string `json:"status"`
			PropertyName  string `json:"property_name"`
			GuestName     string `json:"guest_name"`
		} `json:"jobs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || len(resp.Jobs) != 1 {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	job := resp.Jobs[0]
	if job.ScheduledDate != "2026-08-31" || job.PropertyName != "Casa Marina" || job.GuestName != "Anna Bianchi" {
		t.Errorf("unexpected job payload: %+v", job)
	}
}

func TestJobHandler_List_BadDatesFallBack(t *testing.T) {
	svc := &stubCleaningService{}
	h := NewJobHandler(svc)

	c, rec := newJobContext(t, http.MethodGet, "/cleaning-jobs?date_from=yesterday", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.listInput.From.IsZero() {
		t.Error("unparsable date_from should be passed as zero for the service default")
	}
}

func TestJobHandler_Update(t *testing.T) {
	svc := &stubCleaningService{}
	h := NewJobHandler(svc)

	c, rec := newJobContext(t, http.MethodPut, "/cleaning-jobs",
		`{"job_id":10,"status":"completed","completion_notes":"all clean"}`)
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.updated.JobID != 10 || svc.updated.Status != domain.JobCompleted || svc.updated.OperatorID != 1 {
		t.Errorf("unexpected update input: %+v", svc.updated)
	}
}

func TestJobHandler_Update_Validation(t *testing.T) {
	h := NewJobHandler(&stubCleaningService{})

	cases := []string{
		`{}`,
		`{"job_id":10}`,
		`{"job_id":10,"status":"done"}`,
	}
	for _, body := range cases {
		c, rec := newJobContext(t, http.MethodPut, "/cleaning-jobs", body)
		if err := h.Update(c); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestJobHandler_Update_ForbiddenPropagates(t *testing.T) {
	svc := &stubCleaningService{err: domain.ErrForbidden}
	h := NewJobHandler(svc)

	c, _ := newJobContext(t, http.MethodPut, "/cleaning-jobs", `{"job_id":10,"status":"completed"}`)
	err := h.Update(c)
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden to propagate to the error handler, got %v", err)
	}
}

func TestJobHandler_MissingClaims(t *testing.T) {
	h := NewJobHandler(&stubCleaningService{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/cleaning-jobs", nil), httptest.NewRecorder())

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without middleware claims, got %v", err)
	}
}
