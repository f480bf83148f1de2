package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// JobHandler handles the dashboard's cleaning job endpoints.
type JobHandler struct {
	service ports.CleaningService
}

func NewJobHandler(service ports.CleaningService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /cleaning-jobs?date_from=&date_to=. Absent or
// unparsable bounds fall back to the rolling 3-day dashboard window.
func (h *JobHandler) List(c echo.Context) error {
	operatorID, err := ctxOperatorID(c)
	if err != nil {
		return err
	}

	from, _ := time.Parse(dateFormat, c.QueryParam("date_from"))
	to, _ := time.Parse(dateFormat, c.QueryParam("date_to"))

	jobs, err := h.service.ListJobs(c.Request().Context(), ports.ListJobsInput{
		OperatorID: operatorID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return err
	}

	out := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}

	return c.JSON(http.StatusOK, listJobsResponse{Success: true, Jobs: out})
}

// Update handles PUT /cleaning-jobs: status changes from the dashboard.
func (h *JobHandler) Update(c echo.Context) error {
	operatorID, err := ctxOperatorID(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	err = h.service.UpdateJobStatus(c.Request().Context(), ports.UpdateJobInput{
		OperatorID:      operatorID,
		JobID:           req.JobID,
		Status:          domain.JobStatus(req.Status),
		CompletionNotes: req.CompletionNotes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "status updated"})
}
