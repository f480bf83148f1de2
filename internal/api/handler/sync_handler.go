package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// SyncHandler handles POST /sync-smoobu.
type SyncHandler struct {
	service ports.SyncService
}

func NewSyncHandler(service ports.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

func (h *SyncHandler) Run(c echo.Context) error {
	operatorID, err := ctxOperatorID(c)
	if err != nil {
		return err
	}

	report, err := h.service.Run(c.Request().Context(), operatorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, syncResponse{
		Success:      true,
		Message:      "synchronization completed",
		Timestamp:    report.Timestamp.Format(time.RFC3339),
		Synchronized: *report,
	})
}
