package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

// PropertyHandler handles GET /my-properties.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) List(c echo.Context) error {
	operatorID, err := ctxOperatorID(c)
	if err != nil {
		return err
	}

	properties, err := h.service.ListProperties(c.Request().Context(), operatorID)
	if err != nil {
		return err
	}

	out := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}

	return c.JSON(http.StatusOK, listPropertiesResponse{Success: true, Properties: out})
}
