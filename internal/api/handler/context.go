package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxOperatorID extracts the operator identity injected by the Auth
// middleware. A zero id means the middleware did not run on this route;
// fail closed with 401 rather than querying with an unscoped id.
func ctxOperatorID(c echo.Context) (int64, error) {
	id, _ := c.Get("operator_id").(int64)
	if id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
