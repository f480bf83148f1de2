package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "invalid credentials",
			err:      domain.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid credentials",
		},
		{
			name:     "forbidden",
			err:      domain.ErrForbidden,
			wantCode: http.StatusForbidden,
			wantMsg:  "not authorized",
		},
		{
			name:     "job not found",
			err:      domain.ErrJobNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "cleaning job not found",
		},
		{
			name:     "invalid transition",
			err:      fmt.Errorf("status change completed -> in_progress: %w", domain.ErrInvalidTransition),
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "status change completed -> in_progress: invalid status transition",
		},
		{
			name:     "sync in progress",
			err:      domain.ErrSyncInProgress,
			wantCode: http.StatusConflict,
			wantMsg:  "synchronization already in progress",
		},
		{
			name:     "smoobu not configured",
			err:      domain.ErrSmoobuNotConfigured,
			wantCode: http.StatusInternalServerError,
			wantMsg:  "smoobu api key not configured",
		},
		{
			name:     "echo http error passes through",
			err:      echo.NewHTTPError(http.StatusUnauthorized, "token required"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "token required",
		},
		{
			name:     "unexpected error stays generic",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			e.HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t,
				fmt.Sprintf(`{"success": false, "message": %q}`, tt.wantMsg),
				rec.Body.String())
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.String(http.StatusOK, "already written"))
	e.HTTPErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already written", rec.Body.String())
}
