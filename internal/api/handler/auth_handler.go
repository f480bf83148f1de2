package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carminelamberti/smoobu-cleaning-app/internal/api/metrics"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/domain"
	"github.com/carminelamberti/smoobu-cleaning-app/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type operatorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Success  bool             `json:"success"`
	Token    string           `json:"token"`
	Operator operatorResponse `json:"operator"`
}

// Login authenticates an operator and returns a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "username and password required"})
	}

	token, op, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		Operator: operatorResponse{
			ID:       op.ID,
			Username: op.Username,
			Name:     op.Name,
			Email:    op.Email,
		},
	})
}
