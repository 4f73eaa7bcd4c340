package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinewatch/movienight/internal/api/metrics"
	"github.com/cinewatch/movienight/internal/core/domain"
	"github.com/cinewatch/movienight/internal/core/ports"
	"github.com/cinewatch/movienight/internal/session"
)

// AuthHandler exposes register, login, logout, and verify over HTTP. The
// session token travels only in the auth cookie, never in the body.
type AuthHandler struct {
	authService ports.AuthService
	verifier    ports.TokenVerifier
	cookies     *session.CookieManager
}

func NewAuthHandler(authService ports.AuthService, verifier ports.TokenVerifier, cookies *session.CookieManager) *AuthHandler {
	return &AuthHandler{authService: authService, verifier: verifier, cookies: cookies}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type verifyResponse struct {
	Success       bool   `json:"success"`
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message,omitempty"`
}

// Register creates a new account and starts a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      409   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidInput
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidInput
	}

	token, _, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	h.cookies.Attach(c, token)
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "Registration successful"})
}

// Login authenticates an existing account and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Failure      429   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return domain.ErrInvalidInput
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrInvalidInput
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.cookies.Attach(c, token)
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "Login successful"})
}

// Logout ends the session by clearing the auth cookie. It performs no
// credential check and succeeds even without an active session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "Logout successful"})
}

// Verify reports whether the request carries a valid session. It never
// mutates state; an absent or invalid cookie yields 401, not an error.
//
// @Summary      Verify session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  verifyResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	tokenString, ok := h.cookies.Read(c)
	if !ok {
		metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
		return c.JSON(http.StatusUnauthorized, verifyResponse{Authenticated: false, Message: "Not authenticated"})
	}

	if _, ok := h.verifier.Verify(tokenString); !ok {
		metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusUnauthorized, verifyResponse{Authenticated: false, Message: "Not authenticated"})
	}

	metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusOK, verifyResponse{Success: true, Authenticated: true, Message: "Authentication valid"})
}
