package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"schooldir/internal/auth"
	"schooldir/internal/errors"
	"schooldir/internal/model"
	"schooldir/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService   service.AuthService
	secureCookies bool
}

// NewAuthHandler creates a new auth handler. secureCookies marks the session
// cookie Secure (production deployments behind TLS).
func NewAuthHandler(authService service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

// LoginRequest represents a user login request. Username also accepts the
// account email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// MeResponse carries the resolved session user, null when unauthenticated.
type MeResponse struct {
	User *model.User `json:"user"`
}

// Login godoc
// @Summary Authenticate and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "Invalid request body",
			Code:    "INVALID_BODY",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "Username and password are required",
			Code:    "VALIDATION_ERROR",
		})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.SetCookie(h.sessionCookie(token, int(auth.TokenExpiry/time.Second)))

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User:    user,
	})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Overwrite with an immediately expiring empty value.
	c.SetCookie(h.sessionCookie("", -1))

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

// Me godoc
// @Summary Resolve the current session
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	// This endpoint never errors toward the caller: no token, a bad token,
	// or an internal failure all degrade to a null user.
	token := auth.ExtractToken(c.Request())
	if token == "" {
		return c.JSON(http.StatusOK, MeResponse{User: nil})
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return c.JSON(http.StatusOK, MeResponse{User: nil})
	}

	return c.JSON(http.StatusOK, MeResponse{User: user})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
