package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "thintimer.com/thintimer/internal/data_models"
	middleware "thintimer.com/thintimer/internal/http/middlewares"
	"thintimer.com/thintimer/internal/http/validators"
)

// sessionTTL mirrors the server-side Redis expiry so the cookie and the
// stored token age out together.
func (h *Handler) setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSignUpRequest(&req); err != nil {
		return httpError(err)
	}

	if _, err := h.authService.SignUp(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "user created"})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return httpError(err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	h.setSessionCookie(c, token, h.sessionTTL)

	return c.JSON(http.StatusOK, echo.Map{"status": "logged in"})
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return httpError(err)
	}

	h.setSessionCookie(c, "", -time.Second)

	return c.JSON(http.StatusOK, echo.Map{"status": "logged out"})
}

func (h *Handler) UpdateUsername(c echo.Context) error {
	var req dto.UpdateUsernameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.authService.UpdateUsername(c.Request().Context(), userID(c), req.NewUsername); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func (h *Handler) UpdateEmail(c echo.Context) error {
	var req dto.UpdateEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.authService.UpdateEmail(c.Request().Context(), userID(c), req.NewEmail); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.authService.ResetPassword(c.Request().Context(), userID(c), req.OldPassword, req.NewPassword); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}

func (h *Handler) DeleteAccount(c echo.Context) error {
	if err := h.authService.DeleteAccount(c.Request().Context(), userID(c), sessionToken(c)); err != nil {
		return httpError(err)
	}

	h.setSessionCookie(c, "", -time.Second)

	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
