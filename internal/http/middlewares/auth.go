package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	apperrors "thintimer.com/thintimer/internal/errors"
	"thintimer.com/thintimer/internal/sessions"
)

const (
	SessionCookie = "session"

	// Context keys set for downstream handlers.
	ContextUserID       = "userID"
	ContextSessionToken = "sessionToken"
)

// Session resolves the session cookie to a user id and threads it into the
// request context. Handlers behind this middleware never see an ambient
// "current user"; they read the explicit id from the echo context.
func Session(store sessions.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(apperrors.ErrUnauthenticated.StatusCode, apperrors.ErrUnauthenticated.Message)
			}

			userID, err := store.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, sessions.ErrNoSession) {
					return echo.NewHTTPError(apperrors.ErrUnauthenticated.StatusCode, apperrors.ErrUnauthenticated.Message)
				}
				return err
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextSessionToken, cookie.Value)
			return next(c)
		}
	}
}
