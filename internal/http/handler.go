package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "thintimer.com/thintimer/internal/errors"
	middleware "thintimer.com/thintimer/internal/http/middlewares"
	"thintimer.com/thintimer/internal/services"
)

type Handler struct {
	authService   *services.AuthService
	taskService   *services.TaskService
	entryService  *services.EntryService
	reportService *services.ReportService
	sessionTTL    time.Duration
}

func NewHandler(
	authService *services.AuthService,
	taskService *services.TaskService,
	entryService *services.EntryService,
	reportService *services.ReportService,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		authService:   authService,
		taskService:   taskService,
		entryService:  entryService,
		reportService: reportService,
		sessionTTL:    sessionTTL,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// userID reads the authenticated user id placed by the session middleware.
func userID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextUserID).(string)
	return id
}

func sessionToken(c echo.Context) string {
	token, _ := c.Get(middleware.ContextSessionToken).(string)
	return token
}

// httpError maps service errors to echo HTTP errors via the exception
// status codes.
func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}
