package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "thintimer.com/thintimer/internal/data_models"
	"thintimer.com/thintimer/internal/http/validators"
)

func (h *Handler) ListEntries(c echo.Context) error {
	entries, err := h.entryService.ListEntries(c.Request().Context(), userID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewEntryResponses(entries))
}

func (h *Handler) CreateEntry(c echo.Context) error {
	var req dto.CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateEntryRequest(&req); err != nil {
		return httpError(err)
	}

	entry, err := h.entryService.CreateEntry(c.Request().Context(), userID(c), req.Task, req.StartTime, req.EndTime)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.NewEntryResponse(entry))
}

// GetEntry serves both GET /entries/:id and the date-filtered listing
// GET /entries/YYYY-MM-DD, since the two share one route pattern. A path
// segment that parses as a date selects the listing.
func (h *Handler) GetEntry(c echo.Context) error {
	param := c.Param("id")

	if date, err := time.Parse("2006-01-02", param); err == nil {
		entries, err := h.entryService.ListEntriesForDate(c.Request().Context(), userID(c), date)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, dto.NewEntryResponses(entries))
	}

	entry, err := h.entryService.GetEntry(c.Request().Context(), param, userID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewEntryResponse(entry))
}

func (h *Handler) DeleteEntry(c echo.Context) error {
	if err := h.entryService.DeleteEntry(c.Request().Context(), c.Param("id"), userID(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}
