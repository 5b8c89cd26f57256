package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thintimer.com/thintimer/internal/http/validators"
	"thintimer.com/thintimer/internal/reports"
)

func (h *Handler) Report(c echo.Context) error {
	rng, err := validators.ValidateReportRange(
		c.QueryParam("startDate"),
		c.QueryParam("endDate"),
		c.QueryParam("frequency"),
	)
	if err != nil {
		return httpError(err)
	}

	summary, err := h.reportService.Summary(c.Request().Context(), rng.Start, rng.End)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) ReportXLSX(c echo.Context) error {
	rng, err := validators.ValidateReportRange(
		c.QueryParam("startDate"),
		c.QueryParam("endDate"),
		c.QueryParam("frequency"),
	)
	if err != nil {
		return httpError(err)
	}

	workbook, err := h.reportService.Workbook(c.Request().Context(), rng.Start, rng.End, rng.Frequency)
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentType, reports.ContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=report.xlsx")
	c.Response().WriteHeader(http.StatusOK)

	return workbook.Write(c.Response())
}
