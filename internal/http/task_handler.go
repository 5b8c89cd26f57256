package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "thintimer.com/thintimer/internal/data_models"
	"thintimer.com/thintimer/internal/http/validators"
	"thintimer.com/thintimer/internal/services"
)

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), userID(c), req.Name, req.Description, req.Tags)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"), userID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), userID(c), services.TaskUpdate{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id"), userID(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}
