package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "thintimer.com/thintimer/internal/http/middlewares"
	"thintimer.com/thintimer/internal/sessions"
)

func Register(e *echo.Echo, h *Handler, store sessions.Store, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/healthz", h.Health)

	auth := middleware.Session(store)

	e.POST("/auth/signup", h.SignUp)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout, auth)
	e.POST("/auth/username", h.UpdateUsername, auth)
	e.POST("/auth/email", h.UpdateEmail, auth)
	e.POST("/auth/password", h.ResetPassword, auth)
	e.POST("/auth/delete", h.DeleteAccount, auth)

	tasks := e.Group("/tasks", auth)
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PATCH("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)

	entries := e.Group("/entries", auth)
	entries.GET("", h.ListEntries)
	entries.POST("", h.CreateEntry)
	entries.GET("/:id", h.GetEntry)
	entries.DELETE("/:id", h.DeleteEntry)

	e.GET("/reports", h.Report, auth)
	e.GET("/reports.xlsx", h.ReportXLSX, auth)
}
