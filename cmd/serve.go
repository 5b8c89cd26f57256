package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "thintimer.com/thintimer/internal/configs"
	httpapi "thintimer.com/thintimer/internal/http"
	repository "thintimer.com/thintimer/internal/repositories"
	"thintimer.com/thintimer/internal/services"
	"thintimer.com/thintimer/internal/sessions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the time tracking HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		database := config.New(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		entryRepo := repository.NewEntryRepository(database)

		sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
		sessionStore := sessions.NewRedisStore(redisClient, sessionTTL)

		authService := services.NewAuthService(userRepo, sessionStore, cfg.BcryptCost)
		taskService := services.NewTaskService(taskRepo)
		entryService := services.NewEntryService(entryRepo, taskRepo)
		reportService := services.NewReportService(taskRepo, entryRepo)

		e := echo.New()

		handler := httpapi.NewHandler(authService, taskService, entryService, reportService, sessionTTL)
		httpapi.Register(e, handler, sessionStore, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
