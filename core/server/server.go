package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"meeting-scheduler-api/core/cache"
	"meeting-scheduler-api/core/config"
	"meeting-scheduler-api/core/constants"
	"meeting-scheduler-api/core/database"
	"meeting-scheduler-api/core/logger"
	"meeting-scheduler-api/core/middleware"
	"meeting-scheduler-api/modules/meeting"
	"meeting-scheduler-api/modules/participant"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run loads configuration, wires the modules and serves until interrupted.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	c := cache.Init(cfg.Redis)
	defer c.Close()

	e := echo.New()
	e.HideBanner = true

	mw := middleware.NewMiddleware()
	e.Use(mw.Recover())
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())
	e.Use(mw.CORS())
	e.Use(mw.BodyLimit())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	meeting.Init(e, &db, c, mw)
	participant.Init(e, &db, c, mw)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	logger.Info("Server started", "port", cfg.Server.Port)
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	return e.Shutdown(shutdownCtx)
}
