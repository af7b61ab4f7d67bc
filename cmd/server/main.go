package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/youruser/posterapp/internal/api"
	"github.com/youruser/posterapp/internal/app"
	"github.com/youruser/posterapp/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	gen, err := app.NewGenerator(cfg, logger)
	if err != nil {
		return err
	}

	limiter := api.NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	defer limiter.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	api.NewServer(gen, api.Options{
		MaxUploadBytes: cfg.MaxUploadBytes,
		MaxLogoPixels:  cfg.MaxLogoPixels,
		JPEGQuality:    cfg.JPEGQuality,
		Limiter:        limiter,
		Logger:         logger,
	}).RegisterRoutes(r)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown(srv, 10*time.Second, logger)
	}()

	logger.Info("starting server on http://localhost:" + cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// shutdown drains srv, logging when in-flight requests outlive timeout.
func shutdown(srv *http.Server, timeout time.Duration, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
