// README: Entry point; loads config, wires services, starts HTTP server and refresher.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tollwatch/internal/clock"
	"tollwatch/internal/config"
	httptransport "tollwatch/internal/http"
	"tollwatch/internal/infra"
	"tollwatch/internal/modules/holiday"
	"tollwatch/internal/modules/preference"
	"tollwatch/internal/modules/toll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	hkClock := clock.NewSystem()

	holidaySvc := holiday.NewService(
		&http.Client{Timeout: 10 * time.Second},
		holiday.Config{
			URL:          cfg.Holiday.URL,
			FallbackPath: cfg.Holiday.FallbackPath,
			Computed:     cfg.Holiday.Computed,
		},
		hkClock,
		logger,
	)

	tollSvc := toll.NewService(hkClock, holidaySvc,
		time.Duration(cfg.RefreshSeconds)*time.Second, logger)

	prefStore := preference.NewRedisStore(redisClient)
	prefSvc := preference.NewService(prefStore, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Tolls:       tollSvc,
		Holidays:    holidaySvc,
		Preferences: prefSvc,
		Logger:      logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go tollSvc.RunRefresher(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
