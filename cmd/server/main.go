package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"sendqr/internal/api"
	"sendqr/internal/api/handlers"
	"sendqr/internal/api/middleware"
	"sendqr/internal/engine/deeplink"
	"sendqr/internal/engine/qrimage"
	"sendqr/internal/pkg/logger"
	"sendqr/internal/platform/config"
	"sendqr/internal/web"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging)

	level, err := qrimage.ParseLevel(cfg.QR.RecoveryLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid qr config")
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	// Services
	preset := handlers.Preset(cfg.Preset)
	fallback := deeplink.FallbackConfig{URL: cfg.Invoke.FallbackURL, Delay: cfg.Invoke.FallbackDelay}
	sizing := qrimage.Sizing{
		Default:     cfg.QR.DefaultSize,
		Min:         cfg.QR.MinSize,
		MaxViewport: cfg.QR.MaxViewport,
		Scale:       cfg.QR.Scale,
	}
	renderer := qrimage.NewRenderer(level, qrimage.NewCache(cfg.Cache.QRTTL, cfg.Cache.MaxEntries))
	metrics := &handlers.Metrics{}

	rateLimiter := middleware.NewRateLimiter(map[string]int{
		middleware.LimitPage: cfg.RateLimit.PagePerMinute,
		middleware.LimitQR:   cfg.RateLimit.QRPerMinute,
		middleware.LimitAPI:  cfg.RateLimit.APIPerMinute,
	})
	defer rateLimiter.Close()

	// Router
	deps := &api.Dependencies{
		PageHandler:    handlers.NewPageHandler(tmpl, preset, fallback, sizing, metrics),
		LinkHandler:    handlers.NewLinkHandler(preset, fallback, metrics),
		QRHandler:      handlers.NewQRHandler(preset, renderer, sizing, metrics),
		OpenHandler:    handlers.NewOpenHandler(preset, metrics),
		HealthHandler:  handlers.NewHealthHandler(renderer),
		MetricsHandler: handlers.NewMetricsHandler(metrics),
		RateLimiter:    rateLimiter,
		Logger:         log.Logger,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
