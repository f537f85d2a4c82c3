package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vidarbha-bioenergy/contact-api/internal/config"
	"github.com/vidarbha-bioenergy/contact-api/internal/logger"
	"github.com/vidarbha-bioenergy/contact-api/internal/router"
	"github.com/vidarbha-bioenergy/contact-api/internal/setup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Public.Port,
		Handler:           router.New(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Log.Info("server started", "port", cfg.Public.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			stop()
		}
	}()

	servers := []*http.Server{srv}
	if addr := cfg.Public.MetricsAddr; addr != "" {
		metricsSrv := &http.Server{
			Addr:              addr,
			Handler:           router.NewMetrics(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		servers = append(servers, metricsSrv)
		go func() {
			logger.Log.Info("metrics listener started", "addr", addr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.Error("metrics listener failed", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("graceful shutdown failed", "addr", s.Addr, "error", err)
		}
	}
}
