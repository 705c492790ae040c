package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sparkskytech/ieltsplan/internal/api"
	"github.com/sparkskytech/ieltsplan/internal/config"
	"github.com/sparkskytech/ieltsplan/internal/jobs"
	"github.com/sparkskytech/ieltsplan/internal/logger"
	"github.com/sparkskytech/ieltsplan/internal/planner"
	"github.com/sparkskytech/ieltsplan/internal/services"
	"github.com/sparkskytech/ieltsplan/internal/worker"
	"github.com/sparkskytech/ieltsplan/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.LogColors),
	)
	logger.SetDefault(log)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("IELTS Study Plan Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("log_level=%s", log.Level())
	log.Debug("render_worker_count=%d", cfg.RenderWorkerCount)
	log.Debug("render_queue_size=%d", cfg.RenderQueueSize)
	log.Debug("render_timeout=%s", cfg.RenderTimeout)
	log.Debug("request_timeout=%s", cfg.RequestTimeout)
	log.Debug("rate_limit_rps=%g", cfg.RateLimitRPS)
	log.Debug("rate_limit_burst=%d", cfg.RateLimitBurst)
	log.Debug("trust_proxy=%t", cfg.TrustProxy)

	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates(web.Templates())
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	renderPool := worker.NewPool(cfg.RenderWorkerCount, cfg.RenderQueueSize)
	planService := services.NewPlanService(
		planner.NewGenerator(),
		jobs.NewWorkerQueue(renderPool),
		cfg.RenderTimeout,
	)

	srv := &api.Server{
		PlanService:    planService,
		Templates:      tmpl,
		Static:         web.Static(),
		RequestTimeout: cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		TrustProxy:     cfg.TrustProxy,
	}

	ctx, cancel := context.WithCancel(context.Background())
	renderPool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping render pool")
	cancel()
	renderPool.Stop()

	log.Info("===========================================")
	log.Info("IELTS Study Plan Server Stopped")
	log.Info("===========================================")
}
