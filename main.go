package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/config"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/controller"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/hub"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/middleware"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/routes"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/service"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg := config.Load()

	var st store.ProductStore
	switch cfg.DBDriver {
	case "memory":
		st = store.NewMemory()
		slog.Info("using in-memory product store")
	default:
		db, err := config.Connect(cfg)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		st = store.NewGorm(db)
	}

	if cfg.SeedData {
		if err := store.Seed(context.Background(), st); err != nil {
			slog.Warn("failed to seed product catalog", "error", err)
		}
	}

	rdb := config.InitRedis(cfg)

	notifications := hub.New()
	go notifications.Run()

	svc := service.NewProductService(st, notifications)
	pc := controller.NewProductController(svc, rdb)
	hc := controller.NewHomeController(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	routes.ProductRoute(router, pc, middleware.RateLimiter(rdb))
	routes.AppRoute(router, hc, notifications)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		slog.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
