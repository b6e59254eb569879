package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"travely/internal/config"
	"travely/internal/events"
	router "travely/internal/http"
	"travely/internal/http/handlers"
	"travely/internal/repositories"
	"travely/internal/services"
	"travely/internal/session"
	"travely/internal/utils"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := utils.Logger()

	store := repositories.NewSeededStore()

	var sessions session.Store
	switch env.SessionBackend {
	case config.SessionBackendRedis:
		redisStore := session.NewRedisStore(env.RedisAddr, env.SessionTTL)
		defer redisStore.Close()
		sessions = redisStore
	default:
		sessions = session.NewMemoryStore(env.SessionTTL)
	}

	bus, err := events.NewBus()
	if err != nil {
		log.Fatalf("failed to build event bus: %v", err)
	}

	busCtx, stopBus := context.WithCancel(context.Background())
	defer stopBus()
	go func() {
		if err := bus.Run(busCtx); err != nil {
			log.Errorf("event bus stopped: %v", err)
		}
	}()
	<-bus.Running()

	apiHandlers := handlers.API{
		Bookings:   services.BookingService{Store: store, Bus: bus},
		Identity:   services.IdentityService{Store: store, Sessions: sessions},
		Docs:       services.DocsService{Store: store},
		JWTSecret:  []byte(env.JWTSecret),
		SessionTTL: env.SessionTTL,
	}

	r := router.NewRouter(env, apiHandlers)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	if err := bus.Close(); err != nil {
		log.Errorf("event bus close failed: %v", err)
	}

	log.Info("server stopped cleanly")
}
