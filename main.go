package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"SinOutGo/config"
	"SinOutGo/middleware"
	"SinOutGo/repositories"
	"SinOutGo/routes"
	"SinOutGo/services"
	"SinOutGo/utils"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.SetJWTKey(conf.JWTSecret)

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	middleware.SetupMiddleware(r)

	routes.RegisterRoutes(r, conf)

	// Background sweep of used/expired reset tokens; stops with the
	// server.
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	cleanup := services.NewTokenCleanupService(repositories.NewResetTokenRepository(config.DB))
	go cleanup.Run(cleanupCtx)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server listening", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for an interrupt, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down")

	stopCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	config.Logger.Infow("server stopped")
}
